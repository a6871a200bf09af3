// Command 2024 solves Advent of Code 2024 puzzles.
//
// Usage:
//
//	go run ./2024 [-day N] [-part P] [-sample] [-debug] [input-file]
package main

import (
	"embed"

	"github.com/maisem/aoc/v2"
)

func main() {
	aoc.Run(2024, sources, &solver{})
}

//go:embed day1.go day2.go day3.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}
