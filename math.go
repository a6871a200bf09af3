package aoc

import (
	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func Sign[T constraints.Signed | constraints.Float](x T) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Count returns the number of occurrences of each value in vs.
func Count[T comparable](vs []T) map[T]int {
	m := make(map[T]int, len(vs))
	for _, v := range vs {
		m[v]++
	}
	return m
}
