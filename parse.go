package aoc

import (
	"fmt"
	"strconv"
	"strings"
)

// InputError reports input that could not be read or parsed. Parsing helpers
// panic with an *InputError; Run recovers it and exits with the message.
type InputError struct {
	Name string // input name; empty if unknown
	Line int    // 1-based line number; 0 if not tied to a line
	Err  error
}

func (e *InputError) Error() string {
	var b strings.Builder
	if e.Name != "" {
		b.WriteString(e.Name)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
		b.WriteString(": ")
	} else if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *InputError) Unwrap() error { return e.Err }

// ParseInt parses a signed base-10 integer, ignoring surrounding space.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Int returns the int value of the string. It panics with an *InputError
// if s is not an integer.
func Int(s string) int {
	n, err := ParseInt(s)
	if err != nil {
		panic(&InputError{Err: err})
	}
	return n
}

// Fields parses the whitespace-separated integers of line.
func Fields(line string) ([]int, error) {
	fs := strings.Fields(line)
	out := make([]int, len(fs))
	for i, f := range fs {
		n, err := ParseInt(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// Rows returns the integers of each non-blank input line.
func (p *Puzzle) Rows() [][]int {
	var rows [][]int
	p.ForLinesY(func(y int, line string) {
		if strings.TrimSpace(line) == "" {
			return
		}
		row, err := Fields(line)
		if err != nil {
			panic(&InputError{Name: p.InputName(), Line: y + 1, Err: err})
		}
		rows = append(rows, row)
	})
	return rows
}

// Columns returns the input as n columns of integers. Each non-blank line
// must hold exactly n whitespace-separated integers.
func (p *Puzzle) Columns(n int) [][]int {
	cols := make([][]int, n)
	p.ForLinesY(func(y int, line string) {
		if strings.TrimSpace(line) == "" {
			return
		}
		row, err := Fields(line)
		if err == nil && len(row) != n {
			err = fmt.Errorf("got %d fields; want %d", len(row), n)
		}
		if err != nil {
			panic(&InputError{Name: p.InputName(), Line: y + 1, Err: err})
		}
		for i, v := range row {
			cols[i] = append(cols[i], v)
		}
	})
	return cols
}
