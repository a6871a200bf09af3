package main

import (
	"github.com/maisem/aoc/v2"
)

// safe reports whether the levels of a report strictly increase or strictly
// decrease, by at least 1 and at most 3 at each step. Reports with fewer than
// two levels are unsafe.
func safe(row []int) bool {
	if len(row) < 2 {
		return false
	}
	dir := aoc.Sign(row[1] - row[0])
	if dir == 0 {
		return false
	}
	for i := 1; i < len(row); i++ {
		d := row[i] - row[i-1]
		if aoc.Sign(d) != dir || aoc.AbsDiff(row[i], row[i-1]) > 3 {
			return false
		}
	}
	return true
}

// removalIndex returns the first index of row whose removal leaves a safe
// report.
func removalIndex(row []int) (int, bool) {
	buf := make([]int, 0, len(row))
	for i := range row {
		buf = append(append(buf[:0], row[:i]...), row[i+1:]...)
		if safe(buf) {
			return i, true
		}
	}
	return -1, false
}

// safeWithRemoval reports whether row is safe, or becomes safe after removing
// a single level.
func safeWithRemoval(row []int) bool {
	if safe(row) {
		return true
	}
	_, ok := removalIndex(row)
	return ok
}

func countSafe(rows [][]int, isSafe func([]int) bool) int {
	var n int
	for _, row := range rows {
		if isSafe(row) {
			n++
		}
	}
	return n
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

/*
want=2

7 6 4 2 1
1 2 7 8 9
9 7 6 2 1
1 3 2 4 5
8 6 4 4 1
1 3 6 7 9
*/
func (s solver) D2p1() any {
	rows := s.Rows()
	s.Pretty("rows", rows)
	s.Logf("Total number of lists: %d", len(rows))
	return countSafe(rows, safe)
}

// want=4
func (s solver) D2p2() any {
	rows := s.Rows()
	for i, row := range rows {
		s.Logf("List %3d: %v -> Part1: %d, Part2: %d", i+1, row, b2i(safe(row)), b2i(safeWithRemoval(row)))
		if !safe(row) {
			if ix, ok := removalIndex(row); ok {
				s.Debugf("list %d: safe without level %d (%d)", i+1, ix, row[ix])
			}
		}
	}
	return countSafe(rows, safeWithRemoval)
}
