package main

import (
	"slices"

	"github.com/maisem/aoc/v2"
)

// sortedAbsDiffSum pairs the smallest of left with the smallest of right and
// so on, and sums the distances between each pair.
func sortedAbsDiffSum(left, right []int) int {
	return unsortedAbsDiffSum(sorted(left), sorted(right))
}

// unsortedAbsDiffSum sums the distances between left[i] and right[i].
func unsortedAbsDiffSum(left, right []int) int {
	var sum int
	for i := range left {
		sum += aoc.AbsDiff(left[i], right[i])
	}
	return sum
}

// similarity sums each value of left multiplied by the number of times it
// occurs in right.
func similarity(left, right []int) int {
	counts := aoc.Count(right)
	var score int
	for _, v := range left {
		score += v * counts[v]
	}
	return score
}

func sorted(s []int) []int {
	s = slices.Clone(s)
	slices.Sort(s)
	return s
}

/*
want=11

3   4
4   3
2   5
1   3
3   9
3   3
*/
func (s solver) D1p1() any {
	cols := s.Columns(2)
	left, right := cols[0], cols[1]
	s.Pretty("columns", cols)
	s.Logf("Original first column: %v", left)
	s.Logf("Sorted first column: %v", sorted(left))
	s.Logf("Original second column: %v", right)
	s.Logf("Sorted second column: %v", sorted(right))
	s.Logf("Sum of absolute differences in original lists: %d", unsortedAbsDiffSum(left, right))
	return sortedAbsDiffSum(left, right)
}

// want=31
func (s solver) D1p2() any {
	cols := s.Columns(2)
	return similarity(cols[0], cols[1])
}
