package main

import (
	"math/rand"
	"slices"
	"testing"
)

func TestSafe(t *testing.T) {
	tests := []struct {
		row         []int
		safe        bool
		withRemoval bool
	}{
		{[]int{7, 6, 4, 2, 1}, true, true},
		{[]int{1, 2, 7, 8, 9}, false, false},
		{[]int{9, 7, 6, 2, 1}, false, false},
		{[]int{1, 3, 2, 4, 5}, false, true},
		{[]int{8, 6, 4, 4, 1}, false, true},
		{[]int{1, 3, 6, 7, 9}, true, true},

		// Fewer than two levels are never safe.
		{nil, false, false},
		{[]int{5}, false, false},
		{[]int{1, 2}, true, true},
		{[]int{2, 1}, true, true},
		{[]int{1, 1}, false, false},
		{[]int{1, 5}, false, false},
		{[]int{1, 1, 2}, false, true},

		{[]int{-3, -1, 2}, true, true},
		{[]int{1, 4, 7, 10}, true, true},
		{[]int{1, 5, 6, 7}, false, true},
		{[]int{1, 2, 3, 10}, false, true},
		{[]int{1, 2, 1, 2, 1}, false, false},
	}
	for _, tt := range tests {
		if got := safe(tt.row); got != tt.safe {
			t.Errorf("safe(%v) = %v, want %v", tt.row, got, tt.safe)
		}
		if got := safeWithRemoval(tt.row); got != tt.withRemoval {
			t.Errorf("safeWithRemoval(%v) = %v, want %v", tt.row, got, tt.withRemoval)
		}
	}
}

func TestRemovalIndex(t *testing.T) {
	tests := []struct {
		row  []int
		want int
		ok   bool
	}{
		{[]int{1, 3, 2, 4, 5}, 1, true},
		{[]int{8, 6, 4, 4, 1}, 2, true},
		// The first index that works wins.
		{[]int{7, 6, 4, 2, 1}, 0, true},
		{[]int{1, 2, 7, 8, 9}, -1, false},
		{[]int{5}, -1, false},
	}
	for _, tt := range tests {
		row := slices.Clone(tt.row)
		got, ok := removalIndex(row)
		if got != tt.want || ok != tt.ok {
			t.Errorf("removalIndex(%v) = %v, %v; want %v, %v", tt.row, got, ok, tt.want, tt.ok)
		}
		if !slices.Equal(row, tt.row) {
			t.Errorf("removalIndex modified row: %v", row)
		}
	}
}

// safeRule is the definition of a safe report, written out directly.
func safeRule(row []int) bool {
	if len(row) < 2 {
		return false
	}
	inc, dec := true, true
	for i := 1; i < len(row); i++ {
		d := row[i] - row[i-1]
		if d < -3 || d > 3 || d == 0 {
			return false
		}
		inc = inc && d > 0
		dec = dec && d < 0
	}
	return inc || dec
}

func TestSafeMatchesRule(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for n := 0; n < 2000; n++ {
		row := make([]int, rnd.Intn(7))
		for i := range row {
			row[i] = rnd.Intn(12) - 6
			if i > 0 && rnd.Intn(3) > 0 {
				row[i] = row[i-1] + rnd.Intn(4) + 1
			}
		}
		if got, want := safe(row), safeRule(row); got != want {
			t.Fatalf("safe(%v) = %v, want %v", row, got, want)
		}
		want := safeRule(row)
		for i := range row {
			want = want || safeRule(slices.Delete(slices.Clone(row), i, i+1))
		}
		if got := safeWithRemoval(row); got != want {
			t.Fatalf("safeWithRemoval(%v) = %v, want %v", row, got, want)
		}
	}
}

func TestCountSafe(t *testing.T) {
	rows := [][]int{
		{7, 6, 4, 2, 1},
		{1, 2, 7, 8, 9},
		{9, 7, 6, 2, 1},
		{1, 3, 2, 4, 5},
		{8, 6, 4, 4, 1},
		{1, 3, 6, 7, 9},
	}
	if got := countSafe(rows, safe); got != 2 {
		t.Errorf("countSafe(safe) = %v, want 2", got)
	}
	if got := countSafe(rows, safeWithRemoval); got != 4 {
		t.Errorf("countSafe(safeWithRemoval) = %v, want 4", got)
	}
}
