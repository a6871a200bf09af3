package main

import (
	"fmt"
	"testing"

	"github.com/maisem/aoc/v2"
)

func TestSamples(t *testing.T) {
	tests := []struct {
		name string
		fn   func(solver) any
	}{
		{"D1p1", solver.D1p1},
		{"D1p2", solver.D1p2},
		{"D2p1", solver.D2p1},
		{"D2p2", solver.D2p2},
		{"D3p1", solver.D3p1},
		{"D3p2", solver.D3p2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := aoc.SamplePuzzle(sources, tt.name)
			if err != nil {
				t.Fatal(err)
			}
			s := solver{p}
			want := p.Want()
			// Running twice must give the same answer.
			for i := 0; i < 2; i++ {
				if got := fmt.Sprint(tt.fn(s)); got != want {
					t.Errorf("run %d: %s = %v, want %v", i, tt.name, got, want)
				}
			}
		})
	}
}
