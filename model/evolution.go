package model

import "github.com/sheikhrachel/go-gol-seed/rules"

// Step calculates the next generation from current. current is never modified;
// the result is a freshly allocated grid.
func Step(current *Grid) *Grid {
	next := NewGrid()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if rules.ApplyConwayRules(current.CountAliveNeighbors(x, y), current.Get(x, y)) {
				next.cells[idx(x, y)] = true
			}
		}
	}
	return next
}
