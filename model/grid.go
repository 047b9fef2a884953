package model

import (
	"crypto/md5"
	"fmt"
)

const (
	// Width is the fixed number of columns on the board
	Width = 20
	// Height is the fixed number of rows on the board
	Height = 30
)

// neighborOffsets is the Moore neighborhood, excluding the cell itself
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is one generation of the board. Cells are stored row-major in a single
// buffer; a Grid is only written while it is being built by the codec or the engine.
type Grid struct {
	cells []bool
}

// NewGrid creates an all-dead grid
func NewGrid() *Grid {
	return &Grid{cells: make([]bool, Width*Height)}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return Width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return Height
}

func idx(x, y int) int {
	return x + y*Width
}

// InBounds reports whether (x, y) lies on the board
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Get returns the state of a cell. The caller guarantees (x, y) is in bounds.
func (g *Grid) Get(x, y int) bool {
	return g.cells[idx(x, y)]
}

// Set sets a cell to alive (true) or dead (false). Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if InBounds(x, y) {
		g.cells[idx(x, y)] = alive
	}
}

// IsAliveBounded returns false for coordinates off the board, otherwise the cell state
func (g *Grid) IsAliveBounded(x, y int) bool {
	if !InBounds(x, y) {
		return false
	}
	return g.Get(x, y)
}

// CountAliveNeighbors counts living cells in the Moore neighborhood of (x, y).
// Edges do not wrap.
func (g *Grid) CountAliveNeighbors(x, y int) (count int) {
	for _, off := range neighborOffsets {
		if g.IsAliveBounded(x+off[0], y+off[1]) {
			count++
		}
	}
	return
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Equal reports whether both grids hold the same cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	for i, alive := range g.cells {
		if other.cells[i] != alive {
			return false
		}
	}
	return true
}

// Hash returns an MD5 fingerprint of the cell states
func (g *Grid) Hash() string {
	h := md5.New()
	for _, alive := range g.cells {
		if alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
