package model

import "testing"

func gridWith(cells ...[2]int) *Grid {
	g := NewGrid()
	for _, c := range cells {
		g.Set(c[0], c[1], true)
	}
	return g
}

func TestNewGridIsDead(t *testing.T) {
	g := NewGrid()
	if g.GetWidth() != 20 || g.GetHeight() != 30 {
		t.Fatalf("Expected 20x30 grid, got %dx%d", g.GetWidth(), g.GetHeight())
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Errorf("Expected empty grid, got %d living cells", n)
	}
}

func TestSetIgnoresOutOfBounds(t *testing.T) {
	g := NewGrid()
	g.Set(-1, 0, true)
	g.Set(Width, 0, true)
	g.Set(0, Height, true)
	if n := g.CountLivingCells(); n != 0 {
		t.Errorf("Expected out of bounds writes to be ignored, got %d living cells", n)
	}
}

func TestRowMajorLayout(t *testing.T) {
	g := gridWith([2]int{3, 2})
	if !g.cells[3+2*Width] {
		t.Error("Expected cell (3,2) at index x + y*width")
	}
}

func TestIsAliveBounded(t *testing.T) {
	g := gridWith([2]int{0, 0}, [2]int{Width - 1, Height - 1})

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{Width - 1, Height - 1, true},
		{1, 0, false},
		{-1, 0, false},
		{0, -1, false},
		{Width, 0, false},
		{0, Height, false},
	}
	for _, tt := range tests {
		if got := g.IsAliveBounded(tt.x, tt.y); got != tt.want {
			t.Errorf("IsAliveBounded(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestCountAliveNeighborsAtEdges(t *testing.T) {
	g := gridWith([2]int{0, 0})

	if n := g.CountAliveNeighbors(0, 0); n != 0 {
		t.Errorf("Expected 0 neighbors at corner, got %d", n)
	}
	if n := g.CountAliveNeighbors(1, 1); n != 1 {
		t.Errorf("Expected 1 neighbor at (1,1), got %d", n)
	}
	// no wrapping to the opposite corner
	if n := g.CountAliveNeighbors(Width-1, Height-1); n != 0 {
		t.Errorf("Expected 0 neighbors at far corner, got %d", n)
	}
}

func TestCountAliveNeighborsFull(t *testing.T) {
	g := NewGrid()
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			g.Set(x, y, true)
		}
	}

	if n := g.CountAliveNeighbors(5, 5); n != 8 {
		t.Errorf("Expected 8 neighbors, got %d", n)
	}
	if n := g.CountAliveNeighbors(4, 4); n != 3 {
		t.Errorf("Expected 3 neighbors at block corner, got %d", n)
	}
}

func TestEqualAndHash(t *testing.T) {
	a := gridWith([2]int{1, 1}, [2]int{2, 2})
	b := gridWith([2]int{1, 1}, [2]int{2, 2})
	c := gridWith([2]int{1, 1})

	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Error("Expected identical grids to be equal with the same hash")
	}
	if a.Equal(c) || a.Hash() == c.Hash() {
		t.Error("Expected different grids to differ")
	}
	if a.Equal(nil) {
		t.Error("Expected grid not to equal nil")
	}
}
