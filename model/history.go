package model

// History is the append-only timeline of generations. Index 0 is the seed.
type History struct {
	generations []*Grid
}

// NewHistory creates a history seeded with the initial generation
func NewHistory(seed *Grid) *History {
	return &History{generations: []*Grid{seed}}
}

// Append adds grid as the new latest generation
func (h *History) Append(grid *Grid) {
	h.generations = append(h.generations, grid)
}

// Latest returns the most recent generation
func (h *History) Latest() *Grid {
	return h.generations[len(h.generations)-1]
}

// Len returns the number of generations retained, seed included
func (h *History) Len() int {
	return len(h.generations)
}

// Generation returns the index of the latest generation
func (h *History) Generation() int {
	return len(h.generations) - 1
}

// At returns generation i, or nil if i is out of range
func (h *History) At(i int) *Grid {
	if i < 0 || i >= len(h.generations) {
		return nil
	}
	return h.generations[i]
}

// Advance steps the latest generation and appends the result
func (h *History) Advance() *Grid {
	next := Step(h.Latest())
	h.Append(next)
	return next
}

// IsStagnant checks if the latest generation repeats one of the two before it,
// i.e. the board is a still life or a period-2 oscillator
func (h *History) IsStagnant() bool {
	n := len(h.generations)
	if n < 2 {
		return false
	}

	currentHash := h.generations[n-1].Hash()
	if h.generations[n-2].Hash() == currentHash {
		return true
	}
	if n >= 3 && h.generations[n-3].Hash() == currentHash {
		return true
	}

	return false
}
