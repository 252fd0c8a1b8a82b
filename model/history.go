package model

// History remembers the hashes of recent generations to spot still lifes
// and short oscillators.
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps at most size hashes; sizes below 3 are raised to 3.
func NewHistory(size int) *History {
	return &History{size: max(size, 3)}
}

// Record adds g as the newest generation and reports whether it repeats one
// of the previous three.
func (h *History) Record(g *Grid) bool {
	hash := g.Hash()
	stagnant := h.seen(hash)

	h.hashes = append(h.hashes, hash)
	// Keep only last size states to detect cycles
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return stagnant
}

func (h *History) seen(hash string) bool {
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == hash {
			return true
		}
	}
	return false
}

// Len returns the number of remembered generations.
func (h *History) Len() int {
	return len(h.hashes)
}
