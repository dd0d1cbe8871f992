package model

// History remembers recent grid hashes to detect still lifes and short cycles
type History struct {
	hashes []string
	size   int
}

// NewHistory keeps up to size recent states; size below 1 keeps one
func NewHistory(size int) *History {
	return &History{size: max(1, size)}
}

// Record adds g to the history and reports whether it repeats a remembered state
func (h *History) Record(g *Grid) bool {
	hash := g.Hash()
	repeated := false
	for _, prev := range h.hashes {
		if prev == hash {
			repeated = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return repeated
}

// Reset forgets all recorded states
func (h *History) Reset() {
	h.hashes = nil
}
