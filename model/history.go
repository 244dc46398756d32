package model

// History keeps recent grid hashes for cycle detection.
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps at most size hashes; size below 3 is raised to 3.
func NewHistory(size int) *History {
	return &History{size: max(size, 3)}
}

// Update adds a hash and drops the oldest beyond the configured size.
func (h *History) Update(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash repeats one of the last three recorded
// states, which covers still lifes and period-2 and period-3 oscillators.
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}

// Reset forgets every recorded hash.
func (h *History) Reset() {
	h.hashes = nil
}
