package engine

import "github.com/kamstrup/intmap"

// Landing records one landing resolution.
type Landing struct {
	// Step is the stack index of the block that landed.
	Step int
	// Diff is active.X - previous.X at touchdown.
	Diff float64
	// X and Width describe the surviving block. On a miss they are the
	// block's geometry at touchdown.
	X     float64
	Width float64
	// Debris is the slab cut off by this landing. Zero on a miss.
	Debris Block
	Miss   bool
}

// Perfect reports whether the block landed exactly on the one below.
func (l Landing) Perfect() bool {
	return !l.Miss && l.Diff == 0
}

// history indexes landings by stack step. Steps are dense from 1, so
// ordered listing walks keys instead of sorting.
type history struct {
	entries *intmap.Map[int, Landing]
	last    int
}

func newHistory() *history {
	return &history{entries: intmap.New[int, Landing](64)}
}

func (h *history) record(l Landing) {
	h.entries.Put(l.Step, l)
	if l.Step > h.last {
		h.last = l.Step
	}
}

func (h *history) get(step int) (Landing, bool) {
	return h.entries.Get(step)
}

func (h *history) list() []Landing {
	out := make([]Landing, 0, h.entries.Len())
	for step := 1; step <= h.last; step++ {
		if l, ok := h.entries.Get(step); ok {
			out = append(out, l)
		}
	}
	return out
}

func (h *history) reset() {
	h.entries.Clear()
	h.last = 0
}
