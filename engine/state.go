package engine

import "slices"

// State is the whole mutable game aggregate. Readers get copies through
// Engine.State; only the engine writes the live value.
type State struct {
	// Boxes[0] is the base, Boxes[Current] the active block.
	Boxes []Block
	// Debris is the most recent sliced-off overhang. It never collides.
	Debris Block

	ScrollCounter int
	CameraY       int

	Current int
	Mode    Mode

	XSpeed float64
	YSpeed float64

	Score int
}

func (s State) clone() State {
	s.Boxes = slices.Clone(s.Boxes)
	return s
}

// Active returns the block that is bouncing or falling.
func (s State) Active() (Block, bool) {
	if s.Current < 1 || s.Current >= len(s.Boxes) {
		return Block{}, false
	}
	return s.Boxes[s.Current], true
}

// Top returns the most recently landed block, the target of the active one.
func (s State) Top() (Block, bool) {
	if s.Current < 1 || s.Current > len(s.Boxes) {
		return Block{}, false
	}
	return s.Boxes[s.Current-1], true
}
