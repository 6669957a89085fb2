package engine

import "image/color"

// Block is a horizontal slab of the tower. Y is stack-relative: it grows
// upward from the stack base and is independent of the camera.
type Block struct {
	X     float64
	Y     float64
	Width float64
	Color color.RGBA
}

// Right returns the block's right edge.
func (b Block) Right() float64 {
	return b.X + b.Width
}

// Mode is the position of the engine's state machine.
type Mode int

const (
	// ModeBounce moves the active block back and forth until a drop arrives.
	ModeBounce Mode = iota
	// ModeFall lowers the active block onto the top of the stack.
	ModeFall
	// ModeGameOver is terminal until a restart.
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeBounce:
		return "bounce"
	case ModeFall:
		return "fall"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
