package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the geometry and tuning of a game. All lengths are pixels.
type Config struct {
	CanvasWidth  float64
	CanvasHeight float64

	// BoxHeight is both the slab thickness and the number of ticks the camera
	// spends catching up after a landing.
	BoxHeight int

	InitialBoxWidth float64
	// BaseY is the stack-relative y of the base block.
	BaseY float64
	// ViewportYOffset maps stack-relative y to screen y:
	// screenY = ViewportYOffset - y + cameraY.
	ViewportYOffset float64

	InitialSpeedX float64
	InitialSpeedY float64

	// SpawnOffset places a new block at (current+SpawnOffset)*BoxHeight.
	SpawnOffset int

	// Seed for the block color generator. Zero seeds from the wall clock.
	Seed uint64

	// Strict turns invariant violations into panics instead of no-ops.
	Strict bool
}

// DefaultConfig returns the classic 400x600 board.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:     400,
		CanvasHeight:    600,
		BoxHeight:       50,
		InitialBoxWidth: 200,
		BaseY:           200,
		ViewportYOffset: 700,
		InitialSpeedX:   5,
		InitialSpeedY:   5,
		SpawnOffset:     10,
	}
}

// Validate reports the first setting that cannot produce a playable board.
func (c Config) Validate() error {
	switch {
	case c.CanvasWidth <= 0:
		return fmt.Errorf("%w: canvas width %v must be positive", ErrInvalidConfig, c.CanvasWidth)
	case c.CanvasHeight <= 0:
		return fmt.Errorf("%w: canvas height %v must be positive", ErrInvalidConfig, c.CanvasHeight)
	case c.BoxHeight <= 0:
		return fmt.Errorf("%w: box height %d must be positive", ErrInvalidConfig, c.BoxHeight)
	case c.InitialBoxWidth <= 0:
		return fmt.Errorf("%w: initial box width %v must be positive", ErrInvalidConfig, c.InitialBoxWidth)
	case c.InitialBoxWidth > c.CanvasWidth:
		return fmt.Errorf("%w: initial box width %v exceeds canvas width %v", ErrInvalidConfig, c.InitialBoxWidth, c.CanvasWidth)
	case c.InitialSpeedX <= 0:
		return fmt.Errorf("%w: horizontal speed %v must be positive", ErrInvalidConfig, c.InitialSpeedX)
	case c.InitialSpeedY <= 0:
		return fmt.Errorf("%w: vertical speed %v must be positive", ErrInvalidConfig, c.InitialSpeedY)
	case c.SpawnOffset < 1:
		return fmt.Errorf("%w: spawn offset %d must be at least 1", ErrInvalidConfig, c.SpawnOffset)
	}
	return nil
}
