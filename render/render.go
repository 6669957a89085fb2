// Package render projects engine state into screen-space rectangles. It
// draws nothing itself; hosts paint the resulting Scene with their own
// graphics library.
package render

import (
	"image/color"

	"github.com/plus3/stacker/engine"
)

var (
	Background   = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	GameOverVeil = color.NRGBA{R: 255, A: 128}
	TextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const GameOverMessage = "Game Over"

// Rect is an axis-aligned screen rectangle. Y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
	// Color is the block's display color.
	Color color.RGBA
}

// Visible reports whether any part of r lies on a width x height screen.
func (r Rect) Visible(width, height float64) bool {
	return r.W > 0 && r.H > 0 &&
		r.X < width && r.X+r.W > 0 &&
		r.Y < height && r.Y+r.H > 0
}

// Overlay is the text and veil drawn above the blocks.
type Overlay struct {
	Score    int
	GameOver bool
	Veil     color.NRGBA
	Message  string
}

// Scene is everything a host needs to paint one frame.
type Scene struct {
	Width, Height float64
	Background    color.RGBA
	// Rects holds the stack base-first, then the debris.
	Rects   []Rect
	Overlay Overlay
}

// ScreenY converts a stack-relative y into a screen y.
func ScreenY(y float64, cameraY int, offset float64) float64 {
	return offset - y + float64(cameraY)
}

// Project maps a state onto the canvas described by cfg.
func Project(state engine.State, cfg engine.Config) Scene {
	scene := Scene{
		Width:      cfg.CanvasWidth,
		Height:     cfg.CanvasHeight,
		Background: Background,
		Rects:      make([]Rect, 0, len(state.Boxes)+1),
		Overlay: Overlay{
			Score: state.Score,
		},
	}

	for _, box := range state.Boxes {
		scene.Rects = append(scene.Rects, blockRect(box, state.CameraY, cfg))
	}
	scene.Rects = append(scene.Rects, blockRect(state.Debris, state.CameraY, cfg))

	if state.Mode == engine.ModeGameOver {
		scene.Overlay.GameOver = true
		scene.Overlay.Veil = GameOverVeil
		scene.Overlay.Message = GameOverMessage
	}
	return scene
}

func blockRect(b engine.Block, cameraY int, cfg engine.Config) Rect {
	return Rect{
		X:     b.X,
		Y:     ScreenY(b.Y, cameraY, cfg.ViewportYOffset),
		W:     b.Width,
		H:     float64(cfg.BoxHeight),
		Color: b.Color,
	}
}

// VisibleRects returns the rects that intersect the canvas, in paint order.
func (s Scene) VisibleRects() []Rect {
	out := make([]Rect, 0, len(s.Rects))
	for _, r := range s.Rects {
		if r.Visible(s.Width, s.Height) {
			out = append(out, r)
		}
	}
	return out
}
