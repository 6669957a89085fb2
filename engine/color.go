package engine

import (
	"image/color"
	"math/rand/v2"
	"time"
)

// White colors the base block and the empty debris slab.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// ColorSource hands out colors for newly created blocks.
type ColorSource interface {
	Next() color.RGBA
}

type randomColors struct {
	rng *rand.Rand
}

// NewRandomColors returns opaque colors with each channel in [0, 255).
// A zero seed is replaced by the current time.
func NewRandomColors(seed uint64) ColorSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randomColors{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *randomColors) Next() color.RGBA {
	return color.RGBA{
		R: uint8(r.rng.IntN(255)),
		G: uint8(r.rng.IntN(255)),
		B: uint8(r.rng.IntN(255)),
		A: 255,
	}
}

// PaletteColors cycles through a fixed list. An empty palette yields White.
type PaletteColors struct {
	Palette []color.RGBA
	next    int
}

func (p *PaletteColors) Next() color.RGBA {
	if len(p.Palette) == 0 {
		return White
	}
	c := p.Palette[p.next%len(p.Palette)]
	p.next++
	return c
}

// stepColor picks the color of the block created for step.
// The step 0 branch cannot fire: the base block is colored on its own and
// current starts at 1, only ever growing. It is kept as the reference
// behavior for step numbering.
func stepColor(step int, src ColorSource) color.RGBA {
	if step == 0 {
		return White
	}
	return src.Next()
}
