package render

import (
	"image/color"
	"math"
)

// Raster is a scene sampled onto a coarse cell grid, for terminal hosts.
type Raster struct {
	Cols, Rows int
	cells      []color.RGBA
	filled     []bool
}

// At returns the color painted at a cell, if any.
func (r *Raster) At(col, row int) (color.RGBA, bool) {
	if col < 0 || col >= r.Cols || row < 0 || row >= r.Rows {
		return color.RGBA{}, false
	}
	i := row*r.Cols + col
	return r.cells[i], r.filled[i]
}

// Grid paints the scene's visible rects onto cols x rows cells. A cell is
// painted when the rect covers any part of it; later rects win.
func Grid(scene Scene, cols, rows int) *Raster {
	cols, rows = max(cols, 0), max(rows, 0)
	r := &Raster{
		Cols:   cols,
		Rows:   rows,
		cells:  make([]color.RGBA, cols*rows),
		filled: make([]bool, cols*rows),
	}
	if cols == 0 || rows == 0 {
		return r
	}

	col := func(x float64) float64 { return x * float64(cols) / scene.Width }
	row := func(y float64) float64 { return y * float64(rows) / scene.Height }

	for _, rect := range scene.VisibleRects() {
		c0 := clamp(int(math.Floor(col(rect.X))), 0, cols)
		c1 := clamp(int(math.Ceil(col(rect.X+rect.W))), 0, cols)
		r0 := clamp(int(math.Floor(row(rect.Y))), 0, rows)
		r1 := clamp(int(math.Ceil(row(rect.Y+rect.H))), 0, rows)

		for y := r0; y < r1; y++ {
			for x := c0; x < c1; x++ {
				i := y*cols + x
				r.cells[i] = rect.Color
				r.filled[i] = true
			}
		}
	}
	return r
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
