package engine

import "math"

// land resolves the active block against the one below it. A miss ends the
// game and leaves current untouched. Otherwise the overhang is cut into
// debris, the camera is owed one box height, and the next block spawns.
func (e *Engine) land() []Event {
	s := &e.state
	active := &s.Boxes[s.Current]
	previous := s.Boxes[s.Current-1]

	diff := active.X - previous.X
	if math.Abs(diff) >= active.Width {
		s.Mode = ModeGameOver
		l := Landing{
			Step:  s.Current,
			Diff:  diff,
			X:     active.X,
			Width: active.Width,
			Miss:  true,
		}
		e.history.record(l)
		return []Event{{Kind: EventGameOver, Score: s.Score, Landing: l}}
	}

	originalX := active.X
	overhangsRight := active.X > previous.X
	if overhangsRight {
		active.Width -= diff
	} else {
		active.Width += diff
		active.X = previous.X
	}

	// The cut-off side starts at the new right edge when the block hung over
	// the right, and at the old left edge otherwise.
	debrisX := originalX
	if overhangsRight {
		debrisX = active.X + active.Width
	}
	s.Debris = Block{
		X:     debrisX,
		Y:     active.Y,
		Width: math.Abs(diff),
		Color: active.Color,
	}

	l := Landing{
		Step:   s.Current,
		Diff:   diff,
		X:      active.X,
		Width:  active.Width,
		Debris: s.Debris,
	}
	e.history.record(l)

	s.Current++
	s.ScrollCounter = e.cfg.BoxHeight
	s.Mode = ModeBounce
	s.Score = s.Current - 1
	e.createNewBox()

	return []Event{{Kind: EventLanded, Score: s.Score, Landing: l}}
}
