package host

// Input is one frame's worth of player input, sampled by a host before it
// steps the clock.
type Input struct {
	// Drop is a drop key press.
	Drop bool
	// Restart is an explicit restart key press.
	Restart bool
	// Pointer is a mouse click or touch.
	Pointer bool
}

func (in Input) Any() bool {
	return in.Drop || in.Restart || in.Pointer
}

// Handle applies in to the loop. A pointer press wins over keys in the same
// frame. It reports whether any input was accepted.
func (l *Loop) Handle(in Input) bool {
	switch {
	case in.Pointer:
		return l.Pointer()
	case in.Drop:
		return l.Drop()
	case in.Restart:
		return l.Restart()
	}
	return false
}
