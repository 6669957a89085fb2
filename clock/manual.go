package clock

// ManualClock advances only when its owner calls Step. Hosts with their own
// frame loop (Ebiten's Update, raylib's window loop) drive it once per
// frame; tests drive it directly.
type ManualClock struct {
	driver
}

func NewManualClock() *ManualClock {
	return &ManualClock{driver: newDriver()}
}

// Step runs one frame with the given delta time in seconds and returns the
// number of callbacks it ran.
func (c *ManualClock) Step(dt float64) int {
	return c.step(dt)
}
