package clock

import (
	"context"
	"time"
)

// TickerClock runs frames at a fixed wall-clock interval.
type TickerClock struct {
	driver
	interval time.Duration
}

func NewTickerClock(interval time.Duration) *TickerClock {
	return &TickerClock{
		driver:   newDriver(),
		interval: interval,
	}
}

// Run executes frames at the clock's interval until the context is cancelled.
func (c *TickerClock) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			c.step(dt)
		}
	}
}
