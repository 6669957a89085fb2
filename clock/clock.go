// Package clock delivers frame callbacks to a game loop. A callback runs
// once per request; loops chain by requesting the next frame from inside the
// current one.
package clock

import (
	"sync"
	"time"
)

// Frame describes the frame a callback runs in.
type Frame struct {
	Number    int64
	DeltaTime float64
}

// TickFunc is a frame callback.
type TickFunc func(frame Frame)

// Clock schedules frame callbacks.
type Clock interface {
	// RequestTick runs fn once on the next frame.
	RequestTick(fn TickFunc)
	// Cancel drops every pending request.
	Cancel()
}

// Stats provides statistics about callback execution.
type Stats struct {
	Frames        int64
	Callbacks     int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type statsInternal struct {
	frames        int64
	callbacks     int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// driver holds the request queue shared by every clock implementation.
type driver struct {
	mu      sync.Mutex
	pending []TickFunc
	frame   int64
	stats   statsInternal
}

func newDriver() driver {
	return driver{
		stats: statsInternal{minDuration: time.Duration(1<<63 - 1)},
	}
}

func (d *driver) RequestTick(fn TickFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = append(d.pending, fn)
}

func (d *driver) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = nil
}

// Pending returns the number of callbacks waiting for the next frame.
func (d *driver) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// step runs the callbacks requested before it was called. Requests made by
// those callbacks wait for the next step.
func (d *driver) step(dt float64) int {
	d.mu.Lock()
	fns := d.pending
	d.pending = nil
	d.frame++
	frame := Frame{Number: d.frame, DeltaTime: dt}
	d.stats.frames++
	d.mu.Unlock()

	for _, fn := range fns {
		start := time.Now()
		fn(frame)
		duration := time.Since(start)

		d.mu.Lock()
		stats := &d.stats
		stats.callbacks++
		stats.lastDuration = duration
		stats.totalDuration += duration
		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
		d.mu.Unlock()
	}

	return len(fns)
}

// Stats returns statistics about callback execution so far.
func (d *driver) Stats() Stats {
	d.mu.Lock()
	defer d.mu.Unlock()

	internal := d.stats
	stats := Stats{
		Frames:        internal.frames,
		Callbacks:     internal.callbacks,
		MaxDuration:   internal.maxDuration,
		LastDuration:  internal.lastDuration,
		TotalDuration: internal.totalDuration,
	}
	if internal.callbacks > 0 {
		stats.MinDuration = internal.minDuration
		stats.AvgDuration = internal.totalDuration / time.Duration(internal.callbacks)
	}
	return stats
}
