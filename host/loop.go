// Package host runs an engine on a frame clock and routes player input to it.
package host

import (
	"log"
	"sync"

	"github.com/plus3/stacker/clock"
	"github.com/plus3/stacker/engine"
)

// Loop chains frame requests on a clock while the game is running. It
// stops requesting frames on game over and resumes after a restart.
type Loop struct {
	engine  *engine.Engine
	clock   clock.Clock
	logger  *log.Logger
	onFrame func(engine.State)

	mu      sync.Mutex
	running bool
	gen     uint64
	frames  int64
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger logs game events. A nil logger keeps the loop silent.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithFrameHandler is called after every tick with the resulting state,
// including the tick that ends the game.
func WithFrameHandler(fn func(engine.State)) Option {
	return func(l *Loop) {
		l.onFrame = fn
	}
}

func NewLoop(e *engine.Engine, c clock.Clock, opts ...Option) *Loop {
	l := &Loop{
		engine: e,
		clock:  c,
	}
	for _, opt := range opts {
		opt(l)
	}
	e.Subscribe(engine.ObserverFunc(l.logEvent))
	return l
}

// Start requests the first frame. It does nothing if the loop is running.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return
	}
	l.running = true
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	l.schedule(gen)
}

// resume begins a new frame chain. Any older chain fails the generation
// check on its next frame and cannot clear running.
func (l *Loop) resume() {
	l.mu.Lock()
	l.running = true
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	l.schedule(gen)
}

// Stop cancels pending frames.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.running = false
	l.mu.Unlock()
	l.clock.Cancel()
}

func (l *Loop) schedule(gen uint64) {
	l.clock.RequestTick(func(f clock.Frame) {
		l.frame(gen, f)
	})
}

func (l *Loop) frame(gen uint64, _ clock.Frame) {
	l.mu.Lock()
	if !l.running || l.gen != gen {
		l.mu.Unlock()
		return
	}
	l.frames++
	l.mu.Unlock()

	l.engine.Tick()
	state := l.engine.State()

	over := l.settle(gen, state)

	if l.onFrame != nil {
		l.onFrame(state)
	}

	if !over {
		l.schedule(gen)
	}
}

// settle ends the chain gen on game over. A restart that slipped in after
// state was read has already moved gen on, so running stays set.
func (l *Loop) settle(gen uint64, state engine.State) bool {
	if state.Mode != engine.ModeGameOver {
		return false
	}

	l.mu.Lock()
	if l.gen == gen {
		l.running = false
	}
	l.mu.Unlock()
	return true
}

// Drop forwards a drop input.
func (l *Loop) Drop() bool {
	return l.engine.Drop()
}

// Restart resets a finished game and resumes the frame chain.
func (l *Loop) Restart() bool {
	if !l.engine.Restart() {
		return false
	}
	l.resume()
	return true
}

// Pointer forwards a pointer press: restart after game over, drop otherwise.
func (l *Loop) Pointer() bool {
	kind, ok := l.engine.Pointer()
	if ok && kind == engine.EventRestarted {
		l.resume()
	}
	return ok
}

func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Frames returns the number of frames the loop has ticked.
func (l *Loop) Frames() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

func (l *Loop) logEvent(ev engine.Event) {
	if l.logger == nil {
		return
	}

	switch ev.Kind {
	case engine.EventLanded:
		l.logger.Printf("landed step=%d diff=%.1f width=%.1f score=%d",
			ev.Landing.Step, ev.Landing.Diff, ev.Landing.Width, ev.Score)
	case engine.EventGameOver:
		l.logger.Printf("game over step=%d diff=%.1f score=%d", ev.Landing.Step, ev.Landing.Diff, ev.Score)
	case engine.EventRestarted:
		l.logger.Printf("restarted")
	}
}
