package engine

import (
	"fmt"
	"sync"
)

// Engine owns a single game. Tick advances it by one frame; Drop, Restart
// and Pointer deliver player input. All methods are safe for concurrent use.
type Engine struct {
	mu        sync.RWMutex
	cfg       Config
	state     State
	colors    ColorSource
	observers []Observer
	history   *history
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithColorSource replaces the seeded random block colors.
func WithColorSource(src ColorSource) Option {
	return func(e *Engine) {
		e.colors = src
	}
}

// WithObserver subscribes o before the first block is created.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, o)
	}
}

// New validates cfg and returns an engine in ModeBounce with the first
// active block already created.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:     cfg,
		history: newHistory(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.colors == nil {
		e.colors = NewRandomColors(cfg.Seed)
	}

	e.reset()
	return e, nil
}

// reset seeds the base block and creates the first active block.
func (e *Engine) reset() {
	e.state = State{
		Boxes: []Block{{
			X:     e.cfg.CanvasWidth/2 - e.cfg.InitialBoxWidth/2,
			Y:     e.cfg.BaseY,
			Width: e.cfg.InitialBoxWidth,
			Color: White,
		}},
		Debris:  Block{Color: White},
		Current: 1,
		Mode:    ModeBounce,
		XSpeed:  e.cfg.InitialSpeedX,
		YSpeed:  e.cfg.InitialSpeedY,
	}
	e.state.Score = e.state.Current - 1
	e.history.reset()
	e.createNewBox()
}

// createNewBox appends the next active block above the stack. Its height
// depends only on the step number, not on the real top of the stack.
func (e *Engine) createNewBox() {
	s := &e.state
	block := Block{
		X:     0,
		Y:     float64((s.Current + e.cfg.SpawnOffset) * e.cfg.BoxHeight),
		Width: s.Boxes[s.Current-1].Width,
		Color: stepColor(s.Current, e.colors),
	}
	s.Boxes = append(s.Boxes[:s.Current], block)
}

// Tick advances one frame. It is a no-op in ModeGameOver, so a frame clock
// may keep calling it.
func (e *Engine) Tick() {
	e.mu.Lock()
	events := e.tick()
	e.mu.Unlock()

	e.publish(events)
}

func (e *Engine) tick() []Event {
	s := &e.state
	if s.Mode == ModeGameOver {
		return nil
	}
	if len(s.Boxes) == 0 || s.Current < 1 || s.Current >= len(s.Boxes) {
		if e.cfg.Strict {
			panic(fmt.Sprintf("engine: tick with %d boxes and current %d", len(s.Boxes), s.Current))
		}
		return nil
	}

	e.scroll()

	var events []Event
	switch s.Mode {
	case ModeBounce:
		e.bounce()
	case ModeFall:
		events = e.fall()
	}

	s.Debris.Y -= s.YSpeed
	return events
}

// bounce moves the active block and reflects it at the edge it is heading
// toward. A block past the other edge is left alone.
func (e *Engine) bounce() {
	s := &e.state
	active := &s.Boxes[s.Current]
	active.X += s.XSpeed

	movingRight := s.XSpeed > 0
	movingLeft := s.XSpeed < 0
	hitRight := active.X+active.Width > e.cfg.CanvasWidth
	hitLeft := active.X < 0

	if (movingRight && hitRight) || (movingLeft && hitLeft) {
		s.XSpeed = -s.XSpeed
	}
}

// fall lowers the active block and clamps it onto the stack top once it
// reaches or passes it.
func (e *Engine) fall() []Event {
	s := &e.state
	active := &s.Boxes[s.Current]
	active.Y -= s.YSpeed

	target := s.Boxes[s.Current-1].Y + float64(e.cfg.BoxHeight)
	if active.Y > target {
		return nil
	}
	active.Y = target
	return e.land()
}

// scroll moves the camera one pixel while a catch-up is owed.
func (e *Engine) scroll() {
	s := &e.state
	if s.ScrollCounter > 0 {
		s.CameraY++
		s.ScrollCounter--
	}
}

// Drop starts the fall of the active block. It is ignored unless the engine
// is in ModeBounce.
func (e *Engine) Drop() bool {
	e.mu.Lock()
	ev, ok := e.drop()
	e.mu.Unlock()

	if ok {
		e.publish([]Event{ev})
	}
	return ok
}

func (e *Engine) drop() (Event, bool) {
	if e.state.Mode != ModeBounce {
		return Event{}, false
	}
	e.state.Mode = ModeFall
	return Event{Kind: EventDropped, Score: e.state.Score}, true
}

// Restart resets the whole game. It is ignored unless the engine is in
// ModeGameOver.
func (e *Engine) Restart() bool {
	e.mu.Lock()
	ev, ok := e.restart()
	e.mu.Unlock()

	if ok {
		e.publish([]Event{ev})
	}
	return ok
}

func (e *Engine) restart() (Event, bool) {
	if e.state.Mode != ModeGameOver {
		return Event{}, false
	}
	e.reset()
	return Event{Kind: EventRestarted, Score: e.state.Score}, true
}

// Pointer handles a single pointer press: restart after a game over, drop
// while bouncing, nothing while falling. It returns the event it caused.
func (e *Engine) Pointer() (EventKind, bool) {
	e.mu.Lock()
	var (
		ev Event
		ok bool
	)
	switch e.state.Mode {
	case ModeGameOver:
		ev, ok = e.restart()
	case ModeBounce:
		ev, ok = e.drop()
	}
	e.mu.Unlock()

	if !ok {
		return 0, false
	}
	e.publish([]Event{ev})
	return ev.Kind, true
}

// Subscribe adds an observer for all later events.
func (e *Engine) Subscribe(o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, o)
}

func (e *Engine) publish(events []Event) {
	if len(events) == 0 {
		return
	}

	e.mu.RLock()
	observers := make([]Observer, len(e.observers))
	copy(observers, e.observers)
	e.mu.RUnlock()

	for _, ev := range events {
		for _, o := range observers {
			o.OnEvent(ev)
		}
	}
}

// State returns a copy of the game state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.clone()
}

// Mode returns the current phase of the game.
func (e *Engine) Mode() Mode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Mode
}

// Score is always current-1: the number of blocks landed since the reset.
func (e *Engine) Score() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Score
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Landings lists this game's landings in stack order, including the final
// miss if the game is over.
func (e *Engine) Landings() []Landing {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.list()
}

// Landing returns the landing of the block at stack index step.
func (e *Engine) Landing(step int) (Landing, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.history.get(step)
}
