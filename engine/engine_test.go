package engine_test

import (
	"image/color"
	"math"
	"sync"
	"testing"

	"github.com/plus3/stacker/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{R: 200, A: 255}
	green = color.RGBA{G: 200, A: 255}
	blue  = color.RGBA{B: 200, A: 255}
)

func newTestEngine(t *testing.T, cfg engine.Config, opts ...engine.Option) *engine.Engine {
	t.Helper()
	opts = append([]engine.Option{
		engine.WithColorSource(&engine.PaletteColors{Palette: []color.RGBA{red, green, blue}}),
	}, opts...)
	e, err := engine.New(cfg, opts...)
	require.NoError(t, err)
	return e
}

// wideConfig leaves room for the active block to reach a total miss.
func wideConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.CanvasWidth = 1000
	return cfg
}

func tickN(e *engine.Engine, n int) {
	for range n {
		e.Tick()
	}
}

// settle ticks until the active block has finished falling.
func settle(t *testing.T, e *engine.Engine) {
	t.Helper()
	for i := 0; i < 10000 && e.Mode() == engine.ModeFall; i++ {
		e.Tick()
	}
	require.NotEqual(t, engine.ModeFall, e.Mode(), "block never landed")
}

func dropAfter(t *testing.T, e *engine.Engine, ticks int) {
	t.Helper()
	tickN(e, ticks)
	require.True(t, e.Drop())
	settle(t, e)
}

func TestNewInitialState(t *testing.T) {
	e := newTestEngine(t, engine.DefaultConfig())
	s := e.State()

	assert.Equal(t, engine.ModeBounce, s.Mode)
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 0, s.ScrollCounter)
	assert.Equal(t, 0, s.CameraY)
	assert.Equal(t, 5.0, s.XSpeed)
	assert.Equal(t, 5.0, s.YSpeed)
	require.Len(t, s.Boxes, 2)

	base := s.Boxes[0]
	assert.Equal(t, engine.Block{X: 100, Y: 200, Width: 200, Color: engine.White}, base)

	active, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, engine.Block{X: 0, Y: 550, Width: 200, Color: red}, active)

	assert.Equal(t, engine.Block{Color: engine.White}, s.Debris)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*engine.Config)
	}{
		{"zero canvas width", func(c *engine.Config) { c.CanvasWidth = 0 }},
		{"negative canvas height", func(c *engine.Config) { c.CanvasHeight = -1 }},
		{"zero box height", func(c *engine.Config) { c.BoxHeight = 0 }},
		{"zero initial width", func(c *engine.Config) { c.InitialBoxWidth = 0 }},
		{"initial width wider than canvas", func(c *engine.Config) { c.InitialBoxWidth = 401 }},
		{"zero x speed", func(c *engine.Config) { c.InitialSpeedX = 0 }},
		{"negative y speed", func(c *engine.Config) { c.InitialSpeedY = -5 }},
		{"zero spawn offset", func(c *engine.Config) { c.SpawnOffset = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := engine.DefaultConfig()
			tt.mutate(&cfg)

			e, err := engine.New(cfg)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, engine.ErrInvalidConfig)
		})
	}
}

func TestBounce(t *testing.T) {
	t.Run("moves by xSpeed each tick", func(t *testing.T) {
		e := newTestEngine(t, engine.DefaultConfig())
		for n := 1; n <= 40; n++ {
			e.Tick()
			active, _ := e.State().Active()
			assert.Equal(t, float64(5*n), active.X)
			assert.Equal(t, 5.0, e.State().XSpeed)
		}
	})

	t.Run("reflects once at the right edge", func(t *testing.T) {
		e := newTestEngine(t, engine.DefaultConfig())
		tickN(e, 40)
		active, _ := e.State().Active()
		require.Equal(t, 200.0, active.X)

		e.Tick()
		s := e.State()
		active, _ = s.Active()
		assert.Equal(t, 205.0, active.X)
		assert.Equal(t, -5.0, s.XSpeed)

		e.Tick()
		s = e.State()
		active, _ = s.Active()
		assert.Equal(t, 200.0, active.X)
		assert.Equal(t, -5.0, s.XSpeed)
	})

	t.Run("reflects once at the left edge", func(t *testing.T) {
		e := newTestEngine(t, engine.DefaultConfig())
		tickN(e, 41)
		tickN(e, 41)
		active, _ := e.State().Active()
		require.Equal(t, 0.0, active.X)
		assert.Equal(t, -5.0, e.State().XSpeed)

		e.Tick()
		s := e.State()
		active, _ = s.Active()
		assert.Equal(t, -5.0, active.X)
		assert.Equal(t, 5.0, s.XSpeed)
	})

	t.Run("flips only on overshoot", func(t *testing.T) {
		e := newTestEngine(t, engine.DefaultConfig())
		flips := 0
		for range 1000 {
			before := e.State().XSpeed
			e.Tick()
			s := e.State()
			active, _ := s.Active()
			assert.Equal(t, 5.0, math.Abs(s.XSpeed))
			if s.XSpeed != before {
				flips++
				overshot := active.X < 0 || active.Right() > 400
				assert.True(t, overshot, "flip at x=%v without overshoot", active.X)
			}
		}
		assert.Equal(t, 23, flips)
	})
}

func TestDropOnlyWhileBouncing(t *testing.T) {
	e := newTestEngine(t, engine.DefaultConfig())

	assert.True(t, e.Drop())
	assert.Equal(t, engine.ModeFall, e.Mode())
	assert.False(t, e.Drop(), "second drop while falling")

	e.Tick()
	active, _ := e.State().Active()
	assert.Equal(t, 0.0, active.X, "falling block does not move sideways")
	assert.Equal(t, 545.0, active.Y)
}

func TestFallClampsOntoStack(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.InitialSpeedY = 7
	e := newTestEngine(t, cfg)

	tickN(e, 20)
	require.True(t, e.Drop())
	settle(t, e)

	s := e.State()
	require.Equal(t, engine.ModeBounce, s.Mode)
	assert.Equal(t, 250.0, s.Boxes[1].Y, "non-integral descent clamps to previous.y + box height")
}

func TestLanding(t *testing.T) {
	t.Run("perfect alignment keeps width", func(t *testing.T) {
		e := newTestEngine(t, engine.DefaultConfig())
		dropAfter(t, e, 20)

		s := e.State()
		landed := s.Boxes[1]
		assert.Equal(t, 100.0, landed.X)
		assert.Equal(t, 200.0, landed.Width)
		assert.Equal(t, 250.0, landed.Y)
		assert.Equal(t, 0.0, s.Debris.Width)

		l, ok := e.Landing(1)
		require.True(t, ok)
		assert.True(t, l.Perfect())
	})

	t.Run("right overhang trims the right side", func(t *testing.T) {
		e := newTestEngine(t, engine.DefaultConfig())
		dropAfter(t, e, 30)

		s := e.State()
		landed := s.Boxes[1]
		assert.Equal(t, 150.0, landed.X)
		assert.Equal(t, 150.0, landed.Width)

		assert.Equal(t, 300.0, s.Debris.X)
		assert.Equal(t, 50.0, s.Debris.Width)
		assert.Equal(t, red, s.Debris.Color)
		assert.Equal(t, 245.0, s.Debris.Y, "debris drifts on the landing tick")
	})

	t.Run("left overhang snaps to the previous edge", func(t *testing.T) {
		e := newTestEngine(t, engine.DefaultConfig())
		dropAfter(t, e, 10)

		s := e.State()
		landed := s.Boxes[1]
		assert.Equal(t, 100.0, landed.X)
		assert.Equal(t, 150.0, landed.Width)

		assert.Equal(t, 50.0, s.Debris.X, "debris starts at the pre-adjustment left edge")
		assert.Equal(t, 50.0, s.Debris.Width)
	})

	t.Run("advances the stack", func(t *testing.T) {
		e := newTestEngine(t, engine.DefaultConfig())
		dropAfter(t, e, 30)

		s := e.State()
		assert.Equal(t, engine.ModeBounce, s.Mode)
		assert.Equal(t, 2, s.Current)
		assert.Equal(t, 1, s.Score)
		assert.Equal(t, 50, s.ScrollCounter)
		require.Len(t, s.Boxes, 3)

		next, ok := s.Active()
		require.True(t, ok)
		assert.Equal(t, engine.Block{X: 0, Y: 600, Width: 150, Color: green}, next)
	})

	t.Run("score tracks current across landings", func(t *testing.T) {
		e := newTestEngine(t, engine.DefaultConfig())
		for i := range 5 {
			dropAfter(t, e, 20)
			s := e.State()
			require.Equal(t, engine.ModeBounce, s.Mode)
			assert.Equal(t, s.Current-1, s.Score)
			assert.Equal(t, i+1, s.Score)
		}
	})

	t.Run("stack heights strictly increase", func(t *testing.T) {
		e := newTestEngine(t, engine.DefaultConfig())
		for range 4 {
			dropAfter(t, e, 20)
		}
		s := e.State()
		for i := 1; i < len(s.Boxes); i++ {
			assert.Greater(t, s.Boxes[i].Y, s.Boxes[i-1].Y)
		}
	})
}

func TestMissEndsGame(t *testing.T) {
	t.Run("left miss", func(t *testing.T) {
		e := newTestEngine(t, wideConfig())
		dropAfter(t, e, 0)

		s := e.State()
		assert.Equal(t, engine.ModeGameOver, s.Mode)
		assert.Equal(t, 1, s.Current)
		assert.Equal(t, 0, s.Score)
		assert.Len(t, s.Boxes, 2)

		l, ok := e.Landing(1)
		require.True(t, ok)
		assert.True(t, l.Miss)
		assert.Equal(t, -400.0, l.Diff)
	})

	t.Run("right miss with narrowed block", func(t *testing.T) {
		e := newTestEngine(t, wideConfig())
		dropAfter(t, e, 90)
		s := e.State()
		require.Equal(t, engine.ModeBounce, s.Mode)
		require.Equal(t, 150.0, s.Boxes[1].Width)
		require.Equal(t, 450.0, s.Boxes[1].X)

		dropAfter(t, e, 130)
		s = e.State()
		assert.Equal(t, engine.ModeGameOver, s.Mode)
		assert.Equal(t, 2, s.Current)
		assert.Equal(t, 1, s.Score)
		assert.Len(t, s.Boxes, 3)

		l, ok := e.Landing(2)
		require.True(t, ok)
		assert.Equal(t, 200.0, l.Diff)
		assert.Equal(t, 150.0, l.Width)
	})

	t.Run("ticks are no-ops after the miss", func(t *testing.T) {
		e := newTestEngine(t, wideConfig())
		dropAfter(t, e, 0)

		before := e.State()
		tickN(e, 100)
		assert.Equal(t, before, e.State())
		assert.False(t, e.Drop())
	})
}

func TestCameraCatchUp(t *testing.T) {
	e := newTestEngine(t, engine.DefaultConfig())
	dropAfter(t, e, 20)

	s := e.State()
	require.Equal(t, 50, s.ScrollCounter)
	require.Equal(t, 0, s.CameraY)

	for k := 1; k <= 50; k++ {
		e.Tick()
		s = e.State()
		assert.Equal(t, 50-k, s.ScrollCounter)
		assert.Equal(t, k, s.CameraY)
	}

	tickN(e, 10)
	s = e.State()
	assert.Equal(t, 0, s.ScrollCounter)
	assert.Equal(t, 50, s.CameraY)
}

func TestDebrisDriftsEveryTick(t *testing.T) {
	e := newTestEngine(t, engine.DefaultConfig())
	tickN(e, 3)
	assert.Equal(t, -15.0, e.State().Debris.Y)

	dropAfter(t, e, 27)
	y := e.State().Debris.Y
	tickN(e, 4)
	assert.Equal(t, y-20, e.State().Debris.Y)
}

func TestRestart(t *testing.T) {
	t.Run("ignored while playing", func(t *testing.T) {
		e := newTestEngine(t, engine.DefaultConfig())
		assert.False(t, e.Restart())
		e.Drop()
		assert.False(t, e.Restart())
	})

	t.Run("restores the initial game", func(t *testing.T) {
		e := newTestEngine(t, wideConfig())
		dropAfter(t, e, 90)
		tickN(e, 171)
		require.Equal(t, -5.0, e.State().XSpeed)
		require.True(t, e.Drop())
		settle(t, e)
		require.Equal(t, engine.ModeGameOver, e.Mode())

		require.True(t, e.Restart())
		s := e.State()
		assert.Equal(t, engine.ModeBounce, s.Mode)
		assert.Equal(t, 1, s.Current)
		assert.Equal(t, 0, s.Score)
		assert.Equal(t, 0, s.ScrollCounter)
		assert.Equal(t, 0, s.CameraY)
		assert.Equal(t, 5.0, s.XSpeed)
		assert.Equal(t, 5.0, s.YSpeed)
		require.Len(t, s.Boxes, 2)
		assert.Equal(t, engine.Block{X: 400, Y: 200, Width: 200, Color: engine.White}, s.Boxes[0])
		assert.Equal(t, 0.0, s.Boxes[1].X)
		assert.Equal(t, 200.0, s.Boxes[1].Width)
		assert.Equal(t, engine.Block{Color: engine.White}, s.Debris)
		assert.Empty(t, e.Landings())
	})
}

func TestPointer(t *testing.T) {
	e := newTestEngine(t, wideConfig())

	kind, ok := e.Pointer()
	require.True(t, ok)
	assert.Equal(t, engine.EventDropped, kind)

	_, ok = e.Pointer()
	assert.False(t, ok, "pointer while falling")

	settle(t, e)
	require.Equal(t, engine.ModeGameOver, e.Mode())

	kind, ok = e.Pointer()
	require.True(t, ok)
	assert.Equal(t, engine.EventRestarted, kind)
	assert.Equal(t, engine.ModeBounce, e.Mode())
}

func TestObserverEvents(t *testing.T) {
	var kinds []engine.EventKind
	var scores []int
	observer := engine.ObserverFunc(func(ev engine.Event) {
		kinds = append(kinds, ev.Kind)
		scores = append(scores, ev.Score)
	})
	e := newTestEngine(t, wideConfig(), engine.WithObserver(observer))

	dropAfter(t, e, 80)
	dropAfter(t, e, 0)
	require.True(t, e.Restart())

	assert.Equal(t, []engine.EventKind{
		engine.EventDropped,
		engine.EventLanded,
		engine.EventDropped,
		engine.EventGameOver,
		engine.EventRestarted,
	}, kinds)
	assert.Equal(t, []int{0, 1, 1, 1, 0}, scores)
}

func TestObserverMayReadEngine(t *testing.T) {
	e := newTestEngine(t, engine.DefaultConfig())

	var seen engine.State
	e.Subscribe(engine.ObserverFunc(func(ev engine.Event) {
		if ev.Kind == engine.EventLanded {
			seen = e.State()
		}
	}))

	dropAfter(t, e, 20)
	assert.Equal(t, 2, seen.Current)
	assert.Equal(t, 1, seen.Score)
}

func TestLandingsHistory(t *testing.T) {
	e := newTestEngine(t, wideConfig())
	dropAfter(t, e, 80)
	dropAfter(t, e, 82)
	dropAfter(t, e, 0)
	require.Equal(t, engine.ModeGameOver, e.Mode())

	landings := e.Landings()
	require.Len(t, landings, 3)
	for i, l := range landings {
		assert.Equal(t, i+1, l.Step)
	}
	assert.True(t, landings[0].Perfect())
	assert.False(t, landings[1].Perfect())
	assert.Equal(t, 10.0, landings[1].Diff)
	assert.Equal(t, 10.0, landings[1].Debris.Width)
	assert.True(t, landings[2].Miss)

	_, ok := e.Landing(4)
	assert.False(t, ok)
}

func TestStateIsACopy(t *testing.T) {
	e := newTestEngine(t, engine.DefaultConfig())
	s := e.State()
	s.Boxes[0].Width = 1
	s.Boxes = append(s.Boxes, engine.Block{})

	fresh := e.State()
	assert.Equal(t, 200.0, fresh.Boxes[0].Width)
	assert.Len(t, fresh.Boxes, 2)
}

func TestConcurrentInput(t *testing.T) {
	e := newTestEngine(t, engine.DefaultConfig())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 500 {
			e.Tick()
		}
	}()
	go func() {
		defer wg.Done()
		for range 500 {
			e.Pointer()
			_ = e.State()
		}
	}()
	wg.Wait()

	s := e.State()
	assert.Equal(t, s.Current-1, s.Score)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "bounce", engine.ModeBounce.String())
	assert.Equal(t, "fall", engine.ModeFall.String())
	assert.Equal(t, "gameover", engine.ModeGameOver.String())
	assert.Equal(t, "unknown", engine.Mode(42).String())
}

func TestAccessors(t *testing.T) {
	cfg := wideConfig()
	e := newTestEngine(t, cfg)

	assert.Equal(t, cfg, e.Config())
	assert.Equal(t, engine.ModeBounce, e.Mode())
	require.True(t, e.Drop())
	assert.Equal(t, engine.ModeFall, e.Mode())
}
