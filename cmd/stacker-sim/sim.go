package main

import (
	"context"
	"log"
	"time"

	"github.com/plus3/stacker/clock"
	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/host"
)

const frameDelta = 1.0 / 60.0

type simConfig struct {
	Engine   engine.Config
	Policy   Policy
	Games    int
	MaxTicks int
	Logger   *log.Logger
	// Verbose also logs every landing.
	Verbose bool
}

// simulate plays games until sc.Games have finished or ctx is done. A game
// that reaches MaxTicks without a miss is counted as capped.
func simulate(ctx context.Context, sc simConfig) (*Report, error) {
	report := &Report{
		Policy:   sc.Policy.Name(),
		MaxTicks: sc.MaxTicks,
		GameTime: Stats{
			Samples: make([]time.Duration, 0, max(sc.Games, 0)),
		},
	}

	start := time.Now()
	for sc.Games <= 0 || report.Games < sc.Games {
		if ctx.Err() != nil {
			break
		}

		gameStart := time.Now()
		result, err := playGame(ctx, sc)
		if err != nil {
			return nil, err
		}
		report.GameTime.Samples = append(report.GameTime.Samples, time.Since(gameStart))
		report.add(result)

		if sc.Logger != nil {
			sc.Logger.Printf("game %d: score=%d ticks=%d capped=%t", report.Games, result.Score, result.Ticks, result.Capped)
		}
	}

	report.TotalTime = time.Since(start)
	report.GameTime.Finalize()
	return report, nil
}

type gameResult struct {
	Score    int
	Ticks    int64
	Capped   bool
	Landings []engine.Landing
	Clock    clock.Stats
}

func playGame(ctx context.Context, sc simConfig) (gameResult, error) {
	e, err := engine.New(sc.Engine)
	if err != nil {
		return gameResult{}, err
	}

	clk := clock.NewManualClock()
	var opts []host.Option
	if sc.Verbose {
		opts = append(opts, host.WithLogger(sc.Logger))
	}
	loop := host.NewLoop(e, clk, opts...)
	loop.Start()

	for loop.Running() {
		if sc.MaxTicks > 0 && loop.Frames() >= int64(sc.MaxTicks) {
			break
		}
		if ctx.Err() != nil {
			break
		}

		state := e.State()
		loop.Handle(host.Input{
			Drop: state.Mode == engine.ModeBounce && sc.Policy.ShouldDrop(state),
		})
		clk.Step(frameDelta)
	}
	loop.Stop()

	return gameResult{
		Score:    e.Score(),
		Ticks:    loop.Frames(),
		Capped:   e.Mode() != engine.ModeGameOver,
		Landings: e.Landings(),
		Clock:    clk.Stats(),
	}, nil
}
