package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/plus3/stacker/engine"
)

func main() {
	defaults := engine.DefaultConfig()
	width := flag.Float64("width", defaults.CanvasWidth, "Canvas width in pixels.")
	height := flag.Float64("height", defaults.CanvasHeight, "Canvas height in pixels.")
	speedX := flag.Float64("speed-x", defaults.InitialSpeedX, "Horizontal block speed per tick.")
	speedY := flag.Float64("speed-y", defaults.InitialSpeedY, "Falling speed per tick.")
	seed := flag.Uint64("seed", 1, "Seed for block colors and the random policy.")
	strict := flag.Bool("strict", false, "Panic on engine invariant violations.")
	duration := flag.Duration("duration", 10*time.Second, "Stop after this much wall time. 0 runs until -games is reached.")
	games := flag.Int("games", 100, "Number of games to play. 0 plays until -duration expires.")
	maxTicks := flag.Int("max-ticks", 100000, "Tick cap per game. 0 disables the cap.")
	policyName := flag.String("policy", "jitter", "Drop policy: perfect, jitter, eager or random.")
	jitter := flag.Float64("jitter", 10, "Alignment tolerance in pixels for the jitter policy.")
	verbose := flag.Bool("verbose", false, "Log every landing.")
	flag.Parse()

	if *games <= 0 && *duration <= 0 {
		log.Fatal("One of -games or -duration must be positive")
	}

	cfg := defaults
	cfg.CanvasWidth = *width
	cfg.CanvasHeight = *height
	cfg.InitialSpeedX = *speedX
	cfg.InitialSpeedY = *speedY
	cfg.Seed = *seed
	cfg.Strict = *strict
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	policy, err := newPolicy(*policyName, *jitter, *seed)
	if err != nil {
		log.Fatalf("Invalid policy: %v", err)
	}

	ctx := context.Background()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	log.Printf("Simulating with the %s policy...\n", policy.Name())
	report, err := simulate(ctx, simConfig{
		Engine:   cfg,
		Policy:   policy,
		Games:    *games,
		MaxTicks: *maxTicks,
		Logger:   log.Default(),
		Verbose:  *verbose,
	})
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
