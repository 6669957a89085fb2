package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stacker/clock"
	debugui_ebiten "github.com/plus3/stacker/debugui/ebiten"
	"github.com/plus3/stacker/ebitenhost"
	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/host"
)

const title = "Stacker"

func main() {
	defaults := engine.DefaultConfig()
	width := flag.Float64("width", defaults.CanvasWidth, "Canvas width in pixels.")
	height := flag.Float64("height", defaults.CanvasHeight, "Canvas height in pixels.")
	speedX := flag.Float64("speed-x", defaults.InitialSpeedX, "Horizontal block speed per tick.")
	speedY := flag.Float64("speed-y", defaults.InitialSpeedY, "Falling speed per tick.")
	seed := flag.Uint64("seed", defaults.Seed, "Color seed. 0 seeds from the clock.")
	debug := flag.Bool("debug", false, "Show the ImGui debug panels.")
	strict := flag.Bool("strict", false, "Panic on engine invariant violations.")
	flag.Parse()

	cfg := defaults
	cfg.CanvasWidth = *width
	cfg.CanvasHeight = *height
	cfg.InitialSpeedX = *speedX
	cfg.InitialSpeedY = *speedY
	cfg.Seed = *seed
	cfg.Strict = *strict

	e, err := engine.New(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	clk := clock.NewManualClock()
	loop := host.NewLoop(e, clk, host.WithLogger(log.New(os.Stderr, "stacker: ", log.LstdFlags)))

	var opts []ebitenhost.Option
	if *debug {
		backend := debugui_ebiten.NewImguiBackend(title, int(cfg.CanvasWidth)+640, int(cfg.CanvasHeight))
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		opts = append(opts, ebitenhost.WithDebugUI(backend))
	} else {
		ebiten.SetWindowSize(int(cfg.CanvasWidth), int(cfg.CanvasHeight))
		ebiten.SetWindowTitle(title)
	}

	game := ebitenhost.New(e, clk, loop, opts...)
	loop.Start()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game exited: %v", err)
	}
	log.Printf("Final score: %d", e.Score())
}
