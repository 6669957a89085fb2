package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/stacker/clock"
	"github.com/plus3/stacker/debugui"
	debugui_ebiten "github.com/plus3/stacker/debugui/ebiten"
	"github.com/plus3/stacker/engine"
)

// Game steps a stacker engine and overlays the debug panels.
type Game struct {
	engine  *engine.Engine
	clock   *clock.ManualClock
	backend *debugui_ebiten.ImguiBackend
	panels  *debugui.Panels
}

func (g *Game) Update() error {
	// Begin ImGui frame before stepping the game
	g.backend.BeginFrame()

	if !debugui.ReadInputState().WantCaptureKeyboard && inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.Drop()
	}
	g.engine.Tick()
	g.panels.Render(g.engine, g.clock.Stats())

	// End ImGui frame after the panels are built
	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Stacker Debug", 1280, 720)

	e, err := engine.New(engine.DefaultConfig())
	if err != nil {
		panic(err)
	}

	game := &Game{
		engine:  e,
		clock:   clock.NewManualClock(),
		backend: backend,
		panels:  debugui.NewPanels(),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
