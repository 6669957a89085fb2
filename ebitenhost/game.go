// Package ebitenhost runs a stacker game in an Ebiten window.
package ebitenhost

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stacker/clock"
	"github.com/plus3/stacker/debugui"
	debugui_ebiten "github.com/plus3/stacker/debugui/ebiten"
	"github.com/plus3/stacker/engine"
	"github.com/plus3/stacker/host"
	"github.com/plus3/stacker/render"
)

// Game implements ebiten.Game. Ebiten's Update is the frame source: each
// Update samples input and steps the manual clock once.
type Game struct {
	engine *engine.Engine
	clock  *clock.ManualClock
	loop   *host.Loop
	cfg    engine.Config

	canvas *ebiten.Image

	imgui  *debugui_ebiten.ImguiBackend
	panels *debugui.Panels
}

type Option func(*Game)

// WithDebugUI draws the ImGui inspection panels next to the canvas.
func WithDebugUI(backend *debugui_ebiten.ImguiBackend) Option {
	return func(g *Game) {
		g.imgui = backend
		g.panels = debugui.NewPanels()
	}
}

func New(e *engine.Engine, clk *clock.ManualClock, loop *host.Loop, opts ...Option) *Game {
	cfg := e.Config()
	g := &Game{
		engine: e,
		clock:  clk,
		loop:   loop,
		cfg:    cfg,
		canvas: ebiten.NewImage(int(cfg.CanvasWidth), int(cfg.CanvasHeight)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	g.loop.Handle(g.readInput())
	g.clock.Step(1.0 / float64(ebiten.TPS()))

	if g.imgui != nil {
		g.panels.Render(g.engine, g.clock.Stats())
		g.imgui.EndFrame()
	}
	return nil
}

func (g *Game) readInput() host.Input {
	var capture debugui.ImguiInputState
	if g.imgui != nil {
		capture = debugui.ReadInputState()
	}

	var in host.Input
	if !capture.WantCaptureKeyboard {
		in.Drop = inpututil.IsKeyJustPressed(ebiten.KeySpace)
		in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	}
	if !capture.WantCaptureMouse {
		bounds := g.canvas.Bounds()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			in.Pointer = image.Pt(ebiten.CursorPosition()).In(bounds)
		}
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			if image.Pt(ebiten.TouchPosition(id)).In(bounds) {
				in.Pointer = true
			}
		}
	}
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	scene := render.Project(g.engine.State(), g.cfg)
	paintScene(g.canvas, scene)

	screen.DrawImage(g.canvas, nil)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func paintScene(dst *ebiten.Image, scene render.Scene) {
	dst.Fill(scene.Background)

	for _, r := range scene.VisibleRects() {
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), r.Color, false)
	}

	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d", scene.Overlay.Score), 10, 10)

	if scene.Overlay.GameOver {
		vector.DrawFilledRect(dst, 0, 0, float32(scene.Width), float32(scene.Height), scene.Overlay.Veil, false)
		// DebugPrint glyphs are 6x16.
		x := int(scene.Width)/2 - len(scene.Overlay.Message)*3
		y := int(scene.Height)/2 - 8
		ebitenutil.DebugPrintAt(dst, scene.Overlay.Message, x, y)
	}
}

// Layout keeps the logical screen at canvas size. With the debug UI the
// screen follows the window so the panels have room beside the canvas.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return int(g.cfg.CanvasWidth), int(g.cfg.CanvasHeight)
}
