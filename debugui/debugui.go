// Package debugui provides Dear ImGui windows for inspecting a running game.
// Callers own the ImGui frame: call Render between the backend's BeginFrame
// and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stacker/clock"
	"github.com/plus3/stacker/engine"
)

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Hosts skip game input while it is.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ReadInputState samples the current ImGui IO.
func ReadInputState() ImguiInputState {
	io := imgui.CurrentIO()
	return ImguiInputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Panels is the set of windows the game host shows.
type Panels struct {
	Inspector *StateInspector
	Stats     *FrameStats
	Landings  *LandingLog

	timer *FrameTimer
}

func NewPanels() *Panels {
	return &Panels{
		Inspector: NewStateInspector(),
		Stats:     NewFrameStats(120),
		Landings:  NewLandingLog(),
		timer:     NewFrameTimer(),
	}
}

// Render draws every panel for the current frame.
func (p *Panels) Render(e *engine.Engine, stats clock.Stats) {
	p.Inspector.Render(e.State())
	p.Stats.Render(stats, p.timer.GetDeltaTime())
	p.Landings.Render(e.Landings())
}
