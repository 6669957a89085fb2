package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stacker/engine"
)

// StateInspector shows the engine state read-only.
type StateInspector struct {
	showStack bool
}

func NewStateInspector() *StateInspector {
	return &StateInspector{showStack: true}
}

func (si *StateInspector) Render(state engine.State) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 320), imgui.CondOnce)

	if !imgui.BeginV("Engine State", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if state.Mode == engine.ModeGameOver {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else {
		imgui.Text(fmt.Sprintf("Mode: %s", state.Mode))
	}
	imgui.Text(fmt.Sprintf("Score: %d", state.Score))
	imgui.Text(fmt.Sprintf("Current: %d", state.Current))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Speed: x=%.1f y=%.1f", state.XSpeed, state.YSpeed))
	imgui.Text(fmt.Sprintf("Camera: %d (owed %d)", state.CameraY, state.ScrollCounter))
	imgui.Separator()

	if active, ok := state.Active(); ok && imgui.TreeNodeStr("Active Block") {
		renderBlock(active)
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Debris") {
		renderBlock(state.Debris)
		imgui.TreePop()
	}

	imgui.Checkbox("Show stack", &si.showStack)
	if si.showStack {
		si.renderStack(state)
	}

	imgui.End()
}

func (si *StateInspector) renderStack(state engine.State) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if !imgui.BeginTableV("StackTable", 4, tableFlags, imgui.NewVec2(0, 160), 0) {
		return
	}

	imgui.TableSetupColumn("#")
	imgui.TableSetupColumn("X")
	imgui.TableSetupColumn("Y")
	imgui.TableSetupColumn("Width")
	imgui.TableHeadersRow()

	// Top of the stack first.
	for i := len(state.Boxes) - 1; i >= 0; i-- {
		box := state.Boxes[i]
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", i))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.1f", box.X))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.1f", box.Y))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%.1f", box.Width))
	}

	imgui.EndTable()
}

func renderBlock(b engine.Block) {
	imgui.Text(fmt.Sprintf("X: %.1f", b.X))
	imgui.Text(fmt.Sprintf("Y: %.1f", b.Y))
	imgui.Text(fmt.Sprintf("Width: %.1f", b.Width))
	c := b.Color
	imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1.0))
	imgui.Text(fmt.Sprintf("Color: #%02x%02x%02x", c.R, c.G, c.B))
	imgui.PopStyleColor()
}
