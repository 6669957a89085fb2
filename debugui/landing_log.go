package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stacker/engine"
)

// LandingLog lists the current game's landings.
type LandingLog struct {
	newestFirst bool
}

func NewLandingLog() *LandingLog {
	return &LandingLog{newestFirst: true}
}

func (ll *LandingLog) Render(landings []engine.Landing) {
	imgui.SetNextWindowPosV(imgui.NewVec2(300, 240), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)

	if !imgui.BeginV("Landings", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	perfect := 0
	for _, l := range landings {
		if l.Perfect() {
			perfect++
		}
	}
	imgui.Text(fmt.Sprintf("Landings: %d (perfect %d)", len(landings), perfect))
	imgui.Checkbox("Newest first", &ll.newestFirst)
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("LandingTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Step")
		imgui.TableSetupColumn("Diff")
		imgui.TableSetupColumn("Width")
		imgui.TableSetupColumn("Cut")
		imgui.TableHeadersRow()

		for i := range landings {
			l := landings[i]
			if ll.newestFirst {
				l = landings[len(landings)-1-i]
			}

			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", l.Step))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%+.1f", l.Diff))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", l.Width))
			imgui.TableNextColumn()
			switch {
			case l.Miss:
				imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "miss")
			case l.Perfect():
				imgui.TextColored(imgui.NewVec4(0.3, 1.0, 0.3, 1.0), "perfect")
			default:
				imgui.Text(fmt.Sprintf("%.1f", l.Debris.Width))
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}
