package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stacker/clock"
)

// FrameStats plots frame times and shows the clock's callback statistics.
type FrameStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewFrameStats(historyFrames int) *FrameStats {
	return &FrameStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (fs *FrameStats) Render(stats clock.Stats, deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(300, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 220), imgui.CondOnce)

	if !imgui.BeginV("Frame Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	fs.frameHistory[fs.frameIndex] = deltaTime * 1000.0
	fs.frameIndex = (fs.frameIndex + 1) % fs.historyFrames

	var avgFrameTime float32
	for _, ft := range fs.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(fs.historyFrames)

	fps := float32(0)
	if avgFrameTime > 0 {
		fps = 1000.0 / avgFrameTime
	}
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, fps))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &fs.frameHistory[0], int32(len(fs.frameHistory)))

	if imgui.TreeNodeStr("Tick Callbacks") {
		imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
		imgui.Text(fmt.Sprintf("Callbacks: %d", stats.Callbacks))
		imgui.Text(fmt.Sprintf("Last: %s", stats.LastDuration))
		imgui.Text(fmt.Sprintf("Avg: %s", stats.AvgDuration))
		imgui.Text(fmt.Sprintf("Min/Max: %s / %s", stats.MinDuration, stats.MaxDuration))
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures wall time between Render calls.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
