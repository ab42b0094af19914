package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/cookiedog/scene"
	"github.com/plus3/cookiedog/texture"
)

// PerformanceStats plots frame times and lists per-system tick timings.
type PerformanceStats struct {
	loop  *scene.Loop
	cache *texture.Cache

	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewPerformanceStats keeps historyFrames frame times for the plot.
func NewPerformanceStats(loop *scene.Loop, cache *texture.Cache, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		loop:          loop,
		cache:         cache,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record stores a frame time in milliseconds and returns the average over the
// history.
func (ps *PerformanceStats) Record(deltaTime float32) float32 {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 260), imgui.CondOnce, imgui.NewVec2(0, 0))
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.Record(deltaTime)
	stats := ps.loop.Stats()

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.TotalTicks))
	imgui.Text(fmt.Sprintf("Textures: %d", ps.cache.Len()))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
