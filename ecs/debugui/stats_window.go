package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/scenecore/ecs"
)

// StatsComponent shows per-phase timings of a scheduler and a frame time graph.
type StatsComponent struct {
	ecs.BaseComponent
	scheduler     *ecs.Scheduler
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	lastRender    int64
}

func (sc *StatsComponent) Init(scheduler *ecs.Scheduler, historyFrames int) *StatsComponent {
	if historyFrames <= 0 {
		historyFrames = 120
	}
	sc.scheduler = scheduler
	sc.historyFrames = historyFrames
	sc.frameHistory = make([]float32, historyFrames)
	return sc
}

// sample pushes the latest render duration into the history ring.
func (sc *StatsComponent) sample(stats *ecs.SchedulerStats) {
	render := stats.Phases[ecs.PhaseRender]
	if render.ExecutionCount == sc.lastRender {
		return
	}
	sc.lastRender = render.ExecutionCount

	update := stats.Phases[ecs.PhaseUpdate]
	frameMs := float32(render.LastDuration+update.LastDuration) / 1e6
	sc.frameHistory[sc.frameIndex] = frameMs
	sc.frameIndex = (sc.frameIndex + 1) % sc.historyFrames
}

func (sc *StatsComponent) average() float32 {
	var total float32
	for _, ft := range sc.frameHistory {
		total += ft
	}
	return total / float32(sc.historyFrames)
}

func (sc *StatsComponent) Render() {
	if sc.scheduler == nil {
		return
	}
	stats := sc.scheduler.GetStats()
	sc.sample(stats)

	if !imgui.BeginV("Scheduler Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))
	imgui.Text(fmt.Sprintf("Physics steps: %d", stats.PhysicsSteps))
	imgui.Text(fmt.Sprintf("Dropped physics time: %s", stats.DroppedPhysicsTime))
	imgui.Text(fmt.Sprintf("Avg hook time: %.3f ms", sc.average()))

	imgui.Separator()
	imgui.Text("Update + Render (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &sc.frameHistory[0], int32(len(sc.frameHistory)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("PhaseTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Phase")
		imgui.TableSetupColumn("Calls")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableSetupColumn("Last")
		imgui.TableHeadersRow()

		for _, phase := range stats.Phases {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(phase.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", phase.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(phase.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(phase.MaxDuration.String())
			imgui.TableNextColumn()
			imgui.Text(phase.LastDuration.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}
