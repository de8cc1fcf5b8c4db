package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/phlab/model"
	"github.com/pthm-cable/phlab/telemetry"
)

// recordTick feeds one tick of model state into the stats collector and
// detects threshold events by comparing against the previous tick.
func (g *Game) recordTick(rep model.StepReport) {
	ph := g.lab.DisplayPH().Get()
	g.collector.SamplePH(ph.Value, ph.Defined)
	g.collector.RecordSoluteAdded(rep.SoluteAdded)
	g.collector.RecordWaterAdded(rep.WaterAdded)
	g.collector.RecordDrained(rep.Drained)

	solute := g.lab.Solution.Solute().Name
	state := g.lab.Flow.State()
	free := g.lab.Solution.FreeVolume()

	if state != g.prevFlowState {
		switch state {
		case model.Autofilling:
			g.emitEvent(telemetry.NewAutofillStartEvent(g.tick, solute))
		case model.Flowing:
			g.emitEvent(telemetry.NewAutofillDoneEvent(g.tick, solute, eventPH(ph.Value, ph.Defined), g.lab.Solution.TotalVolume()))
		}
		g.prevFlowState = state
	}

	if free <= 0 && g.prevFree > 0 {
		g.emitEvent(telemetry.NewBeakerFullEvent(g.tick, solute, eventPH(ph.Value, ph.Defined), g.lab.Solution.TotalVolume()))
	}
	g.prevFree = free

	if !ph.Defined && g.prevDefined {
		g.emitEvent(telemetry.NewBeakerEmptyEvent(g.tick, solute))
	}
	g.prevDefined = ph.Defined
}

// recordSoluteChange emits the solute change event. The autofill start
// that usually follows is picked up by the state transition check on the
// next tick.
func (g *Game) recordSoluteChange() {
	g.emitEvent(telemetry.NewSoluteChangeEvent(g.tick, g.lab.Solution.Solute().Name))
}

// emitEvent counts the event in the current window and writes it to
// events.csv.
func (g *Game) emitEvent(e telemetry.Event) {
	g.collector.RecordEvent(e)
	if g.logStats {
		Logf("[EVENT] %s tick=%d solute=%s", e.Type, e.Tick, e.Solute)
	}
	if g.outputManager != nil {
		if err := g.outputManager.WriteEvent(e); err != nil {
			slog.Error("failed to write event", "error", err)
		}
	}
}

// eventPH maps an undefined pH to NaN for event records.
func eventPH(value float64, defined bool) float64 {
	if !defined {
		return math.NaN()
	}
	return value
}

// flushTelemetry flushes the stats window when due.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	ph := g.lab.DisplayPH().Get()
	counts := g.lab.Counts().Get()
	end := telemetry.EndSample{
		Solute:       g.lab.Solution.Solute().Name,
		PH:           ph.Value,
		PHDefined:    ph.Defined,
		SoluteVolume: g.lab.Solution.SoluteVolume(),
		WaterVolume:  g.lab.Solution.WaterVolume(),
		TotalVolume:  g.lab.Solution.TotalVolume(),
		H3OCount:     counts.H3O,
		OHCount:      counts.OH,
	}

	stats := g.collector.Flush(g.tick, end)
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
