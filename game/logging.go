package game

import (
	"fmt"
	"io"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/phlab/solution"
	"github.com/pthm-cable/phlab/telemetry"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logPerfStats logs performance statistics.
func (g *Game) logPerfStats() {
	stats := g.perfCollector.Stats()
	fps := rl.GetFPS()
	Logf("=== Perf @ Tick %d (speed %dx) | FPS: %d ===", g.tick, g.stepsPerUpdate, fps)
	Logf("Avg tick: %s (%.0f ticks/s)", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond)

	for _, phase := range []string{telemetry.PhaseFlow, telemetry.PhaseParticles, telemetry.PhaseTelemetry} {
		Logf("  %-10s %10s  %5.1f%%", phase, stats.PhaseAvg[phase].Round(time.Microsecond), stats.PhasePct[phase])
	}
	Logf("")
}

// logSolutionState logs the current beaker state.
func (g *Game) logSolutionState() {
	sol := g.lab.Solution
	ph := g.lab.DisplayPH().Get()
	counts := g.lab.Counts().Get()

	phText := "--"
	if ph.Defined {
		phText = fmt.Sprintf("%.2f", ph.Value)
	}

	Logf("=== Tick %d ===", g.tick)
	Logf("Solute: %s (stock pH %.2f)", sol.Solute().Name, sol.Solute().StockPH)
	Logf("Volume: %.3f L (%.3f solute + %.3f water, max %.2f)",
		sol.TotalVolume(), sol.SoluteVolume(), sol.WaterVolume(), sol.MaxVolume())
	Logf("pH: %s | H3O+: %d | OH-: %d", phText, counts.H3O, counts.OH)
	if ext, ok := sol.Attached().(*solution.IonExtension); ok {
		r := ext.Readout().Get()
		Logf("Ions: [H3O+]=%.2e M (%.2e mol) | [OH-]=%.2e M (%.2e mol)",
			r.ConcentrationH3O, r.MolesH3O, r.ConcentrationOH, r.MolesOH)
	}
	Logf("Flow: dropper=%.3f water=%.3f drain=%.3f L/s (state=%d)",
		g.lab.Flow.DropperFlow(), g.lab.Flow.FaucetFlow(), g.lab.Flow.DrainFlow(), g.lab.Flow.State())
	Logf("")
}
