package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/phlab/model"
	"github.com/pthm-cable/phlab/renderer"
	"github.com/pthm-cable/phlab/telemetry"
	"github.com/pthm-cable/phlab/ui"
)

var backgroundColor = rl.Color{R: 12, G: 16, B: 22, A: 255}

// Draw renders the scene and routes panel actions back into the model.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	sol := g.lab.Solution
	total := sol.TotalVolume()
	liquid := sol.Color()
	liquidRect := g.beaker.LiquidRect(total)

	g.beaker.Draw(liquid, total)
	g.shimmer.Draw(g.simTime, liquidRect)
	g.ions.Draw(g.field, liquidRect)
	dropFrac := flowFraction(g.lab.Flow.DropperFlow(), g.cfg.Flow.DropperRate)
	if g.lab.Flow.State() == model.Autofilling {
		dropFrac = 1
	}
	g.faucets.Draw(sol.Solute().StockColor,
		dropFrac,
		flowFraction(g.lab.Flow.FaucetFlow(), g.cfg.Flow.FaucetRate),
		flowFraction(g.lab.Flow.DrainFlow(), g.cfg.Flow.DrainRate),
		liquidRect.Y, liquid)

	ph := g.lab.DisplayPH().Get()
	g.meter.Draw(ph)

	counts := g.lab.Counts().Get()
	g.hud.Draw(ui.HUDData{
		Title:        "pH Lab",
		Solute:       sol.Solute().Name,
		PH:           ph.Value,
		PHDefined:    ph.Defined,
		TotalVolume:  total,
		MaxVolume:    sol.MaxVolume(),
		H3OCount:     counts.H3O,
		OHCount:      counts.OH,
		Tick:         g.tick,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		ScreenWidth:  int32(g.cfg.Screen.Width),
		ScreenHeight: int32(g.cfg.Screen.Height),
	})
	g.hud.DrawControls(int32(g.cfg.Screen.Width), int32(g.cfg.Screen.Height),
		"Space: pause | < >: speed | C: controls | P: perf | L: log | R: reset | F11: fullscreen")

	action := g.controls.Draw(g.controlsState())
	g.applyAction(action)

	if g.showPerf {
		stats := g.perfCollector.Stats()
		g.perfUI.Draw(ui.PerfPanelData{
			PhaseTimes: stats.PhaseAvg,
			Total:      stats.AvgTickDuration,
			FPS:        stats.FPS,
		}, []string{telemetry.PhaseFlow, telemetry.PhaseParticles, telemetry.PhaseTelemetry})
	}

	rl.EndDrawing()
}

// flowFraction maps a flow rate to its fraction of the maximum.
func flowFraction(rate, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return rate / max
}

// controlsState snapshots the model for the controls panel.
func (g *Game) controlsState() ui.ControlsState {
	options := make([]ui.SoluteOption, len(g.catalog))
	for i, s := range g.catalog {
		options[i] = ui.SoluteOption{
			Name:    s.Name,
			StockPH: s.StockPH,
			Swatch:  renderer.ToRL(s.StockColor),
		}
	}

	flow := g.lab.Flow
	return ui.ControlsState{
		Solutes:      options,
		ActiveSolute: g.activeIndex,

		DropperFlow: float32(flow.DropperFlow()),
		FaucetFlow:  float32(flow.FaucetFlow()),
		DrainFlow:   float32(flow.DrainFlow()),
		DropperMax:  float32(g.cfg.Flow.DropperRate),
		FaucetMax:   float32(g.cfg.Flow.FaucetRate),
		DrainMax:    float32(g.cfg.Flow.DrainRate),

		DropperEnabled: flow.DropperEnabled().Get(),
		FaucetEnabled:  flow.FaucetEnabled().Get(),
		DrainEnabled:   flow.DrainEnabled().Get(),
		Autofilling:    flow.State() == model.Autofilling,
	}
}

// applyAction routes a panel action into the model. Flow rates are only
// applied while the panel is visible so hiding it does not zero them.
func (g *Game) applyAction(action ui.Action) {
	if !g.controls.IsVisible() {
		return
	}

	if action.Reset {
		g.reset()
		return
	}
	if action.SoluteSelected >= 0 {
		g.selectSolute(action.SoluteSelected)
		return
	}
	if action.CustomPHSet {
		g.applyCustomPH(float64(action.CustomPH))
		return
	}

	flow := g.lab.Flow
	flow.SetDropperFlow(float64(action.DropperFlow))
	flow.SetFaucetFlow(float64(action.FaucetFlow))
	flow.SetDrainFlow(float64(action.DrainFlow))
}
