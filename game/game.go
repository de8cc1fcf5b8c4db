// Package game wires the lab model, the particle field, telemetry, and
// the raylib scene into one update/draw loop.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/phlab/config"
	"github.com/pthm-cable/phlab/model"
	"github.com/pthm-cable/phlab/particles"
	"github.com/pthm-cable/phlab/renderer"
	"github.com/pthm-cable/phlab/solution"
	"github.com/pthm-cable/phlab/telemetry"
	"github.com/pthm-cable/phlab/ui"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete game state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	lab   *model.Lab
	field *particles.Field

	catalog     []solution.Solute
	activeIndex int // index into catalog, -1 while a custom solute is active

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
	logStats      bool

	// Rendering (nil in headless mode)
	beaker   *renderer.BeakerRenderer
	ions     *renderer.IonRenderer
	meter    *renderer.MeterRenderer
	faucets  *renderer.FaucetRenderer
	shimmer  *renderer.LiquidShimmer
	controls *ui.ControlsPanel
	hud      *ui.HUD
	perfUI   *ui.PerfPanel

	// State
	tick           int32
	simTime        float32
	paused         bool
	headless       bool
	stepsPerUpdate int
	showPerf       bool

	// Transition tracking for telemetry events
	prevFlowState model.FlowState
	prevFree      float64
	prevDefined   bool
}

// NewGameWithOptions creates a game instance. Config must be initialized
// before this is called.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	sol, err := solution.New(solution.Water, solution.Config{
		MaxVolume:           cfg.Beaker.MaxVolume,
		InitialSoluteVolume: cfg.Beaker.InitialSoluteVolume,
		InitialWaterVolume:  cfg.Beaker.InitialWaterVolume,
		VolumeDecimals:      cfg.Beaker.VolumeDecimals,
		PHDecimals:          cfg.Meter.PHDecimals,
	})
	if err != nil {
		panic("game: invalid beaker config: " + err.Error())
	}
	sol.Attach(solution.NewIonExtension())

	lab := model.NewLab(sol, model.FlowConfig{
		DropperRate:    cfg.Flow.DropperRate,
		FaucetRate:     cfg.Flow.FaucetRate,
		DrainRate:      cfg.Flow.DrainRate,
		AutofillRate:   cfg.Flow.AutofillRate,
		AutofillVolume: cfg.Flow.AutofillVolume,
		AutofillOff:    cfg.Flow.AutofillOff,
	}, particles.CountModel{
		CountAtNeutral: cfg.Particles.CountAtNeutral,
		MaxCount:       cfg.Particles.MaxCount,
		MinMinority:    cfg.Particles.MinMinority,
		BandMin:        cfg.Particles.BandMin,
		BandMax:        cfg.Particles.BandMax,
		PHDecimals:     cfg.Meter.PHDecimals,
	})

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		cfg:            cfg,
		rng:            rand.New(rand.NewSource(opts.Seed)),
		lab:            lab,
		catalog:        solution.Catalog(),
		activeIndex:    waterIndex(solution.Catalog()),
		collector:      telemetry.NewCollector(statsWindow, cfg.Derived.DT32),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: opts.StepsPerUpdate,
		prevFree:       sol.FreeVolume(),
	}
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}
	g.field = particles.NewField(g.rng)
	g.prevFlowState = lab.Flow.State()
	g.prevDefined = sol.PH().Defined

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	} else if om != nil {
		g.outputManager = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	if !opts.Headless {
		g.initScene()
	}

	return g
}

// waterIndex locates plain water in the catalog.
func waterIndex(catalog []solution.Solute) int {
	for i, s := range catalog {
		if s.Name == solution.Water.Name {
			return i
		}
	}
	return 0
}

// initScene lays out the renderers for the configured screen size.
func (g *Game) initScene() {
	w := g.cfg.Derived.ScreenW32
	h := g.cfg.Derived.ScreenH32

	// Beaker occupies the center, controls the left, meter the right.
	interior := rl.Rectangle{
		X:      w * 0.32,
		Y:      h * 0.22,
		Width:  w * 0.36,
		Height: h * 0.58,
	}

	g.beaker = renderer.NewBeakerRenderer(interior, g.cfg.Beaker.MaxVolume)
	g.ions = renderer.NewIonRenderer()
	g.faucets = renderer.NewFaucetRenderer(interior)
	g.shimmer = renderer.NewLiquidShimmer(g.rng.Int63())
	g.meter = renderer.NewMeterRenderer(rl.Rectangle{
		X:      w - 210,
		Y:      h * 0.12,
		Width:  190,
		Height: h * 0.7,
	}, g.cfg.Meter.PHDecimals)

	g.controls = ui.NewControlsPanel(10, int32(h*0.12), 270)
	g.hud = ui.NewHUD()
	g.perfUI = ui.NewPerfPanel(int32(w)-210, int32(h)-140)
}

// Lab exposes the model for tests and tooling.
func (g *Game) Lab() *model.Lab { return g.lab }

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 { return g.tick }

// SetStatsCallback registers a callback invoked on every stats flush.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// Update runs input handling and simulation steps for one frame.
func (g *Game) Update() {
	g.handleInput()
	g.perfCollector.RecordFrame()

	if g.paused {
		return
	}
	for n := 0; n < g.stepsPerUpdate; n++ {
		g.step()
	}
}

// UpdateHeadless runs simulation steps without any input or frame
// bookkeeping.
func (g *Game) UpdateHeadless() {
	for n := 0; n < g.stepsPerUpdate; n++ {
		g.step()
	}
}

// step advances the model by one tick and feeds telemetry.
func (g *Game) step() {
	g.perfCollector.StartTick()
	dt := g.cfg.Sim.DT

	g.perfCollector.StartPhase(telemetry.PhaseFlow)
	rep := g.lab.Step(dt)

	g.perfCollector.StartPhase(telemetry.PhaseParticles)
	g.updateField()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.recordTick(rep)
	g.flushTelemetry()

	g.perfCollector.EndTick()

	g.tick++
	g.simTime += g.cfg.Derived.DT32
}

// updateField brings the particle cache to the current counts. In
// headless mode the bounds are the whole configured screen.
func (g *Game) updateField() {
	bounds := particles.Bounds{Width: int32(g.cfg.Screen.Width), Height: int32(g.cfg.Screen.Height)}
	if g.beaker != nil {
		bounds = g.beaker.LiquidBounds(g.cfg.Beaker.MaxVolume)
	}
	g.field.Update(g.lab.Counts().Get(), bounds)
}

// selectSolute switches to catalog entry i with the usual side effects.
func (g *Game) selectSolute(i int) {
	if i < 0 || i >= len(g.catalog) {
		return
	}
	g.activeIndex = i
	g.lab.SetSolute(g.catalog[i], false)
	g.recordSoluteChange()
}

// applyCustomPH synthesizes a custom stock at the given pH.
func (g *Game) applyCustomPH(pH float64) {
	g.activeIndex = -1
	g.lab.SetCustomPH(pH)
	g.recordSoluteChange()
}

// reset restores the construction-time state: water as the solute and
// the initial volumes, without an autofill in between.
func (g *Game) reset() {
	g.lab.SetSolute(solution.Water, true)
	g.lab.Reset()
	g.activeIndex = waterIndex(g.catalog)
	Logf("[RESET] tick=%d", g.tick)
}

// Unload closes output files and frees resources.
func (g *Game) Unload() {
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
}
