// Package model drives the solution over time: per-tick flow
// integration, the autofill animation after a solute change, and the
// displayed-pH derivation that feeds the particle visualization.
package model

import (
	"math"

	"github.com/pthm-cable/phlab/observe"
	"github.com/pthm-cable/phlab/solution"
)

// FlowState is the integrator's operating state.
type FlowState uint8

const (
	// Flowing is normal operation: user-driven dropper, faucet, and
	// drain flows are integrated each tick.
	Flowing FlowState = iota
	// Autofilling is the transient fast dispense entered when the active
	// solute changes; user flows are disabled until the target volume is
	// reached.
	Autofilling
)

// FlowConfig holds the integrator's rates and the autofill policy, fixed
// for the lifetime of one integrator.
type FlowConfig struct {
	DropperRate    float64 // max user-drag solute flow, L/s
	FaucetRate     float64 // max user-drag water flow, L/s
	DrainRate      float64 // max user-drag drain flow, L/s
	AutofillRate   float64 // fast dispense flow, L/s
	AutofillVolume float64 // dispense target after a solute change, liters
	AutofillOff    bool    // disable the autofill animation entirely
}

// Integrator advances the solution by a time delta each tick. Interaction
// collaborators translate drag state into flow rates before each tick;
// the integrator applies them in a fixed order (solute, water, drain) so
// draining always acts on the post-addition volume.
type Integrator struct {
	sol   *solution.Solution
	cfg   FlowConfig
	state FlowState

	dropperFlow float64
	faucetFlow  float64
	drainFlow   float64

	dropperEnabled *observe.Value[bool]
	faucetEnabled  *observe.Value[bool]
	drainEnabled   *observe.Value[bool]
}

// NewIntegrator creates an integrator over sol in the Flowing state.
func NewIntegrator(sol *solution.Solution, cfg FlowConfig) *Integrator {
	i := &Integrator{
		sol:            sol,
		cfg:            cfg,
		dropperEnabled: observe.NewValue(false),
		faucetEnabled:  observe.NewValue(false),
		drainEnabled:   observe.NewValue(false),
	}
	i.updateEnablement()
	return i
}

// State returns the current operating state.
func (i *Integrator) State() FlowState { return i.state }

// Flow rate setters, clamped to [0, max]. Rates persist until changed.

func (i *Integrator) SetDropperFlow(rate float64) {
	i.dropperFlow = clampRate(rate, i.cfg.DropperRate)
}

func (i *Integrator) SetFaucetFlow(rate float64) {
	i.faucetFlow = clampRate(rate, i.cfg.FaucetRate)
}

func (i *Integrator) SetDrainFlow(rate float64) {
	i.drainFlow = clampRate(rate, i.cfg.DrainRate)
}

func (i *Integrator) DropperFlow() float64 { return i.dropperFlow }
func (i *Integrator) FaucetFlow() float64  { return i.faucetFlow }
func (i *Integrator) DrainFlow() float64   { return i.drainFlow }

// Enablement observables, consumed by the faucet/dropper interaction
// collaborators.

func (i *Integrator) DropperEnabled() *observe.Value[bool] { return i.dropperEnabled }
func (i *Integrator) FaucetEnabled() *observe.Value[bool]  { return i.faucetEnabled }
func (i *Integrator) DrainEnabled() *observe.Value[bool]   { return i.drainEnabled }

// StepReport accounts for the liters actually moved during one tick,
// after clamping.
type StepReport struct {
	SoluteAdded float64
	WaterAdded  float64
	Drained     float64
}

// Step advances the model by dt seconds. Every tick runs to completion;
// there is no cancellation.
func (i *Integrator) Step(dt float64) StepReport {
	var rep StepReport
	if dt <= 0 {
		return rep
	}
	if i.state == Autofilling {
		return i.stepAutofill(dt)
	}

	before := i.sol.SoluteVolume()
	i.sol.AddSolute(i.dropperFlow * dt)
	rep.SoluteAdded = i.sol.SoluteVolume() - before
	i.updateEnablement()

	before = i.sol.WaterVolume()
	i.sol.AddWater(i.faucetFlow * dt)
	rep.WaterAdded = i.sol.WaterVolume() - before
	i.updateEnablement()

	before = i.sol.TotalVolume()
	i.sol.Drain(i.drainFlow * dt)
	rep.Drained = before - i.sol.TotalVolume()
	i.updateEnablement()

	return rep
}

// stepAutofill dispenses toward the target without overshooting, and
// returns to Flowing when the total volume reaches it.
func (i *Integrator) stepAutofill(dt float64) StepReport {
	var rep StepReport
	remaining := i.cfg.AutofillVolume - i.sol.TotalVolume()
	if remaining > 0 {
		before := i.sol.SoluteVolume()
		i.sol.AddSolute(math.Min(i.cfg.AutofillRate*dt, remaining))
		rep.SoluteAdded = i.sol.SoluteVolume() - before
	}
	if i.cfg.AutofillVolume-i.sol.TotalVolume() <= 0 {
		i.state = Flowing
		i.updateEnablement()
	}
	return rep
}

// SetSolute replaces the active solute. Unless the host is restoring
// persisted state (suppressSideEffects), the change cancels in-progress
// user flows and, when autofill is enabled, starts the fast dispense.
func (i *Integrator) SetSolute(sol solution.Solute, suppressSideEffects bool) {
	i.sol.SetSolute(sol, suppressSideEffects)
	if suppressSideEffects {
		i.updateEnablement()
		return
	}
	i.dropperFlow, i.faucetFlow, i.drainFlow = 0, 0, 0
	if !i.cfg.AutofillOff && i.cfg.AutofillVolume > 0 {
		i.state = Autofilling
	}
	i.updateEnablement()
}

// Reset restores the solution's construction-time volumes and returns to
// normal flow.
func (i *Integrator) Reset() {
	i.sol.Reset()
	i.state = Flowing
	i.dropperFlow, i.faucetFlow, i.drainFlow = 0, 0, 0
	i.updateEnablement()
}

// updateEnablement recomputes the per-device enabled flags from the fill
// level: inflows disabled at max volume, drain disabled when empty, and
// everything disabled while autofilling.
func (i *Integrator) updateEnablement() {
	flowing := i.state == Flowing
	i.dropperEnabled.Set(flowing && i.sol.FreeVolume() > 0)
	i.faucetEnabled.Set(flowing && i.sol.FreeVolume() > 0)
	i.drainEnabled.Set(flowing && i.sol.TotalVolume() > 0)
}

func clampRate(rate, max float64) float64 {
	if rate < 0 {
		return 0
	}
	if rate > max {
		return max
	}
	return rate
}
