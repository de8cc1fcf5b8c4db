package model

import (
	"github.com/pthm-cable/phlab/chem"
	"github.com/pthm-cable/phlab/observe"
	"github.com/pthm-cable/phlab/particles"
	"github.com/pthm-cable/phlab/solution"
)

// Lab is the facade the view collaborators talk to: one solution, its
// flow integrator, and the derived displayed pH and particle counts.
//
// The displayed pH is the solution pH clamped to the scale and rounded
// to meter precision. Particle counts are derived from the displayed pH,
// not the raw one, so they only recompute when the rounded value
// actually moves.
type Lab struct {
	Solution *solution.Solution
	Flow     *Integrator

	countModel particles.CountModel

	displayPH *observe.Value[solution.PH]
	counts    *observe.Value[particles.Counts]
}

// NewLab wires a solution, an integrator, and the count model into one
// reactive graph.
func NewLab(sol *solution.Solution, flowCfg FlowConfig, countModel particles.CountModel) *Lab {
	l := &Lab{
		Solution:   sol,
		Flow:       NewIntegrator(sol, flowCfg),
		countModel: countModel,
	}

	initial := l.displayOf(sol.PH())
	l.displayPH = observe.NewValue(initial)
	l.counts = observe.NewValue(countModel.Counts(initial.Value, initial.Defined))

	sol.ObservePH().Subscribe(func(p solution.PH) {
		l.displayPH.Set(l.displayOf(p))
	})
	l.displayPH.Subscribe(func(p solution.PH) {
		l.counts.Set(l.countModel.Counts(p.Value, p.Defined))
	})

	return l
}

// displayOf maps a raw pH to its displayed form.
func (l *Lab) displayOf(p solution.PH) solution.PH {
	if !p.Defined {
		return solution.PH{}
	}
	return solution.PH{
		Value:   chem.RoundPH(chem.ClampPH(p.Value), l.countModel.PHDecimals),
		Defined: true,
	}
}

// DisplayPH returns the observable displayed pH.
func (l *Lab) DisplayPH() *observe.Value[solution.PH] { return l.displayPH }

// Counts returns the observable particle counts.
func (l *Lab) Counts() *observe.Value[particles.Counts] { return l.counts }

// Step advances the model by dt seconds.
func (l *Lab) Step(dt float64) StepReport { return l.Flow.Step(dt) }

// Reset restores the construction-time state.
func (l *Lab) Reset() { l.Flow.Reset() }

// SetSolute selects a chemical from the catalog (or any stock). The
// usual solute-change side effects apply unless the host is restoring
// persisted state.
func (l *Lab) SetSolute(sol solution.Solute, suppressSideEffects bool) {
	l.Flow.SetSolute(sol, suppressSideEffects)
}

// SetCustomPH replaces the solute with a synthesized custom stock at the
// given pH. It is an ordinary solute change: the dispensed mixture is
// discarded and the beaker autofills with the new stock.
func (l *Lab) SetCustomPH(pH float64) {
	l.Flow.SetSolute(solution.CustomSolute(chem.ClampPH(pH)), false)
}
