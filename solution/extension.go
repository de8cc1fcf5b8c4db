package solution

import (
	"github.com/pthm-cable/phlab/chem"
	"github.com/pthm-cable/phlab/observe"
)

// Extension is an optional derived-quantity record attached to a Solution
// by the owning screen. It is recomputed on the same notification edge as
// the solution's own derived values, after they are consistent.
//
// Extensions replace subclassing: a screen that needs extra derived
// quantities attaches a record and discovers it later with a capability
// check on Attached().
type Extension interface {
	Recompute(s *Solution)
}

// Attach installs ext and recomputes it immediately. Only one extension
// can be attached per Solution.
func (s *Solution) Attach(ext Extension) {
	s.ext = ext
	if ext != nil {
		ext.Recompute(s)
	}
}

// Attached returns the currently attached extension, or nil.
func (s *Solution) Attached() Extension { return s.ext }

// IonReadout holds the derived particle-level quantities of a solution.
type IonReadout struct {
	ConcentrationH3O float64 // mol/L
	ConcentrationOH  float64 // mol/L
	ConcentrationH2O float64 // mol/L
	MolesH3O         float64
	MolesOH          float64
	MolesH2O         float64
}

// IonExtension derives ion concentrations and mole counts for the
// readout panel. Quantities are zero while the beaker is empty.
type IonExtension struct {
	readout *observe.Value[IonReadout]
}

// NewIonExtension creates an IonExtension ready to attach.
func NewIonExtension() *IonExtension {
	return &IonExtension{readout: observe.NewValue(IonReadout{})}
}

// Readout returns the observable derived quantities.
func (e *IonExtension) Readout() *observe.Value[IonReadout] { return e.readout }

// Recompute implements Extension.
func (e *IonExtension) Recompute(s *Solution) {
	pH := s.PH()
	if !pH.Defined {
		e.readout.Set(IonReadout{})
		return
	}
	volume := s.TotalVolume()
	cH3O := chem.ConcentrationH3O(pH.Value)
	cOH := chem.ConcentrationOH(pH.Value)
	e.readout.Set(IonReadout{
		ConcentrationH3O: cH3O,
		ConcentrationOH:  cOH,
		ConcentrationH2O: chem.WaterConcentration,
		MolesH3O:         chem.MolesFromConcentration(cH3O, volume),
		MolesOH:          chem.MolesFromConcentration(cOH, volume),
		MolesH2O:         chem.MolesFromConcentration(chem.WaterConcentration, volume),
	})
}
