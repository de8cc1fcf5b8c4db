package solution

import (
	"fmt"
	"math"

	"github.com/pthm-cable/phlab/chem"
	"github.com/pthm-cable/phlab/observe"
)

// PH is the observable pH value. Defined is false when no solution is
// present (total volume zero).
type PH struct {
	Value   float64
	Defined bool
}

// Config holds the construction-time parameters of a Solution. All values
// are fixed for the lifetime of one instance.
type Config struct {
	MaxVolume           float64 // liters, > 0
	InitialSoluteVolume float64 // liters, ≥ 0
	InitialWaterVolume  float64 // liters, ≥ 0
	VolumeDecimals      int     // display precision; sets the resolvable-volume epsilon
	PHDecimals          int     // display precision for pH comparisons
}

// Validate checks the construction preconditions. Invalid configuration
// can never arise from valid runtime usage, so it is rejected up front.
func (c Config) Validate() error {
	if c.MaxVolume <= 0 {
		return fmt.Errorf("solution: max volume must be positive, got %v", c.MaxVolume)
	}
	if c.InitialSoluteVolume < 0 || c.InitialWaterVolume < 0 {
		return fmt.Errorf("solution: initial volumes must be nonnegative, got solute=%v water=%v",
			c.InitialSoluteVolume, c.InitialWaterVolume)
	}
	if total := c.InitialSoluteVolume + c.InitialWaterVolume; total > c.MaxVolume {
		return fmt.Errorf("solution: initial volume %v exceeds max volume %v", total, c.MaxVolume)
	}
	return nil
}

// Solution is the mutable solute/water aggregate. Source fields are the
// two volumes and the solute reference; total volume, pH, and color are
// derived and pushed synchronously to subscribers on every change.
//
// Volumes never go negative and the total never exceeds MaxVolume; all
// mutators clamp silently because their inputs come from continuous
// physical-time integration, not user commands that need validation.
type Solution struct {
	cfg       Config
	volumeEps float64

	solute       *observe.Value[Solute]
	soluteVolume *observe.Value[float64]
	waterVolume  *observe.Value[float64]

	totalVolume *observe.Value[float64]
	ph          *observe.Value[PH]
	color       *observe.Value[chem.Color]

	// suppress gates derived recomputation during the dual-field write of
	// a compound operation, so dependents never observe pH or color
	// computed from one new volume and one stale volume.
	suppress bool

	ext Extension
}

// New creates a Solution with the given solute and configuration.
func New(sol Solute, cfg Config) (*Solution, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Solution{
		cfg:          cfg,
		volumeEps:    math.Pow(10, -float64(cfg.VolumeDecimals)),
		solute:       observe.NewValue(sol),
		soluteVolume: observe.NewValue(cfg.InitialSoluteVolume),
		waterVolume:  observe.NewValue(cfg.InitialWaterVolume),
		totalVolume:  observe.NewValue(0.0),
		ph:           observe.NewValue(PH{}),
		color:        observe.NewValue(chem.WaterColor),
	}

	// Source-field changes trigger derived recomputation unless a
	// compound operation has suppressed it.
	onSource := func(float64) {
		if !s.suppress {
			s.derive()
		}
	}
	s.soluteVolume.Subscribe(onSource)
	s.waterVolume.Subscribe(onSource)

	s.derive()
	return s, nil
}

// Accessors for current state.

func (s *Solution) Solute() Solute        { return s.solute.Get() }
func (s *Solution) SoluteVolume() float64 { return s.soluteVolume.Get() }
func (s *Solution) WaterVolume() float64  { return s.waterVolume.Get() }
func (s *Solution) TotalVolume() float64  { return s.totalVolume.Get() }
func (s *Solution) PH() PH                { return s.ph.Get() }
func (s *Solution) Color() chem.Color     { return s.color.Get() }
func (s *Solution) MaxVolume() float64    { return s.cfg.MaxVolume }

// FreeVolume returns the remaining capacity in liters.
func (s *Solution) FreeVolume() float64 {
	return s.cfg.MaxVolume - s.totalVolume.Get()
}

// VolumeEpsilon returns the minimum resolvable volume at the configured
// display precision.
func (s *Solution) VolumeEpsilon() float64 { return s.volumeEps }

// Observables for subscribe-to-next-change consumers.

func (s *Solution) ObserveSolute() *observe.Value[Solute]        { return s.solute }
func (s *Solution) ObserveSoluteVolume() *observe.Value[float64] { return s.soluteVolume }
func (s *Solution) ObserveWaterVolume() *observe.Value[float64]  { return s.waterVolume }
func (s *Solution) ObserveTotalVolume() *observe.Value[float64]  { return s.totalVolume }
func (s *Solution) ObservePH() *observe.Value[PH]                { return s.ph }
func (s *Solution) ObserveColor() *observe.Value[chem.Color]     { return s.color }

// AddSolute increases the solute volume by up to dv, clamped to the free
// capacity. A nonzero addition always becomes visible at the displayed
// precision: a result below the resolvable epsilon snaps up to it.
func (s *Solution) AddSolute(dv float64) {
	s.addVolume(s.soluteVolume, dv)
}

// AddWater increases the water volume by up to dv, with the same clamping
// and snap-to-epsilon behavior as AddSolute.
func (s *Solution) AddWater(dv float64) {
	s.addVolume(s.waterVolume, dv)
}

func (s *Solution) addVolume(vol *observe.Value[float64], dv float64) {
	if dv <= 0 {
		return
	}
	free := s.FreeVolume()
	if free <= 0 {
		return
	}
	next := vol.Get() + math.Min(dv, free)
	if next < s.volumeEps {
		next = math.Min(s.volumeEps, vol.Get()+free)
	}
	vol.Set(next)
}

// Drain removes up to dv liters of mixed solution. Both volumes shrink
// proportionally to their current share, so draining never changes the
// acid/base ratio. A remainder below the resolvable epsilon empties the
// beaker exactly rather than leaving a near-zero residue.
func (s *Solution) Drain(dv float64) {
	if dv <= 0 {
		return
	}
	total := s.totalVolume.Get()
	if total <= 0 {
		return
	}
	if total-dv < s.volumeEps {
		s.setVolumes(0, 0)
		return
	}
	f := 1 - dv/total
	s.setVolumes(s.waterVolume.Get()*f, s.soluteVolume.Get()*f)
}

// setVolumes writes both source volumes as one logical operation:
// recomputation is suppressed across the pair and performed exactly once
// afterwards, so subscribers see a single consistent derived update.
func (s *Solution) setVolumes(water, solute float64) {
	s.suppress = true
	s.waterVolume.Set(water)
	s.soluteVolume.Set(solute)
	s.suppress = false
	s.derive()
}

// Reset restores both volumes to their construction-time values.
func (s *Solution) Reset() {
	s.setVolumes(s.cfg.InitialWaterVolume, s.cfg.InitialSoluteVolume)
}

// SetSolute replaces the solute. A new chemical invalidates any
// previously dispensed mixture, so both volumes reset to their
// construction-time values as a side effect. When suppressSideEffects is
// set (host-driven state restoration), volumes are left untouched.
func (s *Solution) SetSolute(sol Solute, suppressSideEffects bool) {
	s.suppress = true
	s.solute.Set(sol)
	if !suppressSideEffects {
		s.waterVolume.Set(s.cfg.InitialWaterVolume)
		s.soluteVolume.Set(s.cfg.InitialSoluteVolume)
	}
	s.suppress = false
	s.derive()
}

// derive recomputes total volume, pH, and color from the source fields
// and pushes them, in dependency order, to subscribers.
func (s *Solution) derive() {
	vs := s.soluteVolume.Get()
	vw := s.waterVolume.Get()
	total := vs + vw

	s.totalVolume.Set(total)

	pH, ok := chem.ComputePH(s.solute.Get().StockPH, vs, vw)
	s.ph.Set(PH{Value: pH, Defined: ok})

	s.color.Set(s.deriveColor(vs, total, pH, ok))

	if s.ext != nil {
		s.ext.Recompute(s)
	}
}

// deriveColor maps the current mixture to a display color. Pure water
// color applies when no solute is present, and when the displayed pH
// rounds to exactly neutral at the configured precision.
func (s *Solution) deriveColor(vs, total, pH float64, ok bool) chem.Color {
	if !ok || vs == 0 {
		return chem.WaterColor
	}
	if chem.RoundPH(chem.ClampPH(pH), s.cfg.PHDecimals) == chem.NeutralPH {
		return chem.WaterColor
	}
	return s.solute.Get().ColorAt(vs / total)
}
