// Package particles maps a solution's displayed pH to a bounded,
// renderable number of H3O+ and OH- particles, and caches their screen
// positions for stable redraw.
package particles

import (
	"math"

	"github.com/pthm-cable/phlab/chem"
)

// Counts holds the number of particles to draw for each ion species.
type Counts struct {
	H3O int
	OH  int
}

// H3OMajority reports whether H3O+ is the majority species. Ties count
// as H3O+ so the draw order is deterministic at neutral.
func (c Counts) H3OMajority() bool { return c.H3O >= c.OH }

// CountModel converts pH to particle counts. True molecule counts at
// extreme pH are orders of magnitude apart and unrenderable, so the
// mapping is logarithmic inside a symmetric neutral band and linear
// outside it: chemically suggestive near neutral, legible at the
// extremes. The linear slopes are chosen to be continuous at the band
// boundaries and to reach MaxCount at the ends of the scale.
type CountModel struct {
	CountAtNeutral int     // per-species count at pH 7
	MaxCount       int     // majority count at pH 0 / pH 14
	MinMinority    int     // visibility floor for the minority species
	BandMin        float64 // logarithmic band lower bound
	BandMax        float64 // logarithmic band upper bound
	PHDecimals     int     // display precision; pH is rounded before mapping
}

// logScale converts an ion concentration to a particle count such that
// the neutral concentration (1e-7) maps to CountAtNeutral.
func (m CountModel) logScale(concentration float64) float64 {
	return concentration * float64(m.CountAtNeutral) / 1e-7
}

// Counts returns the particle counts for a displayed pH. ok=false (no
// solution present) yields zero counts. The pH is clamped to the scale
// and rounded to display precision first, so sub-resolution pH noise
// never changes the result.
func (m CountModel) Counts(pH float64, ok bool) Counts {
	if !ok {
		return Counts{}
	}
	pH = chem.RoundPH(chem.ClampPH(pH), m.PHDecimals)

	var h3o, oh float64
	switch {
	case pH >= m.BandMin && pH <= m.BandMax:
		// Logarithmic region: counts track true concentrations.
		h3o = m.logScale(chem.ConcentrationH3O(pH))
		oh = m.logScale(chem.ConcentrationOH(pH))

	case pH < m.BandMin:
		// Acidic linear region: H3O+ rises from its band-boundary value
		// to MaxCount at pH 0; OH- falls to the visibility floor.
		frac := (m.BandMin - pH) / (m.BandMin - chem.MinPH)
		h3oEdge := m.logScale(chem.ConcentrationH3O(m.BandMin))
		ohEdge := m.logScale(chem.ConcentrationOH(m.BandMin))
		h3o = h3oEdge + frac*(float64(m.MaxCount)-h3oEdge)
		oh = ohEdge - frac*(ohEdge-float64(m.MinMinority))

	default:
		// Basic linear region, mirror image.
		frac := (pH - m.BandMax) / (chem.MaxPH - m.BandMax)
		ohEdge := m.logScale(chem.ConcentrationOH(m.BandMax))
		h3oEdge := m.logScale(chem.ConcentrationH3O(m.BandMax))
		oh = ohEdge + frac*(float64(m.MaxCount)-ohEdge)
		h3o = h3oEdge - frac*(h3oEdge-float64(m.MinMinority))
	}

	h3oMinority := pH > chem.NeutralPH
	return Counts{
		H3O: m.finalize(h3o, h3oMinority),
		OH:  m.finalize(oh, !h3oMinority && pH != chem.NeutralPH),
	}
}

// finalize rounds and bounds a count to [0, MaxCount], applying the
// minority visibility floor when the species is the smaller of the two.
func (m CountModel) finalize(n float64, minority bool) int {
	c := int(math.Round(n))
	if minority && c < m.MinMinority {
		c = m.MinMinority
	}
	if c < 0 {
		c = 0
	}
	if c > m.MaxCount {
		c = m.MaxCount
	}
	return c
}
