// Package chem provides the pure pH/concentration/moles conversion math
// for the solution model. All functions are stateless.
package chem

import "math"

// pH scale bounds and the neutral point of pure water.
const (
	MinPH     = 0.0
	MaxPH     = 14.0
	NeutralPH = 7.0
)

// WaterConcentration is the molar concentration of H2O in pure water (mol/L).
const WaterConcentration = 55.6

// AvogadroConstant is molecules per mole.
const AvogadroConstant = 6.023e23

// ConcentrationH3O returns the hydronium concentration (mol/L) for a pH.
func ConcentrationH3O(pH float64) float64 {
	return math.Pow(10, -pH)
}

// ConcentrationOH returns the hydroxide concentration (mol/L) for a pH.
// Derived from the water self-ionization constant: [H3O+][OH-] = 1e-14.
func ConcentrationOH(pH float64) float64 {
	return math.Pow(10, pH-MaxPH)
}

// PHFromConcentrationH3O is the inverse of ConcentrationH3O.
func PHFromConcentrationH3O(c float64) float64 {
	return -math.Log10(c)
}

// PHFromConcentrationOH is the inverse of ConcentrationOH.
func PHFromConcentrationOH(c float64) float64 {
	return MaxPH + math.Log10(c)
}

// MolesFromConcentration converts a molar concentration to moles for a
// given volume in liters.
func MolesFromConcentration(concentration, volumeL float64) float64 {
	return concentration * volumeL
}

// ConcentrationFromMoles converts moles to a molar concentration for a
// given volume in liters. Returns 0 for zero volume.
func ConcentrationFromMoles(moles, volumeL float64) float64 {
	if volumeL == 0 {
		return 0
	}
	return moles / volumeL
}

// MoleculesFromConcentration returns the molecule count for a molar
// concentration and volume in liters.
func MoleculesFromConcentration(concentration, volumeL float64) float64 {
	return concentration * volumeL * AvogadroConstant
}

// ComputePH returns the pH of soluteVolume liters of stock solute at
// initialPH diluted with waterVolume liters of water. ok is false when no
// solution is present (total volume zero).
//
// The mixture is treated as simple dilution, but the solvent's own ion
// contribution (1e-7 mol/L on each side) is included so the function is
// exact in the limits: soluteVolume → 0 gives pH 7, waterVolume → 0 gives
// initialPH. The result is not clamped to [MinPH, MaxPH]; callers clamp
// at presentation time via ClampPH.
func ComputePH(initialPH, soluteVolume, waterVolume float64) (float64, bool) {
	total := soluteVolume + waterVolume
	if total == 0 {
		return 0, false
	}
	waterIon := math.Pow(10, -NeutralPH)
	if initialPH < NeutralPH {
		// Acidic stock: track H3O+.
		c := (ConcentrationH3O(initialPH)*soluteVolume + waterIon*waterVolume) / total
		return PHFromConcentrationH3O(c), true
	}
	// Basic or neutral stock: track OH-.
	c := (ConcentrationOH(initialPH)*soluteVolume + waterIon*waterVolume) / total
	return PHFromConcentrationOH(c), true
}

// ClampPH clamps a pH to the displayable [MinPH, MaxPH] range.
func ClampPH(pH float64) float64 {
	if pH < MinPH {
		return MinPH
	}
	if pH > MaxPH {
		return MaxPH
	}
	return pH
}

// RoundPH rounds a pH to the given number of decimal places. Display
// logic compares rounded values so sub-resolution noise never triggers
// downstream recomputation.
func RoundPH(pH float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(pH*scale) / scale
}
