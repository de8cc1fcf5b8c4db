// Package solution models a solute/water mixture in a beaker: stock
// chemicals, the mutable solution aggregate, and its derived pH and color.
package solution

import "github.com/pthm-cable/phlab/chem"

// Solute describes a stock chemical. Immutable.
type Solute struct {
	Name        string
	StockPH     float64    // pH of the undiluted stock
	StockColor  chem.Color // color at full concentration
	DiluteColor chem.Color // color the stock fades to as it dilutes
}

// ColorAt returns the solute's display color at the given concentration
// fraction (soluteVolume / totalVolume), interpolating dilute → stock.
func (s Solute) ColorAt(fraction float64) chem.Color {
	return s.DiluteColor.Lerp(s.StockColor, fraction)
}

// CustomName is the display name of the synthesized custom solute.
const CustomName = "Custom"

// CustomSolute synthesizes a solute at an arbitrary pH with a neutral
// palette. It exists only while the user drives the displayed pH directly.
func CustomSolute(pH float64) Solute {
	return Solute{
		Name:        CustomName,
		StockPH:     pH,
		StockColor:  chem.Color{R: 102, G: 102, B: 102, A: 180},
		DiluteColor: chem.WaterColor,
	}
}

// Water is the solvent, also selectable as a stock.
var Water = Solute{
	Name:        "Water",
	StockPH:     chem.NeutralPH,
	StockColor:  chem.WaterColor,
	DiluteColor: chem.WaterColor,
}

// Catalog returns the fixed list of stock chemicals, ordered from most
// acidic to most basic.
func Catalog() []Solute {
	return []Solute{
		{Name: "Battery Acid", StockPH: 1.0, StockColor: chem.Color{R: 255, G: 255, B: 0, A: 255}, DiluteColor: chem.WaterColor},
		{Name: "Vomit", StockPH: 2.0, StockColor: chem.Color{R: 255, G: 171, B: 120, A: 255}, DiluteColor: chem.WaterColor},
		{Name: "Soda", StockPH: 2.5, StockColor: chem.Color{R: 204, G: 251, B: 122, A: 255}, DiluteColor: chem.WaterColor},
		{Name: "Orange Juice", StockPH: 3.5, StockColor: chem.Color{R: 255, G: 180, B: 0, A: 255}, DiluteColor: chem.WaterColor},
		{Name: "Coffee", StockPH: 5.0, StockColor: chem.Color{R: 164, G: 99, B: 7, A: 255}, DiluteColor: chem.WaterColor},
		{Name: "Chicken Soup", StockPH: 5.8, StockColor: chem.Color{R: 255, G: 240, B: 104, A: 255}, DiluteColor: chem.WaterColor},
		{Name: "Milk", StockPH: 6.5, StockColor: chem.Color{R: 250, G: 250, B: 250, A: 255}, DiluteColor: chem.WaterColor},
		Water,
		{Name: "Blood", StockPH: 7.4, StockColor: chem.Color{R: 211, G: 79, B: 68, A: 255}, DiluteColor: chem.WaterColor},
		{Name: "Spit", StockPH: 7.4, StockColor: chem.Color{R: 202, G: 240, B: 239, A: 255}, DiluteColor: chem.WaterColor},
		{Name: "Hand Soap", StockPH: 10.0, StockColor: chem.Color{R: 224, G: 141, B: 242, A: 255}, DiluteColor: chem.WaterColor},
		{Name: "Drain Cleaner", StockPH: 13.0, StockColor: chem.Color{R: 255, G: 255, B: 0, A: 255}, DiluteColor: chem.WaterColor},
	}
}
