// Package renderer draws the beaker scene: glassware, liquid, ion
// particles, and the pH meter.
package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/phlab/chem"
	"github.com/pthm-cable/phlab/particles"
)

// BeakerRenderer draws the beaker and its liquid.
type BeakerRenderer struct {
	interior  rl.Rectangle // interior region the liquid can occupy
	maxVolume float64
	tickStep  float64 // liters between tick marks

	glassColor rl.Color
	tickColor  rl.Color
	labelColor rl.Color
}

// NewBeakerRenderer creates a beaker renderer. interior is the region
// liquid fills when the beaker is at maxVolume.
func NewBeakerRenderer(interior rl.Rectangle, maxVolume float64) *BeakerRenderer {
	return &BeakerRenderer{
		interior:   interior,
		maxVolume:  maxVolume,
		tickStep:   0.25,
		glassColor: rl.Color{R: 190, G: 200, B: 210, A: 255},
		tickColor:  rl.Color{R: 130, G: 140, B: 150, A: 255},
		labelColor: rl.Color{R: 90, G: 98, B: 108, A: 255},
	}
}

// Interior returns the full liquid region at max volume.
func (b *BeakerRenderer) Interior() rl.Rectangle { return b.interior }

// LiquidRect returns the screen rectangle the liquid currently occupies.
// Liquid fills from the bottom of the interior.
func (b *BeakerRenderer) LiquidRect(totalVolume float64) rl.Rectangle {
	frac := totalVolume / b.maxVolume
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	h := b.interior.Height * float32(frac)
	return rl.Rectangle{
		X:      b.interior.X,
		Y:      b.interior.Y + b.interior.Height - h,
		Width:  b.interior.Width,
		Height: h,
	}
}

// LiquidBounds returns the current liquid region as particle bounds.
func (b *BeakerRenderer) LiquidBounds(totalVolume float64) particles.Bounds {
	r := b.LiquidRect(totalVolume)
	return particles.Bounds{
		X:      int32(r.X),
		Y:      int32(r.Y),
		Width:  int32(r.Width),
		Height: int32(r.Height),
	}
}

// Draw renders the liquid and the glassware around it.
func (b *BeakerRenderer) Draw(liquid chem.Color, totalVolume float64) {
	r := b.LiquidRect(totalVolume)
	if r.Height > 0 {
		rl.DrawRectangleRec(r, ToRL(liquid))
		// Slightly lighter surface line
		surface := rl.Color{R: 255, G: 255, B: 255, A: 70}
		rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.Width), 2, surface)
	}

	b.drawGlass()
	b.drawTicks()
}

// drawGlass draws the walls and base. The beaker is open at the top.
func (b *BeakerRenderer) drawGlass() {
	const wall = 4
	x := int32(b.interior.X)
	y := int32(b.interior.Y)
	w := int32(b.interior.Width)
	h := int32(b.interior.Height)

	rl.DrawRectangle(x-wall, y, wall, h+wall, b.glassColor)
	rl.DrawRectangle(x+w, y, wall, h+wall, b.glassColor)
	rl.DrawRectangle(x-wall, y+h, w+2*wall, wall, b.glassColor)
	// Rim flares
	rl.DrawRectangle(x-2*wall, y-2, wall*2, 4, b.glassColor)
	rl.DrawRectangle(x+w, y-2, wall*2, 4, b.glassColor)
}

// drawTicks draws volume graduations on the left wall.
func (b *BeakerRenderer) drawTicks() {
	for v := b.tickStep; v <= b.maxVolume+1e-9; v += b.tickStep {
		frac := v / b.maxVolume
		y := int32(b.interior.Y + b.interior.Height - b.interior.Height*float32(frac))
		major := isHalfLitre(v)

		length := int32(10)
		if major {
			length = 18
		}
		rl.DrawRectangle(int32(b.interior.X), y, length, 2, b.tickColor)

		if major {
			label := fmt.Sprintf("%gL", v)
			rl.DrawText(label, int32(b.interior.X)+length+4, y-6, 14, b.labelColor)
		}
	}
}

func isHalfLitre(v float64) bool {
	scaled := v * 2
	rounded := float64(int64(scaled + 0.5))
	return scaled-rounded < 1e-9 && scaled-rounded > -1e-9
}

// ToRL converts a solution color to a raylib color.
func ToRL(c chem.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
