package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/phlab/chem"
	"github.com/pthm-cable/phlab/solution"
)

// MeterRenderer draws the pH readout and the 0..14 color scale.
type MeterRenderer struct {
	rect     rl.Rectangle
	decimals int

	panelColor  rl.Color
	borderColor rl.Color
	textColor   rl.Color

	// scale colors, one per whole pH unit
	scale [int(chem.MaxPH) + 1]rl.Color
}

// NewMeterRenderer creates a meter occupying rect.
func NewMeterRenderer(rect rl.Rectangle, decimals int) *MeterRenderer {
	m := &MeterRenderer{
		rect:        rect,
		decimals:    decimals,
		panelColor:  rl.Color{R: 45, G: 48, B: 56, A: 235},
		borderColor: rl.Color{R: 110, G: 116, B: 128, A: 255},
		textColor:   rl.Color{R: 235, G: 238, B: 245, A: 255},
	}

	// Acid red through neutral green to basic violet.
	acid := chem.Color{R: 198, G: 60, B: 50, A: 255}
	neutral := chem.Color{R: 86, G: 160, B: 92, A: 255}
	base := chem.Color{R: 96, G: 62, B: 158, A: 255}
	for i := range m.scale {
		pH := float64(i)
		var c chem.Color
		if pH <= chem.NeutralPH {
			c = acid.Lerp(neutral, pH/chem.NeutralPH)
		} else {
			c = neutral.Lerp(base, (pH-chem.NeutralPH)/(chem.MaxPH-chem.NeutralPH))
		}
		m.scale[i] = ToRL(c)
	}
	return m
}

// Draw renders the meter for the displayed pH.
func (m *MeterRenderer) Draw(pH solution.PH) {
	rl.DrawRectangleRec(m.rect, m.panelColor)
	rl.DrawRectangleLinesEx(m.rect, 2, m.borderColor)

	// Readout
	text := "--"
	if pH.Defined {
		text = fmt.Sprintf("%.*f", m.decimals, pH.Value)
	}
	fontSize := int32(28)
	tw := rl.MeasureText(text, fontSize)
	rl.DrawText("pH", int32(m.rect.X)+10, int32(m.rect.Y)+12, 16, m.textColor)
	rl.DrawText(text, int32(m.rect.X+m.rect.Width)-tw-12, int32(m.rect.Y)+8, fontSize, m.textColor)

	m.drawScale(pH)
}

// drawScale renders the vertical color scale with an indicator at the
// current pH. Acidic end at the bottom.
func (m *MeterRenderer) drawScale(pH solution.PH) {
	barX := int32(m.rect.X) + 14
	barTop := int32(m.rect.Y) + 46
	barW := int32(18)
	barH := int32(m.rect.Height) - 60
	n := len(m.scale)

	segH := float32(barH) / float32(n)
	for i, c := range m.scale {
		// Basic at the top, acidic at the bottom
		y := float32(barTop) + float32(n-1-i)*segH
		rl.DrawRectangle(barX, int32(y), barW, int32(segH+1), c)

		if i%2 == 0 {
			rl.DrawText(fmt.Sprintf("%d", i), barX+barW+6, int32(y+segH/2)-5, 10, m.textColor)
		}
	}

	if !pH.Defined {
		return
	}
	frac := float32(pH.Value / chem.MaxPH)
	y := float32(barTop) + float32(barH)*(1-frac)
	tri := []rl.Vector2{
		{X: float32(barX) - 10, Y: y - 6},
		{X: float32(barX) - 10, Y: y + 6},
		{X: float32(barX) - 1, Y: y},
	}
	rl.DrawTriangle(tri[0], tri[1], tri[2], m.textColor)
}
