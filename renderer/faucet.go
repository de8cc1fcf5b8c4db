package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/phlab/chem"
)

// FaucetRenderer draws the dropper, water faucet, and drain fixtures
// plus their streams while liquid is moving.
type FaucetRenderer struct {
	dropperSpout rl.Vector2 // where the solute stream starts
	faucetSpout  rl.Vector2 // where the water stream starts
	drainSpout   rl.Vector2 // where the drain stream starts

	bodyColor  rl.Color
	waterColor rl.Color
}

// NewFaucetRenderer positions the fixtures around the beaker interior.
func NewFaucetRenderer(interior rl.Rectangle) *FaucetRenderer {
	return &FaucetRenderer{
		dropperSpout: rl.Vector2{X: interior.X + interior.Width*0.3, Y: interior.Y - 40},
		faucetSpout:  rl.Vector2{X: interior.X + interior.Width*0.7, Y: interior.Y - 40},
		drainSpout:   rl.Vector2{X: interior.X + interior.Width + 24, Y: interior.Y + interior.Height + 4},
		bodyColor:    rl.Color{R: 150, G: 156, B: 166, A: 255},
		waterColor:   ToRL(chem.WaterColor),
	}
}

// Draw renders the fixtures. Flow arguments are fractions of the
// maximum rate in [0, 1]; a zero flow draws no stream. surfaceY is the
// current liquid surface, where inflow streams end.
func (f *FaucetRenderer) Draw(stock chem.Color, dropperFlow, faucetFlow, drainFlow float64, surfaceY float32, liquid chem.Color) {
	f.drawFixture(f.dropperSpout)
	f.drawFixture(f.faucetSpout)
	f.drawDrainPipe()

	if dropperFlow > 0 {
		f.drawStream(f.dropperSpout, surfaceY, dropperFlow, ToRL(stock))
	}
	if faucetFlow > 0 {
		f.drawStream(f.faucetSpout, surfaceY, faucetFlow, f.waterColor)
	}
	if drainFlow > 0 {
		end := f.drainSpout.Y + 60
		f.drawStream(f.drainSpout, end, drainFlow, ToRL(liquid))
	}
}

// drawFixture draws a spout body above the beaker.
func (f *FaucetRenderer) drawFixture(spout rl.Vector2) {
	rl.DrawRectangle(int32(spout.X)-8, int32(spout.Y)-10, 16, 12, f.bodyColor)
	rl.DrawRectangle(int32(spout.X)-8, int32(spout.Y)-28, 40, 18, f.bodyColor)
}

// drawDrainPipe draws the outlet at the beaker base.
func (f *FaucetRenderer) drawDrainPipe() {
	rl.DrawRectangle(int32(f.drainSpout.X)-26, int32(f.drainSpout.Y)-8, 28, 10, f.bodyColor)
	rl.DrawRectangle(int32(f.drainSpout.X)-6, int32(f.drainSpout.Y)-8, 10, 12, f.bodyColor)
}

// drawStream draws a vertical liquid column whose width tracks the flow
// fraction.
func (f *FaucetRenderer) drawStream(from rl.Vector2, toY float32, flow float64, color rl.Color) {
	if toY <= from.Y {
		return
	}
	w := int32(2 + flow*8)
	color.A = 210
	rl.DrawRectangle(int32(from.X)-w/2, int32(from.Y), w, int32(toY-from.Y), color)
}
