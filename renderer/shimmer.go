package renderer

import (
	"github.com/aquilax/go-perlin"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// LiquidShimmer overlays slow-moving Perlin noise highlights on the
// liquid so the surface reads as fluid rather than flat fill.
type LiquidShimmer struct {
	noise *perlin.Perlin
	cell  int32 // highlight grid cell size in pixels
}

// NewLiquidShimmer creates a shimmer layer. The seed only changes where
// highlights sit, not the simulation.
func NewLiquidShimmer(seed int64) *LiquidShimmer {
	return &LiquidShimmer{
		noise: perlin.NewPerlin(2, 2, 3, seed),
		cell:  10,
	}
}

// Draw renders highlights clipped to the liquid rectangle.
func (s *LiquidShimmer) Draw(time float32, liquid rl.Rectangle) {
	if liquid.Height <= 0 {
		return
	}

	const spatialScale = 0.015
	const timeScale = 0.25

	rl.BeginScissorMode(int32(liquid.X), int32(liquid.Y), int32(liquid.Width), int32(liquid.Height))

	t := float64(time) * timeScale
	x0 := int32(liquid.X)
	y0 := int32(liquid.Y)
	for y := y0; y < y0+int32(liquid.Height); y += s.cell {
		for x := x0; x < x0+int32(liquid.Width); x += s.cell {
			n := s.noise.Noise3D(float64(x)*spatialScale, float64(y)*spatialScale, t)
			if n <= 0.15 {
				continue
			}
			alpha := uint8((n - 0.15) * 90)
			rl.DrawRectangle(x, y, s.cell, s.cell, rl.Color{R: 255, G: 255, B: 255, A: alpha})
		}
	}

	rl.EndScissorMode()
}
