package chem

// Color is an 8-bit RGBA color. The model layer uses this type instead of
// raylib's so the core compiles and tests headless; the renderer converts.
type Color struct {
	R, G, B, A uint8
}

// Lerp linearly interpolates from c to other. t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Color{
		R: lerpByte(c.R, other.R, t),
		G: lerpByte(c.G, other.G, t),
		B: lerpByte(c.B, other.B, t),
		A: lerpByte(c.A, other.A, t),
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// WaterColor is the display color of pure water.
var WaterColor = Color{R: 224, G: 255, B: 255, A: 255}
