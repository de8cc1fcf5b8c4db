package chem

import "testing"

func TestColorLerp(t *testing.T) {
	a := Color{R: 0, G: 100, B: 200, A: 255}
	b := Color{R: 200, G: 0, B: 100, A: 55}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}

	mid := a.Lerp(b, 0.5)
	if mid.R != 100 || mid.G != 50 || mid.B != 150 || mid.A != 155 {
		t.Errorf("Lerp(0.5) = %v", mid)
	}

	// Out-of-range t clamps.
	if got := a.Lerp(b, -2); got != a {
		t.Errorf("Lerp(-2) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 3); got != b {
		t.Errorf("Lerp(3) = %v, want %v", got, b)
	}
}
