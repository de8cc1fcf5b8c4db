package chem

import (
	"math"
	"testing"
)

func TestConcentrationConversions(t *testing.T) {
	tests := []struct {
		name    string
		pH      float64
		wantH3O float64
		wantOH  float64
	}{
		{"neutral", 7, 1e-7, 1e-7},
		{"strong acid", 1, 1e-1, 1e-13},
		{"strong base", 13, 1e-13, 1e-1},
		{"mild acid", 4.5, math.Pow(10, -4.5), math.Pow(10, -9.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConcentrationH3O(tt.pH); !closeRel(got, tt.wantH3O) {
				t.Errorf("ConcentrationH3O(%v) = %v, want %v", tt.pH, got, tt.wantH3O)
			}
			if got := ConcentrationOH(tt.pH); !closeRel(got, tt.wantOH) {
				t.Errorf("ConcentrationOH(%v) = %v, want %v", tt.pH, got, tt.wantOH)
			}
		})
	}
}

func TestConcentrationRoundTrip(t *testing.T) {
	for _, pH := range []float64{0, 2.5, 7, 11.3, 14} {
		if got := PHFromConcentrationH3O(ConcentrationH3O(pH)); math.Abs(got-pH) > 1e-9 {
			t.Errorf("H3O round trip at pH %v: got %v", pH, got)
		}
		if got := PHFromConcentrationOH(ConcentrationOH(pH)); math.Abs(got-pH) > 1e-9 {
			t.Errorf("OH round trip at pH %v: got %v", pH, got)
		}
	}
}

func TestMolesConversions(t *testing.T) {
	if got := MolesFromConcentration(0.5, 2); got != 1.0 {
		t.Errorf("MolesFromConcentration = %v, want 1.0", got)
	}
	if got := ConcentrationFromMoles(1.0, 2); got != 0.5 {
		t.Errorf("ConcentrationFromMoles = %v, want 0.5", got)
	}
	if got := ConcentrationFromMoles(1.0, 0); got != 0 {
		t.Errorf("ConcentrationFromMoles with zero volume = %v, want 0", got)
	}
}

func TestComputePHEmpty(t *testing.T) {
	if _, ok := ComputePH(2, 0, 0); ok {
		t.Error("ComputePH with zero total volume should report no value")
	}
}

func TestComputePHLimits(t *testing.T) {
	// Undiluted stock keeps its pH.
	for _, pH0 := range []float64{1, 4, 7, 10, 13} {
		got, ok := ComputePH(pH0, 0.5, 0)
		if !ok {
			t.Fatalf("ComputePH(%v, 0.5, 0) undefined", pH0)
		}
		if math.Abs(got-pH0) > 1e-9 {
			t.Errorf("undiluted pH0=%v: got %v", pH0, got)
		}
	}

	// Pure water is neutral.
	got, ok := ComputePH(2, 0, 0.5)
	if !ok || math.Abs(got-NeutralPH) > 1e-9 {
		t.Errorf("pure water: got %v (ok=%v), want 7", got, ok)
	}

	// Vanishing solute approaches neutral.
	got, _ = ComputePH(2, 1e-12, 0.5)
	if math.Abs(got-NeutralPH) > 1e-3 {
		t.Errorf("trace solute: got %v, want ~7", got)
	}

	// Vanishing water approaches the stock pH.
	got, _ = ComputePH(11, 0.5, 1e-12)
	if math.Abs(got-11) > 1e-3 {
		t.Errorf("trace water: got %v, want ~11", got)
	}
}

func TestComputePHDilution(t *testing.T) {
	// Acid diluted with water: pH strictly between stock and neutral,
	// closer to neutral for a water-dominated mixture.
	got, ok := ComputePH(2, 0.3, 0.5)
	if !ok {
		t.Fatal("ComputePH undefined")
	}
	if got <= 2 || got >= 7 {
		t.Errorf("diluted acid pH = %v, want in (2, 7)", got)
	}

	// Base diluted with water moves toward neutral from above.
	got, _ = ComputePH(13, 0.1, 0.9)
	if got >= 13 || got <= 7 {
		t.Errorf("diluted base pH = %v, want in (7, 13)", got)
	}

	// More water means closer to neutral.
	weak, _ := ComputePH(2, 0.1, 1.0)
	strong, _ := ComputePH(2, 0.1, 0.1)
	if weak <= strong {
		t.Errorf("dilution should raise acid pH: %v vs %v", weak, strong)
	}
}

func TestComputePHInRange(t *testing.T) {
	// Any mixture of an in-range stock stays in [0, 14].
	for _, pH0 := range []float64{0, 3, 7, 12, 14} {
		for _, vs := range []float64{0, 0.01, 0.5, 1.2} {
			for _, vw := range []float64{0, 0.01, 0.5, 1.2} {
				got, ok := ComputePH(pH0, vs, vw)
				if !ok {
					continue
				}
				if got < MinPH-1e-9 || got > MaxPH+1e-9 {
					t.Errorf("ComputePH(%v, %v, %v) = %v out of range", pH0, vs, vw, got)
				}
			}
		}
	}
}

func TestClampPH(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0}, {0, 0}, {7.2, 7.2}, {14, 14}, {14.3, 14},
	}
	for _, tt := range tests {
		if got := ClampPH(tt.in); got != tt.want {
			t.Errorf("ClampPH(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundPH(t *testing.T) {
	if got := RoundPH(7.00499, 2); got != 7.00 {
		t.Errorf("RoundPH(7.00499, 2) = %v, want 7.00", got)
	}
	if got := RoundPH(7.005, 2); got != 7.01 {
		t.Errorf("RoundPH(7.005, 2) = %v, want 7.01", got)
	}
	if got := RoundPH(6.999, 0); got != 7 {
		t.Errorf("RoundPH(6.999, 0) = %v, want 7", got)
	}
}

// closeRel reports whether a and b agree to within a small relative error.
func closeRel(a, b float64) bool {
	if b == 0 {
		return math.Abs(a) < 1e-12
	}
	return math.Abs(a-b)/math.Abs(b) < 1e-9
}
