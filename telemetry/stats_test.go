package telemetry

import (
	"math"
	"testing"
)

func TestComputePHStats(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	mean, std, min, median, max := ComputePHStats(values)

	if math.Abs(mean-3.0) > 0.001 {
		t.Errorf("mean = %v, want 3.0", mean)
	}
	// Sample standard deviation: sqrt(10/4)
	if math.Abs(std-math.Sqrt(2.5)) > 0.001 {
		t.Errorf("std = %v, want %v", std, math.Sqrt(2.5))
	}
	if min != 1 || max != 5 {
		t.Errorf("min/max = %v/%v, want 1/5", min, max)
	}
	if math.Abs(median-3.0) > 0.001 {
		t.Errorf("median = %v, want 3.0", median)
	}
}

func TestComputePHStatsUnsortedInput(t *testing.T) {
	// Input order must not matter, and the caller's slice must not be
	// reordered.
	values := []float64{5, 1, 4, 2, 3}
	_, _, min, median, max := ComputePHStats(values)

	if min != 1 || max != 5 {
		t.Errorf("min/max = %v/%v, want 1/5", min, max)
	}
	if math.Abs(median-3.0) > 0.001 {
		t.Errorf("median = %v, want 3.0", median)
	}
	if values[0] != 5 || values[4] != 3 {
		t.Errorf("input slice reordered: %v", values)
	}
}

func TestComputePHStatsSingle(t *testing.T) {
	mean, std, min, median, max := ComputePHStats([]float64{7})

	if mean != 7 || min != 7 || median != 7 || max != 7 {
		t.Errorf("got mean/min/median/max = %v/%v/%v/%v, want all 7", mean, min, median, max)
	}
	if std != 0 {
		t.Errorf("std = %v, want 0 for a single sample", std)
	}
}

func TestComputePHStatsEmpty(t *testing.T) {
	mean, std, min, median, max := ComputePHStats([]float64{})

	if mean != 0 || std != 0 || min != 0 || median != 0 || max != 0 {
		t.Error("empty slice should return all zeros")
	}
}
