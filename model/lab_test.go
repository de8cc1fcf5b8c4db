package model

import (
	"math"
	"testing"

	"github.com/pthm-cable/phlab/particles"
	"github.com/pthm-cable/phlab/solution"
)

func testCountModel() particles.CountModel {
	return particles.CountModel{
		CountAtNeutral: 100,
		MaxCount:       3000,
		MinMinority:    5,
		BandMin:        6,
		BandMax:        8,
		PHDecimals:     2,
	}
}

func newTestLab(t *testing.T) *Lab {
	t.Helper()
	sol, err := solution.New(solution.Water, solution.Config{
		MaxVolume:      1.2,
		VolumeDecimals: 2,
		PHDecimals:     2,
	})
	if err != nil {
		t.Fatalf("solution.New: %v", err)
	}
	return NewLab(sol, testFlowConfig(), testCountModel())
}

// stepUntilFlowing runs the autofill to completion.
func stepUntilFlowing(t *testing.T, l *Lab) {
	t.Helper()
	for n := 0; n < 100; n++ {
		if l.Flow.State() == Flowing {
			return
		}
		l.Step(0.25)
	}
	t.Fatal("autofill never finished")
}

func TestLabEmptyHasZeroCounts(t *testing.T) {
	l := newTestLab(t)
	if got := l.Counts().Get(); got != (particles.Counts{}) {
		t.Errorf("empty lab counts = %+v, want zero", got)
	}
	if l.DisplayPH().Get().Defined {
		t.Error("empty lab should have undefined displayed pH")
	}
}

func TestLabCountsFollowPH(t *testing.T) {
	l := newTestLab(t)
	l.Flow.SetFaucetFlow(1.0)
	l.Step(0.5)

	// Pure water: neutral, equal counts.
	got := l.Counts().Get()
	if got.H3O != got.OH || got.H3O != 100 {
		t.Errorf("neutral counts = %+v, want 100/100", got)
	}

	l.SetCustomPH(2)
	stepUntilFlowing(t, l)
	got = l.Counts().Get()
	if got.H3O <= got.OH {
		t.Errorf("acidic counts = %+v, want H3O majority", got)
	}
}

func TestLabCountsIgnoreSubResolutionPH(t *testing.T) {
	l := newTestLab(t)
	l.SetCustomPH(4)
	stepUntilFlowing(t, l)

	var notifications int
	l.Counts().Subscribe(func(particles.Counts) { notifications++ })

	// Adding a drop of water changes the raw pH imperceptibly; the
	// displayed pH (2 decimals) and therefore the counts must not move.
	before := l.DisplayPH().Get()
	l.Solution.AddWater(1e-9)
	if l.DisplayPH().Get() != before {
		t.Fatalf("displayed pH moved: %+v -> %+v", before, l.DisplayPH().Get())
	}
	if notifications != 0 {
		t.Errorf("counts recomputed %d times on sub-resolution pH change", notifications)
	}
}

func TestLabCustomPHIsASoluteChange(t *testing.T) {
	l := newTestLab(t)
	l.Flow.SetFaucetFlow(1.0)
	l.Step(0.5)

	// The old mixture is discarded and the beaker autofills with the
	// custom stock, same as selecting a catalog chemical.
	l.SetCustomPH(11)
	if l.Flow.State() != Autofilling {
		t.Fatal("custom pH should trigger autofill")
	}
	if l.Solution.WaterVolume() != 0 {
		t.Errorf("water = %v, want mixture discarded", l.Solution.WaterVolume())
	}
	if l.Solution.Solute().Name != solution.CustomName {
		t.Errorf("solute = %q, want custom", l.Solution.Solute().Name)
	}

	stepUntilFlowing(t, l)
	got := l.DisplayPH().Get()
	if !got.Defined || math.Abs(got.Value-11) > 1e-9 {
		t.Errorf("displayed pH = %+v, want 11", got)
	}
}

func TestLabCustomPHClamped(t *testing.T) {
	l := newTestLab(t)
	l.SetCustomPH(-3)
	stepUntilFlowing(t, l)

	got := l.DisplayPH().Get()
	if !got.Defined || got.Value != 0 {
		t.Errorf("displayed pH = %+v, want clamped to 0", got)
	}
}

func TestLabResetClearsCounts(t *testing.T) {
	l := newTestLab(t)
	l.SetCustomPH(3)
	stepUntilFlowing(t, l)
	if l.Counts().Get() == (particles.Counts{}) {
		t.Fatal("setup: expected nonzero counts after autofill")
	}

	l.Reset()
	if got := l.Counts().Get(); got != (particles.Counts{}) {
		t.Errorf("counts after reset = %+v, want zero", got)
	}
	if l.DisplayPH().Get().Defined {
		t.Error("displayed pH should be undefined after reset")
	}
}

func TestLabFirstWaterDefinesCounts(t *testing.T) {
	l := newTestLab(t)
	var sawDefined bool
	l.DisplayPH().Subscribe(func(p solution.PH) {
		sawDefined = sawDefined || p.Defined
	})
	l.Solution.AddWater(0.3)
	if !sawDefined {
		t.Error("displayed pH never became defined")
	}
	if got := l.Counts().Get(); got.H3O == 0 || got.OH == 0 {
		t.Errorf("counts = %+v, want nonzero after water added", got)
	}
}
