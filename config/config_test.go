package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Beaker.MaxVolume != 1.2 {
		t.Errorf("max_volume = %v, want 1.2", cfg.Beaker.MaxVolume)
	}
	if cfg.Particles.CountAtNeutral != 100 || cfg.Particles.MaxCount != 3000 {
		t.Errorf("particle counts = %d/%d, want 100/3000",
			cfg.Particles.CountAtNeutral, cfg.Particles.MaxCount)
	}
	if cfg.Flow.AutofillOff {
		t.Error("autofill should be enabled by default")
	}
	if math.Abs(cfg.Derived.VolumeEpsilon-0.01) > 1e-12 {
		t.Errorf("derived epsilon = %v, want 0.01", cfg.Derived.VolumeEpsilon)
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := []byte("beaker:\n  max_volume: 2.0\nflow:\n  autofill_off: true\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Beaker.MaxVolume != 2.0 {
		t.Errorf("max_volume = %v, want override 2.0", cfg.Beaker.MaxVolume)
	}
	if !cfg.Flow.AutofillOff {
		t.Error("autofill_off override not applied")
	}
	// Untouched defaults survive the merge.
	if cfg.Particles.MaxCount != 3000 {
		t.Errorf("max_count = %v, want default 3000", cfg.Particles.MaxCount)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative max volume", "beaker:\n  max_volume: -1\n"},
		{"initial exceeds max", "beaker:\n  initial_water_volume: 2.0\n"},
		{"autofill exceeds max", "flow:\n  autofill_volume: 5.0\n"},
		{"empty particle band", "particles:\n  band_min: 9.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
