// Package config provides configuration loading and access for the
// pH lab simulation.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sim       SimConfig       `yaml:"sim"`
	Beaker    BeakerConfig    `yaml:"beaker"`
	Meter     MeterConfig     `yaml:"meter"`
	Flow      FlowConfig      `yaml:"flow"`
	Particles ParticlesConfig `yaml:"particles"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimConfig holds simulation stepping parameters.
type SimConfig struct {
	DT float64 `yaml:"dt"` // seconds per tick
}

// BeakerConfig holds the beaker geometry and initial contents.
type BeakerConfig struct {
	MaxVolume           float64 `yaml:"max_volume"`            // liters
	InitialSoluteVolume float64 `yaml:"initial_solute_volume"` // liters
	InitialWaterVolume  float64 `yaml:"initial_water_volume"`  // liters
	VolumeDecimals      int     `yaml:"volume_decimals"`       // display precision; sets the resolvable-volume epsilon
}

// MeterConfig holds pH meter display parameters.
type MeterConfig struct {
	PHDecimals int `yaml:"ph_decimals"` // display precision for pH
}

// FlowConfig holds faucet/dropper flow parameters in liters per second.
type FlowConfig struct {
	DropperRate    float64 `yaml:"dropper_rate"`    // max user-drag solute flow
	FaucetRate     float64 `yaml:"faucet_rate"`     // max user-drag water flow
	DrainRate      float64 `yaml:"drain_rate"`      // max user-drag drain flow
	AutofillRate   float64 `yaml:"autofill_rate"`   // fast flow during autofill
	AutofillVolume float64 `yaml:"autofill_volume"` // target volume after a solute change
	AutofillOff    bool    `yaml:"autofill_off"`    // disable the autofill animation entirely
}

// ParticlesConfig holds particle visualization constants.
type ParticlesConfig struct {
	CountAtNeutral int     `yaml:"count_at_neutral"` // per-species count at pH 7
	MaxCount       int     `yaml:"max_count"`        // majority count at pH 0 / pH 14
	MinMinority    int     `yaml:"min_minority"`     // floor for the minority species
	BandMin        float64 `yaml:"band_min"`         // lower bound of the logarithmic band
	BandMax        float64 `yaml:"band_max"`         // upper bound of the logarithmic band
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`          // seconds per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"` // ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32          float32 // Sim.DT as float32
	ScreenW32     float32 // Screen.Width as float32
	ScreenH32     float32 // Screen.Height as float32
	VolumeEpsilon float64 // 10^-Beaker.VolumeDecimals
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()
	return cfg, nil
}

// validate rejects configurations the model constructors would refuse.
func (c *Config) validate() error {
	if c.Beaker.MaxVolume <= 0 {
		return fmt.Errorf("config: beaker.max_volume must be positive, got %v", c.Beaker.MaxVolume)
	}
	if c.Beaker.InitialSoluteVolume < 0 || c.Beaker.InitialWaterVolume < 0 {
		return fmt.Errorf("config: initial volumes must be nonnegative")
	}
	if total := c.Beaker.InitialSoluteVolume + c.Beaker.InitialWaterVolume; total > c.Beaker.MaxVolume {
		return fmt.Errorf("config: initial volume %v exceeds beaker.max_volume %v", total, c.Beaker.MaxVolume)
	}
	if c.Flow.AutofillVolume > c.Beaker.MaxVolume {
		return fmt.Errorf("config: flow.autofill_volume %v exceeds beaker.max_volume %v",
			c.Flow.AutofillVolume, c.Beaker.MaxVolume)
	}
	if c.Particles.BandMin >= c.Particles.BandMax {
		return fmt.Errorf("config: particles band [%v, %v] is empty",
			c.Particles.BandMin, c.Particles.BandMax)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Sim.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.VolumeEpsilon = math.Pow(10, -float64(c.Beaker.VolumeDecimals))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
