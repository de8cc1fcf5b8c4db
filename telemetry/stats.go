package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated solution statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Solution state at window end
	Solute       string  `csv:"solute"`
	PH           float64 `csv:"ph"`
	PHDefined    bool    `csv:"ph_defined"`
	SoluteVolume float64 `csv:"solute_volume"`
	WaterVolume  float64 `csv:"water_volume"`
	TotalVolume  float64 `csv:"total_volume"`

	// Particle counts at window end
	H3OCount int `csv:"h3o"`
	OHCount  int `csv:"oh"`

	// pH distribution over the window (defined samples only)
	PHSamples int     `csv:"ph_samples"`
	PHMean    float64 `csv:"ph_mean"`
	PHStd     float64 `csv:"ph_std"`
	PHMin     float64 `csv:"ph_min"`
	PHMedian  float64 `csv:"ph_median"`
	PHMax     float64 `csv:"ph_max"`

	// Litres moved during window
	SoluteAdded float64 `csv:"solute_added"`
	WaterAdded  float64 `csv:"water_added"`
	Drained     float64 `csv:"drained"`

	// Events during window
	SoluteChanges int `csv:"solute_changes"`
	Autofills     int `csv:"autofills"`
	BeakerFull    int `csv:"beaker_full"`
	BeakerEmpty   int `csv:"beaker_empty"`
}

// ComputePHStats calculates mean, sample std, min, median, and max from
// pH samples. Returns all zeros for an empty slice.
func ComputePHStats(values []float64) (mean, std, min, median, max float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	min = sorted[0]
	max = sorted[n-1]
	median = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return mean, std, min, median, max
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("solute", s.Solute),
		slog.Float64("ph", s.PH),
		slog.Bool("ph_defined", s.PHDefined),
		slog.Float64("solute_volume", s.SoluteVolume),
		slog.Float64("water_volume", s.WaterVolume),
		slog.Float64("total_volume", s.TotalVolume),
		slog.Int("h3o", s.H3OCount),
		slog.Int("oh", s.OHCount),
		slog.Int("ph_samples", s.PHSamples),
		slog.Float64("ph_mean", s.PHMean),
		slog.Float64("ph_std", s.PHStd),
		slog.Float64("ph_min", s.PHMin),
		slog.Float64("ph_median", s.PHMedian),
		slog.Float64("ph_max", s.PHMax),
		slog.Float64("solute_added", s.SoluteAdded),
		slog.Float64("water_added", s.WaterAdded),
		slog.Float64("drained", s.Drained),
		slog.Int("solute_changes", s.SoluteChanges),
		slog.Int("autofills", s.Autofills),
		slog.Int("beaker_full", s.BeakerFull),
		slog.Int("beaker_empty", s.BeakerEmpty),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"solute", s.Solute,
		"ph", s.PH,
		"ph_defined", s.PHDefined,
		"total_volume", s.TotalVolume,
		"h3o", s.H3OCount,
		"oh", s.OHCount,
		"ph_mean", s.PHMean,
		"ph_std", s.PHStd,
		"ph_min", s.PHMin,
		"ph_median", s.PHMedian,
		"ph_max", s.PHMax,
		"solute_added", s.SoluteAdded,
		"water_added", s.WaterAdded,
		"drained", s.Drained,
		"solute_changes", s.SoluteChanges,
		"autofills", s.Autofills,
	)
}
