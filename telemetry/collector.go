package telemetry

// EndSample is the solution state at the moment a window is flushed.
type EndSample struct {
	Solute       string
	PH           float64
	PHDefined    bool
	SoluteVolume float64
	WaterVolume  float64
	TotalVolume  float64
	H3OCount     int
	OHCount      int
}

// Collector accumulates per-tick samples and events within time windows
// and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	// Current window tracking
	windowStartTick int32

	// Per-tick pH samples for the current window (defined pH only)
	phSamples []float64

	// Litre counters for current window
	soluteAdded float64
	waterAdded  float64
	drained     float64

	// Event counters for current window
	soluteChanges int
	autofills     int
	beakerFull    int
	beakerEmpty   int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		windowStartTick:     0,
	}
}

// SamplePH records the displayed pH for one tick. Undefined pH (empty
// beaker) ticks contribute no sample.
func (c *Collector) SamplePH(pH float64, defined bool) {
	if !defined {
		return
	}
	c.phSamples = append(c.phSamples, pH)
}

// RecordSoluteAdded records litres of solute dispensed this tick.
func (c *Collector) RecordSoluteAdded(litres float64) {
	c.soluteAdded += litres
}

// RecordWaterAdded records litres of water dispensed this tick.
func (c *Collector) RecordWaterAdded(litres float64) {
	c.waterAdded += litres
}

// RecordDrained records litres removed through the drain this tick.
func (c *Collector) RecordDrained(litres float64) {
	c.drained += litres
}

// RecordEvent counts an event in the current window.
func (c *Collector) RecordEvent(e Event) {
	switch e.Type {
	case EventSoluteChange:
		c.soluteChanges++
	case EventAutofillDone:
		c.autofills++
	case EventBeakerFull:
		c.beakerFull++
	case EventBeakerEmpty:
		c.beakerEmpty++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, end EndSample) WindowStats {
	mean, std, min, median, max := ComputePHStats(c.phSamples)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		Solute:       end.Solute,
		PH:           end.PH,
		PHDefined:    end.PHDefined,
		SoluteVolume: end.SoluteVolume,
		WaterVolume:  end.WaterVolume,
		TotalVolume:  end.TotalVolume,

		H3OCount: end.H3OCount,
		OHCount:  end.OHCount,

		PHSamples: len(c.phSamples),
		PHMean:    mean,
		PHStd:     std,
		PHMin:     min,
		PHMedian:  median,
		PHMax:     max,

		SoluteAdded: c.soluteAdded,
		WaterAdded:  c.waterAdded,
		Drained:     c.drained,

		SoluteChanges: c.soluteChanges,
		Autofills:     c.autofills,
		BeakerFull:    c.beakerFull,
		BeakerEmpty:   c.beakerEmpty,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.phSamples = c.phSamples[:0]
	c.soluteAdded = 0
	c.waterAdded = 0
	c.drained = 0
	c.soluteChanges = 0
	c.autofills = 0
	c.beakerFull = 0
	c.beakerEmpty = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
