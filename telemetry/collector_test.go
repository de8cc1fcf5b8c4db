package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindowTicks(t *testing.T) {
	c := NewCollector(5.0, 0.025)
	if got := c.WindowDurationTicks(); got != 200 {
		t.Errorf("window ticks = %d, want 200", got)
	}

	// Degenerate window still flushes every tick.
	c = NewCollector(0.001, 0.025)
	if got := c.WindowDurationTicks(); got != 1 {
		t.Errorf("window ticks = %d, want 1", got)
	}
}

func TestCollectorShouldFlush(t *testing.T) {
	c := NewCollector(1.0, 0.5) // 2 ticks per window

	if c.ShouldFlush(1) {
		t.Error("should not flush after 1 tick")
	}
	if !c.ShouldFlush(2) {
		t.Error("should flush after 2 ticks")
	}

	c.Flush(2, EndSample{})
	if c.ShouldFlush(3) {
		t.Error("flush should start a new window")
	}
	if !c.ShouldFlush(4) {
		t.Error("second window should flush at tick 4")
	}
}

func TestCollectorFlushAggregates(t *testing.T) {
	c := NewCollector(1.0, 0.25)

	c.SamplePH(4.0, true)
	c.SamplePH(5.0, true)
	c.SamplePH(6.0, true)
	c.SamplePH(0, false) // undefined, ignored
	c.RecordSoluteAdded(0.1)
	c.RecordWaterAdded(0.2)
	c.RecordDrained(0.05)
	c.RecordEvent(NewSoluteChangeEvent(3, "Orange Juice"))
	c.RecordEvent(NewAutofillDoneEvent(4, "Orange Juice", 4.5, 0.5))

	end := EndSample{
		Solute:       "Orange Juice",
		PH:           4.5,
		PHDefined:    true,
		SoluteVolume: 0.3,
		WaterVolume:  0.2,
		TotalVolume:  0.5,
		H3OCount:     340,
		OHCount:      5,
	}
	stats := c.Flush(4, end)

	if stats.PHSamples != 3 {
		t.Errorf("ph samples = %d, want 3", stats.PHSamples)
	}
	if math.Abs(stats.PHMean-5.0) > 1e-9 {
		t.Errorf("ph mean = %v, want 5.0", stats.PHMean)
	}
	if stats.PHMin != 4.0 || stats.PHMax != 6.0 {
		t.Errorf("ph min/max = %v/%v, want 4/6", stats.PHMin, stats.PHMax)
	}
	if stats.SimTimeSec != 1.0 {
		t.Errorf("sim time = %v, want 1.0", stats.SimTimeSec)
	}
	if stats.Solute != "Orange Juice" || stats.TotalVolume != 0.5 {
		t.Errorf("end sample not carried through: %+v", stats)
	}
	if stats.H3OCount != 340 || stats.OHCount != 5 {
		t.Errorf("counts = %d/%d, want 340/5", stats.H3OCount, stats.OHCount)
	}
	if stats.SoluteAdded != 0.1 || stats.WaterAdded != 0.2 || stats.Drained != 0.05 {
		t.Errorf("litre counters = %v/%v/%v", stats.SoluteAdded, stats.WaterAdded, stats.Drained)
	}
	if stats.SoluteChanges != 1 || stats.Autofills != 1 {
		t.Errorf("event counters = %d/%d, want 1/1", stats.SoluteChanges, stats.Autofills)
	}
}

func TestCollectorFlushResets(t *testing.T) {
	c := NewCollector(1.0, 0.25)

	c.SamplePH(4.0, true)
	c.RecordSoluteAdded(0.1)
	c.RecordEvent(NewBeakerEmptyEvent(2, "Water"))
	c.Flush(4, EndSample{})

	stats := c.Flush(8, EndSample{})
	if stats.PHSamples != 0 || stats.SoluteAdded != 0 || stats.BeakerEmpty != 0 {
		t.Errorf("counters survived flush: %+v", stats)
	}
	if stats.WindowStartTick != 4 {
		t.Errorf("window start = %d, want 4", stats.WindowStartTick)
	}
}

func TestEventTypeNames(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventSoluteChange, "solute_change"},
		{EventAutofillStart, "autofill_start"},
		{EventAutofillDone, "autofill_done"},
		{EventBeakerFull, "beaker_full"},
		{EventBeakerEmpty, "beaker_empty"},
		{EventType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("EventType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
