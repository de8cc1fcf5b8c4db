// Package telemetry tracks solution history over time windows and writes
// run output as CSV.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventSoluteChange EventType = iota
	EventAutofillStart
	EventAutofillDone
	EventBeakerFull
	EventBeakerEmpty
)

// Event represents a single telemetry event.
type Event struct {
	Type   EventType
	Tick   int32
	Solute string

	// Optional fields depending on event type
	PH     float64 // displayed pH at event time, NaN when undefined
	Volume float64 // total volume at event time
}

// NewSoluteChangeEvent creates a solute change event.
func NewSoluteChangeEvent(tick int32, solute string) Event {
	return Event{
		Type:   EventSoluteChange,
		Tick:   tick,
		Solute: solute,
	}
}

// NewAutofillStartEvent creates an autofill start event.
func NewAutofillStartEvent(tick int32, solute string) Event {
	return Event{
		Type:   EventAutofillStart,
		Tick:   tick,
		Solute: solute,
	}
}

// NewAutofillDoneEvent creates an autofill completion event.
func NewAutofillDoneEvent(tick int32, solute string, pH, volume float64) Event {
	return Event{
		Type:   EventAutofillDone,
		Tick:   tick,
		Solute: solute,
		PH:     pH,
		Volume: volume,
	}
}

// NewBeakerFullEvent creates an event for the beaker reaching max volume.
func NewBeakerFullEvent(tick int32, solute string, pH, volume float64) Event {
	return Event{
		Type:   EventBeakerFull,
		Tick:   tick,
		Solute: solute,
		PH:     pH,
		Volume: volume,
	}
}

// NewBeakerEmptyEvent creates an event for the beaker draining to empty.
func NewBeakerEmptyEvent(tick int32, solute string) Event {
	return Event{
		Type:   EventBeakerEmpty,
		Tick:   tick,
		Solute: solute,
	}
}

// String returns the CSV/log name of the event type.
func (t EventType) String() string {
	switch t {
	case EventSoluteChange:
		return "solute_change"
	case EventAutofillStart:
		return "autofill_start"
	case EventAutofillDone:
		return "autofill_done"
	case EventBeakerFull:
		return "beaker_full"
	case EventBeakerEmpty:
		return "beaker_empty"
	}
	return "unknown"
}

// EventCSV is a flat struct for CSV export of events.
type EventCSV struct {
	Tick   int32   `csv:"tick"`
	Type   string  `csv:"event"`
	Solute string  `csv:"solute"`
	PH     float64 `csv:"ph"`
	Volume float64 `csv:"volume"`
}

// ToCSV converts an Event to its CSV row.
func (e Event) ToCSV() EventCSV {
	return EventCSV{
		Tick:   e.Tick,
		Type:   e.Type.String(),
		Solute: e.Solute,
		PH:     e.PH,
		Volume: e.Volume,
	}
}
