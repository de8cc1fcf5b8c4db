// Package components defines ECS components for the particle field.
package components

// Species identifies an ion species in the particle field.
type Species uint8

const (
	SpeciesH3O Species = iota // hydronium
	SpeciesOH                 // hydroxide
)

// String returns the chemical notation for the species.
func (s Species) String() string {
	if s == SpeciesH3O {
		return "H3O+"
	}
	return "OH-"
}

// Position is a particle's screen position. Coordinates are generated as
// integers; float32 matches what the renderer consumes.
type Position struct {
	X, Y float32
}

// Ion tags a particle entity with its species and its slot index within
// that species' draw order.
type Ion struct {
	Species Species
	Slot    int32
}
