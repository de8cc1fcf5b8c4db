package particles

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/phlab/components"
)

// Bounds is the rectangular region particles are placed in, in screen
// coordinates (the interior of the liquid).
type Bounds struct {
	X, Y          int32
	Width, Height int32
}

// Field caches particle positions between redraws. Positions live in an
// ECS world, one entity per particle; per-species slot slices fix the
// draw order. Only the entities beyond the previous count are freshly
// randomized on growth, and a shrink only lowers the live count without
// despawning, so existing particles keep their positions across
// unrelated redraws and across a later regrow.
type Field struct {
	world  *ecs.World
	rng    *rand.Rand
	mapper *ecs.Map2[components.Position, components.Ion]
	posMap *ecs.Map1[components.Position]

	h3oSlots []ecs.Entity
	ohSlots  []ecs.Entity
	counts   Counts
	bounds   Bounds
}

// NewField creates an empty field. The generator is injected so particle
// placement is reproducible under test.
func NewField(rng *rand.Rand) *Field {
	world := ecs.NewWorld()
	return &Field{
		world:  world,
		rng:    rng,
		mapper: ecs.NewMap2[components.Position, components.Ion](world),
		posMap: ecs.NewMap1[components.Position](world),
	}
}

// Update brings the field to the given counts. It is a no-op when both
// counts match the previous call, so unrelated redraws never move
// particles.
func (f *Field) Update(c Counts, bounds Bounds) {
	if c == f.counts {
		return
	}
	f.bounds = bounds
	f.h3oSlots = f.grow(f.h3oSlots, c.H3O, components.SpeciesH3O)
	f.ohSlots = f.grow(f.ohSlots, c.OH, components.SpeciesOH)
	f.counts = c
}

// grow spawns entities until the slot slice can serve count particles.
// Existing slots are never touched.
func (f *Field) grow(slots []ecs.Entity, count int, species components.Species) []ecs.Entity {
	for len(slots) < count {
		pos := components.Position{
			X: float32(f.bounds.X + f.randCoord(f.bounds.Width)),
			Y: float32(f.bounds.Y + f.randCoord(f.bounds.Height)),
		}
		ion := components.Ion{Species: species, Slot: int32(len(slots))}
		slots = append(slots, f.mapper.NewEntity(&pos, &ion))
	}
	return slots
}

func (f *Field) randCoord(extent int32) int32 {
	if extent <= 0 {
		return 0
	}
	return f.rng.Int31n(extent)
}

// Counts returns the live particle counts.
func (f *Field) Counts() Counts { return f.counts }

// H3O returns the position of hydronium particle i (i < Counts().H3O).
func (f *Field) H3O(i int) components.Position {
	return *f.posMap.Get(f.h3oSlots[i])
}

// OH returns the position of hydroxide particle i (i < Counts().OH).
func (f *Field) OH(i int) components.Position {
	return *f.posMap.Get(f.ohSlots[i])
}
