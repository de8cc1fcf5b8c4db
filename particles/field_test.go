package particles

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/phlab/components"
)

func testBounds() Bounds {
	return Bounds{X: 100, Y: 50, Width: 400, Height: 300}
}

func snapshotH3O(f *Field) []components.Position {
	out := make([]components.Position, f.Counts().H3O)
	for i := range out {
		out[i] = f.H3O(i)
	}
	return out
}

func snapshotOH(f *Field) []components.Position {
	out := make([]components.Position, f.Counts().OH)
	for i := range out {
		out[i] = f.OH(i)
	}
	return out
}

func TestFieldUnchangedCountsIsNoOp(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(1)))
	f.Update(Counts{H3O: 50, OH: 50}, testBounds())
	before := snapshotH3O(f)

	f.Update(Counts{H3O: 50, OH: 50}, testBounds())
	after := snapshotH3O(f)

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("position %d moved on unchanged counts: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestFieldGrowthPreservesExisting(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(1)))
	f.Update(Counts{H3O: 50, OH: 50}, testBounds())
	h3oBefore := snapshotH3O(f)
	ohBefore := snapshotOH(f)

	f.Update(Counts{H3O: 50, OH: 60}, testBounds())

	if got := f.Counts(); got.OH != 60 || got.H3O != 50 {
		t.Fatalf("counts = %+v, want 50/60", got)
	}
	// Species A untouched, first 50 of species B untouched.
	for i, p := range h3oBefore {
		if f.H3O(i) != p {
			t.Errorf("H3O %d moved during OH growth", i)
		}
	}
	for i, p := range ohBefore {
		if f.OH(i) != p {
			t.Errorf("OH %d moved during growth", i)
		}
	}
}

func TestFieldShrinkKeepsPositions(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(2)))
	f.Update(Counts{H3O: 80, OH: 30}, testBounds())
	before := snapshotH3O(f)

	f.Update(Counts{H3O: 40, OH: 30}, testBounds())
	if f.Counts().H3O != 40 {
		t.Fatalf("count = %d, want 40", f.Counts().H3O)
	}

	// Regrow: the first 80 slots come back with their original positions.
	f.Update(Counts{H3O: 80, OH: 30}, testBounds())
	for i, p := range before {
		if f.H3O(i) != p {
			t.Errorf("H3O %d moved across shrink/regrow: %v -> %v", i, p, f.H3O(i))
		}
	}
}

func TestFieldPositionsInsideBounds(t *testing.T) {
	f := NewField(rand.New(rand.NewSource(3)))
	b := testBounds()
	f.Update(Counts{H3O: 200, OH: 200}, b)

	check := func(p components.Position) {
		if p.X < float32(b.X) || p.X >= float32(b.X+b.Width) ||
			p.Y < float32(b.Y) || p.Y >= float32(b.Y+b.Height) {
			t.Fatalf("position %v outside bounds %+v", p, b)
		}
	}
	for i := 0; i < 200; i++ {
		check(f.H3O(i))
		check(f.OH(i))
	}
}

func TestFieldSeededReproducible(t *testing.T) {
	a := NewField(rand.New(rand.NewSource(42)))
	b := NewField(rand.New(rand.NewSource(42)))
	a.Update(Counts{H3O: 25, OH: 25}, testBounds())
	b.Update(Counts{H3O: 25, OH: 25}, testBounds())

	for i := 0; i < 25; i++ {
		if a.H3O(i) != b.H3O(i) || a.OH(i) != b.OH(i) {
			t.Fatalf("same seed produced different placements at slot %d", i)
		}
	}
}
