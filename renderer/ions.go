package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/phlab/particles"
)

// IonRenderer draws the hydronium/hydroxide particle field inside the
// liquid.
type IonRenderer struct {
	h3oColor  rl.Color
	ohColor   rl.Color
	h3oRadius float32
	ohRadius  float32
}

// NewIonRenderer creates an ion renderer with the default species colors.
func NewIonRenderer() *IonRenderer {
	return &IonRenderer{
		h3oColor:  rl.Color{R: 217, G: 72, B: 59, A: 255},
		ohColor:   rl.Color{R: 70, G: 103, B: 221, A: 255},
		h3oRadius: 3,
		ohRadius:  4,
	}
}

// Draw renders the field clipped to the liquid rectangle. The majority
// species is drawn first at reduced opacity so the minority stays
// visible on top of it.
func (r *IonRenderer) Draw(field *particles.Field, liquid rl.Rectangle) {
	counts := field.Counts()
	if counts.H3O == 0 && counts.OH == 0 {
		return
	}

	rl.BeginScissorMode(int32(liquid.X), int32(liquid.Y), int32(liquid.Width), int32(liquid.Height))

	if counts.H3OMajority() {
		r.drawH3O(field, counts.H3O, 120)
		r.drawOH(field, counts.OH, 255)
	} else {
		r.drawOH(field, counts.OH, 120)
		r.drawH3O(field, counts.H3O, 255)
	}

	rl.EndScissorMode()
}

func (r *IonRenderer) drawH3O(field *particles.Field, count int, alpha uint8) {
	c := r.h3oColor
	c.A = alpha
	for i := 0; i < count; i++ {
		p := field.H3O(i)
		rl.DrawCircle(int32(p.X), int32(p.Y), r.h3oRadius, c)
	}
}

func (r *IonRenderer) drawOH(field *particles.Field, count int, alpha uint8) {
	c := r.ohColor
	c.A = alpha
	for i := 0; i < count; i++ {
		p := field.OH(i)
		rl.DrawCircle(int32(p.X), int32(p.Y), r.ohRadius, c)
	}
}
