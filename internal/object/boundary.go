package object

import (
	"github.com/tomz197/donthitclouds/internal/draw"
	"github.com/tomz197/donthitclouds/internal/physics"
)

// Boundary is a static wall: the ground below the view or the ceiling above it.
type Boundary struct {
	body  *physics.Body
	ink   draw.Ink
	strip float64 // Height of the band drawn along the inner edge
}

// NewGround creates the ground just below a view of width x height.
func NewGround(width, height float64) *Boundary {
	b := physics.NewBody(CategoryGround, width/2, height+0.5, width, 1)
	b.CollisionMask = CategoryAirplane
	b.ContactMask = CategoryAirplane
	return newBoundary(b, draw.InkGround, 1.5)
}

// NewCeiling creates the ceiling. It sits above the visible area, separated
// by a small gap, so the plane cannot hug the top edge.
func NewCeiling(width, height float64) *Boundary {
	gap := height * 50 / 926
	thickness := height * 100 / 926
	b := physics.NewBody(CategoryCeiling, width/2, -gap-thickness/2, width, thickness)
	b.CollisionMask = CategoryAirplane
	b.ContactMask = CategoryAirplane
	return newBoundary(b, draw.InkNone, 0)
}

func newBoundary(b *physics.Body, ink draw.Ink, strip float64) *Boundary {
	bd := &Boundary{body: b, ink: ink, strip: strip}
	b.Owner = bd
	return bd
}

// Body returns the boundary's physics body.
func (bd *Boundary) Body() *physics.Body {
	return bd.body
}

// Update is a no-op for static walls.
func (bd *Boundary) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}

// Draw paints a band along the wall's top edge, inside the view.
func (bd *Boundary) Draw(ctx DrawContext) error {
	if bd.ink == draw.InkNone || bd.strip <= 0 {
		return nil
	}
	r := bd.body.Bounds()
	ctx.Canvas.SetInk(bd.ink)
	ctx.Canvas.FillRect(r.X, r.Y-bd.strip, r.W, bd.strip)
	return nil
}
