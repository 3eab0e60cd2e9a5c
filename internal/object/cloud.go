package object

import (
	"github.com/tomz197/donthitclouds/internal/draw"
	"github.com/tomz197/donthitclouds/internal/physics"
)

const (
	// cloudAspect is the cloud's height relative to its width.
	cloudAspect = 0.45
	// cloudBodyInset shrinks the body inside the drawn puffs so grazing an
	// edge is forgiven.
	cloudBodyInset = 0.9
)

// Cloud is a static obstacle that drifts left across the track.
type Cloud struct {
	body  *physics.Body
	mover Mover

	Width  float64
	Height float64
}

// NewCloud creates a cloud of the given width centered at x, y.
func NewCloud(x, y, width float64, track Track) *Cloud {
	height := width * cloudAspect
	b := physics.NewBody(CategoryCloud, x, y, width*cloudBodyInset, height*cloudBodyInset)
	b.CollisionMask = CategoryAirplane
	b.ContactMask = CategoryAirplane

	c := &Cloud{body: b, mover: NewMover(track), Width: width, Height: height}
	b.Owner = c
	return c
}

// Body returns the cloud's physics body.
func (c *Cloud) Body() *physics.Body {
	return c.body
}

// Update moves the cloud along its track and removes it at the end.
func (c *Cloud) Update(ctx UpdateContext) (bool, error) {
	return c.mover.Step(c.body, ctx.Delta), nil
}

// Draw renders the cloud as a flat base with two puffs on top.
func (c *Cloud) Draw(ctx DrawContext) error {
	p := c.body.Position
	w, h := c.Width, c.Height

	ctx.Canvas.SetInk(draw.InkCloud)
	ctx.Canvas.FillEllipse(p.X, p.Y+h*0.15, w/2, h*0.35)
	ctx.Canvas.FillEllipse(p.X-w*0.15, p.Y-h*0.05, w*0.22, h*0.4)
	ctx.Canvas.FillEllipse(p.X+w*0.12, p.Y-h*0.15, w*0.2, h*0.35)
	return nil
}
