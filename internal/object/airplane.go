package object

import (
	"math"

	"github.com/tomz197/donthitclouds/internal/draw"
	"github.com/tomz197/donthitclouds/internal/physics"
)

// Outline of the airplane in units of its width and height, nose to the
// right, y down.
var (
	fuselage = [...]draw.Point{
		{X: -0.5, Y: -0.5}, {X: -0.36, Y: -0.5}, {X: -0.2, Y: -0.08},
		{X: 0.36, Y: -0.08}, {X: 0.5, Y: 0.12}, {X: 0.38, Y: 0.32}, {X: -0.46, Y: 0.32},
	}
	wing = [...]draw.Point{
		{X: -0.08, Y: 0.1}, {X: 0.12, Y: 0.1}, {X: -0.02, Y: 0.5}, {X: -0.2, Y: 0.5},
	}
)

// Airplane is the player's plane. Its body is dynamic; the game steers it
// by force and keeps it on a fixed vertical lane.
type Airplane struct {
	body *physics.Body

	LaneX           float64 // Fixed horizontal position
	InitialRotation float64 // Rotation at rest, radians
	Rotation        float64 // Current rotation, radians, positive is nose up
	Damping         float64 // Radians per unit of vertical velocity
}

// NewAirplane creates the plane centered at x, y with gravity disabled.
func NewAirplane(x, y, width, height, damping float64) *Airplane {
	b := physics.NewBody(CategoryAirplane, x, y, width, height)
	b.Dynamic = true
	b.AffectedByGravity = false
	b.CollisionMask = CategoryGround | CategoryCeiling | CategoryCloud
	b.ContactMask = CategoryGround | CategoryCeiling | CategoryMileMarker | CategoryCloud

	a := &Airplane{body: b, LaneX: x, Damping: damping}
	b.Owner = a
	return a
}

// Body returns the plane's physics body.
func (a *Airplane) Body() *physics.Body {
	return a.body
}

// Height returns the plane's height in logical units.
func (a *Airplane) Height() float64 {
	return a.body.Size.Y
}

// Orient tilts the nose with the vertical velocity: climbing (negative y
// velocity) lifts the nose, falling drops it.
func (a *Airplane) Orient() {
	a.Rotation = a.InitialRotation - a.body.VelocityY()*a.Damping
}

// PinToLane puts the plane back on its lane and cancels horizontal motion.
func (a *Airplane) PinToLane() {
	a.body.SetPosition(a.LaneX, a.body.Position.Y)
	a.body.Velocity.X = 0
}

// ApplyLift pushes the plane up with a force proportional to its height.
func (a *Airplane) ApplyLift(perHeight float64) {
	a.body.ApplyForce(physics.Vector{Y: -perHeight * a.Height()})
}

// Update is a no-op; the game steers the plane and the world moves it.
func (a *Airplane) Update(ctx UpdateContext) (bool, error) {
	return false, nil
}

// Draw renders the plane as a filled silhouette rotated by Rotation.
func (a *Airplane) Draw(ctx DrawContext) error {
	ctx.Canvas.SetInk(draw.InkAirplane)
	ctx.Canvas.DrawPolygon(a.outline(ctx.Canvas, fuselage[:]), true)
	ctx.Canvas.DrawPolygon(a.outline(ctx.Canvas, wing[:]), true)
	return nil
}

func (a *Airplane) outline(canvas *draw.Canvas, unit []draw.Point) []draw.Point {
	sin, cos := math.Sincos(a.Rotation)
	c := a.body.Position
	w, h := a.body.Size.X, a.body.Size.Y
	pts := canvas.BorrowPoints(len(unit))
	for i, p := range unit {
		lx, ly := p.X*w, p.Y*h
		pts[i] = draw.Point{
			X: c.X + lx*cos + ly*sin,
			Y: c.Y - lx*sin + ly*cos,
		}
	}
	return pts
}
