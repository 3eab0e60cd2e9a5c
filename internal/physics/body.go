package physics

import "github.com/solarlune/resolv"

// Body is a rectangular rigid body. Position is the body center.
//
// Static bodies (Dynamic false) ignore gravity and forces; they are moved
// only through SetPosition, the way scripted actors are moved by actions.
type Body struct {
	Category      Category
	CollisionMask Category // Categories that physically block this body
	ContactMask   Category // Categories that raise contact-begin events

	AffectedByGravity bool
	Dynamic           bool
	Mass              float64

	Position Vector
	Size     Vector
	Velocity Vector

	// Owner is an opaque back-reference for contact handlers.
	Owner any

	id    uint64
	force Vector
	obj   *resolv.Object
	world *World
}

// NewBody creates a static body of the given category centered at x, y.
func NewBody(category Category, x, y, w, h float64) *Body {
	return &Body{
		Category: category,
		Mass:     1,
		Position: Vector{X: x, Y: y},
		Size:     Vector{X: w, Y: h},
	}
}

// Bounds returns the body's bounding box.
func (b *Body) Bounds() Rect {
	if b == nil {
		return Rect{}
	}
	return Rect{
		X: b.Position.X - b.Size.X/2,
		Y: b.Position.Y - b.Size.Y/2,
		W: b.Size.X,
		H: b.Size.Y,
	}
}

// ApplyForce accumulates a force for the next step. No-op on nil or static bodies.
func (b *Body) ApplyForce(f Vector) {
	if b == nil || !b.Dynamic {
		return
	}
	b.force = b.force.Add(f)
}

// VelocityY returns the vertical velocity, or 0 for a nil body.
func (b *Body) VelocityY() float64 {
	if b == nil {
		return 0
	}
	return b.Velocity.Y
}

// SetPosition moves the body center and refreshes its broad-phase cell.
func (b *Body) SetPosition(x, y float64) {
	if b == nil {
		return
	}
	b.Position = Vector{X: x, Y: y}
	b.sync()
}

// Translate moves the body by dx, dy.
func (b *Body) Translate(dx, dy float64) {
	if b == nil {
		return
	}
	b.SetPosition(b.Position.X+dx, b.Position.Y+dy)
}

// InWorld reports whether the body is currently part of a world.
func (b *Body) InWorld() bool {
	return b != nil && b.world != nil
}

func (b *Body) sync() {
	if b.obj == nil || b.world == nil {
		return
	}
	r := b.Bounds()
	b.obj.X = r.X + b.world.margin
	b.obj.Y = r.Y + b.world.margin
	b.obj.W = r.W
	b.obj.H = r.H
	b.obj.Update()
}
