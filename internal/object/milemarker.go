package object

import "github.com/tomz197/donthitclouds/internal/physics"

// MileMarker is an invisible vertical trigger. Crossing it scores a mile.
type MileMarker struct {
	ID uint64

	body     *physics.Body
	mover    Mover
	consumed bool
}

// NewMileMarker creates a full-height marker centered at x, y.
func NewMileMarker(id uint64, x, y, height float64, track Track) *MileMarker {
	b := physics.NewBody(CategoryMileMarker, x, y, 1, height)
	b.CollisionMask = physics.CategoryNone
	b.ContactMask = CategoryAirplane

	m := &MileMarker{ID: id, body: b, mover: NewMover(track)}
	b.Owner = m
	return m
}

// Body returns the marker's physics body.
func (m *MileMarker) Body() *physics.Body {
	return m.body
}

// Consume marks the marker as scored. It is removed on the next update.
func (m *MileMarker) Consume() {
	m.consumed = true
}

// Consumed reports whether the marker has been scored.
func (m *MileMarker) Consumed() bool {
	return m.consumed
}

// Update moves the marker and removes it once scored or off the track.
func (m *MileMarker) Update(ctx UpdateContext) (bool, error) {
	if m.consumed {
		return true, nil
	}
	return m.mover.Step(m.body, ctx.Delta), nil
}

// Draw is a no-op; markers are invisible.
func (m *MileMarker) Draw(ctx DrawContext) error {
	return nil
}
