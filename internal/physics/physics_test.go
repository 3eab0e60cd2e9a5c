package physics

import (
	"math"
	"testing"
)

const (
	catPlane Category = 1 << iota
	catFloor
	catTrigger
)

func TestRectIntersectsAndTouches(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 10, Y: 0, W: 5, H: 5}

	if a.Intersects(b) {
		t.Fatalf("edge-adjacent rects reported as intersecting")
	}
	if !a.Touches(b, 0.01) {
		t.Fatalf("edge-adjacent rects not touching")
	}
	if a.Touches(Rect{X: 11, Y: 0, W: 1, H: 1}, 0.01) {
		t.Fatalf("separated rects reported as touching")
	}

	dx, dy := a.Overlap(Rect{X: 8, Y: 7, W: 5, H: 5})
	if dx != 2 || dy != 3 {
		t.Fatalf("Overlap = (%v, %v), want (2, 3)", dx, dy)
	}
}

func TestCategoryHas(t *testing.T) {
	mask := catPlane | catTrigger
	if !mask.Has(catTrigger) {
		t.Fatalf("mask %b should contain %b", mask, catTrigger)
	}
	if mask.Has(catFloor) {
		t.Fatalf("mask %b should not contain %b", mask, catFloor)
	}
	if CategoryNone.Has(catPlane) {
		t.Fatalf("CategoryNone should match nothing")
	}
}

func TestNilBodyDefaults(t *testing.T) {
	var b *Body
	if v := b.VelocityY(); v != 0 {
		t.Fatalf("nil body VelocityY = %v, want 0", v)
	}
	b.ApplyForce(Vector{Y: -10})
	b.SetPosition(1, 2)
	if b.InWorld() {
		t.Fatalf("nil body reported in world")
	}
}

func TestGravityAndForceIntegration(t *testing.T) {
	w := NewWorld(100, 100, Vector{Y: 10})
	b := NewBody(catPlane, 50, 50, 2, 2)
	b.Dynamic = true
	b.AffectedByGravity = true
	w.Add(b)

	w.Step(0.5)
	if math.Abs(b.Velocity.Y-5) > 1e-9 {
		t.Fatalf("velocity after gravity step = %v, want 5", b.Velocity.Y)
	}
	if math.Abs(b.Position.Y-52.5) > 1e-9 {
		t.Fatalf("position after gravity step = %v, want 52.5", b.Position.Y)
	}

	b.AffectedByGravity = false
	b.ApplyForce(Vector{Y: -20})
	w.Step(0.5)
	if math.Abs(b.Velocity.Y-(-5)) > 1e-9 {
		t.Fatalf("velocity after lift step = %v, want -5", b.Velocity.Y)
	}

	// The accumulated force is consumed by a step.
	w.Step(0.5)
	if math.Abs(b.Velocity.Y-(-5)) > 1e-9 {
		t.Fatalf("velocity without force = %v, want -5", b.Velocity.Y)
	}
}

func TestStaticBodyIgnoresForces(t *testing.T) {
	w := NewWorld(100, 100, Vector{Y: 10})
	b := NewBody(catFloor, 10, 10, 2, 2)
	b.AffectedByGravity = true
	w.Add(b)
	b.ApplyForce(Vector{X: 100})
	w.Step(1)
	if b.Position != (Vector{X: 10, Y: 10}) {
		t.Fatalf("static body moved to %+v", b.Position)
	}
}

func TestContactBeginFiresOnce(t *testing.T) {
	w := NewWorld(100, 100, Vector{})
	plane := NewBody(catPlane, 50, 50, 4, 4)
	plane.Dynamic = true
	plane.ContactMask = catTrigger
	trigger := NewBody(catTrigger, 60, 50, 1, 100)
	w.Add(plane)
	w.Add(trigger)

	var events int
	w.OnContact(func(a, b *Body) {
		events++
		if a != plane && b != plane {
			t.Fatalf("contact without the plane: %v %v", a, b)
		}
	})

	w.Step(0.1)
	if events != 0 {
		t.Fatalf("events before overlap = %d, want 0", events)
	}

	for i := 0; i < 5; i++ {
		trigger.Translate(-2, 0)
		w.Step(0.1)
	}
	if events != 1 {
		t.Fatalf("events while crossing = %d, want 1", events)
	}

	for i := 0; i < 10; i++ {
		trigger.Translate(-2, 0)
		w.Step(0.1)
	}
	if events != 1 {
		t.Fatalf("events after leaving = %d, want 1", events)
	}
}

func TestContactRequiresMask(t *testing.T) {
	w := NewWorld(100, 100, Vector{})
	a := NewBody(catPlane, 50, 50, 4, 4)
	b := NewBody(catFloor, 50, 50, 4, 4)
	w.Add(a)
	w.Add(b)

	fired := false
	w.OnContact(func(_, _ *Body) { fired = true })
	w.Step(0.1)
	if fired {
		t.Fatalf("contact fired without any contact mask")
	}

	b.ContactMask = catPlane
	w.Step(0.1)
	if !fired {
		t.Fatalf("contact did not fire once one side asks for it")
	}
}

func TestSeparationStopsFall(t *testing.T) {
	w := NewWorld(100, 100, Vector{Y: 50})
	plane := NewBody(catPlane, 50, 90, 4, 4)
	plane.Dynamic = true
	plane.AffectedByGravity = true
	plane.CollisionMask = catFloor
	floor := NewBody(catFloor, 50, 100.5, 100, 1)
	w.Add(plane)
	w.Add(floor)

	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60)
	}
	if bottom := plane.Bounds().Bottom(); bottom > 100+1e-6 {
		t.Fatalf("plane sank into floor: bottom = %v", bottom)
	}
	if plane.Velocity.Y > 50.0/60+1e-6 {
		t.Fatalf("plane still falling fast: vy = %v", plane.Velocity.Y)
	}
}

func TestRemoveDropsBodyAndContacts(t *testing.T) {
	w := NewWorld(100, 100, Vector{})
	a := NewBody(catPlane, 50, 50, 4, 4)
	a.ContactMask = catTrigger
	b := NewBody(catTrigger, 50, 50, 4, 4)
	w.Add(a)
	w.Add(b)

	var events int
	w.OnContact(func(_, _ *Body) {
		events++
		w.Remove(b)
	})
	w.Step(0.1)
	if events != 1 {
		t.Fatalf("events = %d, want 1", events)
	}
	if b.InWorld() {
		t.Fatalf("removed body still in world")
	}
	if len(w.Bodies()) != 1 {
		t.Fatalf("bodies = %d, want 1", len(w.Bodies()))
	}

	w.Add(b)
	w.Step(0.1)
	if events != 2 {
		t.Fatalf("re-added body did not raise a fresh contact, events = %d", events)
	}
}
