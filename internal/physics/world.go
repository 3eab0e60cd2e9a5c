package physics

import (
	"math"

	"github.com/solarlune/resolv"
)

// contactEpsilon keeps a pair "in contact" while resting exactly on an edge,
// so a body held against the ground does not raise a new event every step.
const contactEpsilon = 0.05

// broadPhaseCell is the resolv cell size in logical units.
const broadPhaseCell = 4

// ContactFunc is called once for every pair that starts touching.
type ContactFunc func(a, b *Body)

type pairKey struct {
	lo, hi uint64
}

func keyOf(a, b *Body) pairKey {
	if a.id < b.id {
		return pairKey{a.id, b.id}
	}
	return pairKey{b.id, a.id}
}

// World simulates a set of bodies. Broad phase uses a resolv space covering
// the view plus a margin on every side; bodies outside it never touch.
type World struct {
	Gravity Vector

	bodies    []*Body
	space     *resolv.Space
	margin    float64
	nextID    uint64
	contacts  map[pairKey]struct{}
	onContact ContactFunc
	begun     [][2]*Body
}

// NewWorld creates a world for a view of width x height logical units.
func NewWorld(width, height float64, gravity Vector) *World {
	margin := math.Max(width, height) / 2
	spaceW := int(math.Ceil(width + 2*margin))
	spaceH := int(math.Ceil(height + 2*margin))
	return &World{
		Gravity:  gravity,
		space:    resolv.NewSpace(spaceW, spaceH, broadPhaseCell, broadPhaseCell),
		margin:   margin,
		contacts: make(map[pairKey]struct{}),
	}
}

// OnContact registers the contact-begin handler.
func (w *World) OnContact(fn ContactFunc) {
	w.onContact = fn
}

// Add inserts a body. Adding a body twice is a no-op.
func (w *World) Add(b *Body) {
	if b == nil || b.world == w {
		return
	}
	w.nextID++
	b.id = w.nextID
	b.world = w
	r := b.Bounds()
	b.obj = resolv.NewObject(r.X+w.margin, r.Y+w.margin, r.W, r.H)
	b.obj.Data = b
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
}

// Remove takes a body out of the world and forgets its contacts.
func (w *World) Remove(b *Body) {
	if b == nil || b.world != w {
		return
	}
	w.space.Remove(b.obj)
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	for k := range w.contacts {
		if k.lo == b.id || k.hi == b.id {
			delete(w.contacts, k)
		}
	}
	b.world = nil
	b.obj = nil
}

// Bodies returns the bodies currently in the world.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step advances the simulation by dt seconds: integrate dynamic bodies,
// find pairs that start touching, separate dynamic bodies from whatever
// blocks them, then report the new contacts.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		w.integrate(b, dt)
	}
	w.detectContacts()
	for _, b := range w.bodies {
		if b.Dynamic {
			w.separate(b)
		}
	}

	begun := w.begun
	w.begun = w.begun[:0]
	if w.onContact == nil {
		return
	}
	for _, pair := range begun {
		// A handler may have removed either body already.
		if pair[0].world != w || pair[1].world != w {
			continue
		}
		w.onContact(pair[0], pair[1])
	}
}

func (w *World) integrate(b *Body, dt float64) {
	if !b.Dynamic {
		b.force = Vector{}
		return
	}
	mass := b.Mass
	if mass <= 0 {
		mass = 1
	}
	acc := b.force.Scale(1 / mass)
	if b.AffectedByGravity {
		acc = acc.Add(w.Gravity)
	}
	b.force = Vector{}
	b.Velocity = b.Velocity.Add(acc.Scale(dt))
	b.Translate(b.Velocity.X*dt, b.Velocity.Y*dt)
}

// neighbours calls fn for every other body sharing a broad-phase cell with b.
func (w *World) neighbours(b *Body, fn func(other *Body)) {
	if b.obj == nil {
		return
	}
	col := b.obj.Check(0, 0)
	if col == nil {
		return
	}
	for _, o := range col.Objects {
		other, ok := o.Data.(*Body)
		if !ok || other == b || other.world != w {
			continue
		}
		fn(other)
	}
}

func wantsContact(a, b *Body) bool {
	return a.ContactMask.Has(b.Category) || b.ContactMask.Has(a.Category)
}

func (w *World) detectContacts() {
	next := make(map[pairKey]struct{}, len(w.contacts))
	for _, a := range w.bodies {
		w.neighbours(a, func(b *Body) {
			if a.id > b.id || !wantsContact(a, b) {
				return
			}
			k := keyOf(a, b)
			if _, seen := next[k]; seen {
				return
			}
			ra, rb := a.Bounds(), b.Bounds()
			if _, was := w.contacts[k]; was && ra.Touches(rb, contactEpsilon) {
				next[k] = struct{}{}
				return
			}
			if ra.Intersects(rb) {
				next[k] = struct{}{}
				w.begun = append(w.begun, [2]*Body{a, b})
			}
		})
	}
	w.contacts = next
}

// separate pushes a dynamic body out of every body in its collision mask
// along the axis of least penetration and stops motion into the obstacle.
func (w *World) separate(b *Body) {
	w.neighbours(b, func(other *Body) {
		if !b.CollisionMask.Has(other.Category) {
			return
		}
		rb, ro := b.Bounds(), other.Bounds()
		if !rb.Intersects(ro) {
			return
		}
		dx, dy := rb.Overlap(ro)
		cb, co := rb.Center(), ro.Center()
		if dy <= dx {
			if cb.Y < co.Y {
				b.Translate(0, -dy)
				if b.Velocity.Y > 0 {
					b.Velocity.Y = 0
				}
			} else {
				b.Translate(0, dy)
				if b.Velocity.Y < 0 {
					b.Velocity.Y = 0
				}
			}
			return
		}
		if cb.X < co.X {
			b.Translate(-dx, 0)
			if b.Velocity.X > 0 {
				b.Velocity.X = 0
			}
		} else {
			b.Translate(dx, 0)
			if b.Velocity.X < 0 {
				b.Velocity.X = 0
			}
		}
	})
}
