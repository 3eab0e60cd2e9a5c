// Package physics provides a small rigid-body world: gravity, forces,
// category masks, contact-begin events and separation from solid bodies.
package physics

// Vector is a 2D quantity in logical units. Y grows downwards.
type Vector struct {
	X, Y float64
}

// Add returns v+o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v*s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned bounding box with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports a strictly positive overlap on both axes.
func (r Rect) Intersects(o Rect) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Touches is Intersects with edges within eps counting as contact.
func (r Rect) Touches(o Rect, eps float64) bool {
	if r.X > o.Right()+eps || o.X > r.Right()+eps {
		return false
	}
	if r.Y > o.Bottom()+eps || o.Y > r.Bottom()+eps {
		return false
	}
	return true
}

// Overlap returns the penetration depth on each axis (zero when apart).
func (r Rect) Overlap(o Rect) (dx, dy float64) {
	dx = min(r.Right(), o.Right()) - max(r.X, o.X)
	dy = min(r.Bottom(), o.Bottom()) - max(r.Y, o.Y)
	if dx < 0 || dy < 0 {
		return 0, 0
	}
	return dx, dy
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Category is a bitmask identifying what a body is, and in masks what it
// collides with or reports contacts for.
type Category uint32

// CategoryNone matches nothing.
const CategoryNone Category = 0

// Has reports whether any bit of o is set in c.
func (c Category) Has(o Category) bool {
	return c&o != 0
}
