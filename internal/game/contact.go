package game

import (
	"github.com/tomz197/donthitclouds/internal/object"
	"github.com/tomz197/donthitclouds/internal/physics"
)

// kind tags a body by what it is in the game.
type kind uint8

const (
	kindUnknown kind = iota
	kindAirplane
	kindGround
	kindCeiling
	kindCloud
	kindMileMarker
)

func kindOf(b *physics.Body) kind {
	switch b.Category {
	case object.CategoryAirplane:
		return kindAirplane
	case object.CategoryGround:
		return kindGround
	case object.CategoryCeiling:
		return kindCeiling
	case object.CategoryCloud:
		return kindCloud
	case object.CategoryMileMarker:
		return kindMileMarker
	}
	return kindUnknown
}

// pair is an unordered pair of kinds, stored lowest first.
type pair struct {
	lo, hi kind
}

func pairOf(a, b kind) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// outcome handles a contact. first and second follow the order of the
// pair's kinds.
type outcome func(c *Controller, first, second *physics.Body)

func endWith(reason EndReason) outcome {
	return func(c *Controller, _, _ *physics.Body) {
		c.end(reason)
	}
}

var outcomes = map[pair]outcome{
	pairOf(kindAirplane, kindGround):     endWith(HitGround),
	pairOf(kindAirplane, kindCeiling):    endWith(HitCeiling),
	pairOf(kindAirplane, kindCloud):      endWith(HitCloud),
	pairOf(kindAirplane, kindMileMarker): func(c *Controller, _, marker *physics.Body) { c.scoreMile(marker) },
}

// handleContact resolves a contact-begin event through the outcome table.
// Pairs without an entry are ignored.
func (c *Controller) handleContact(a, b *physics.Body) {
	ka, kb := kindOf(a), kindOf(b)
	fn, ok := outcomes[pairOf(ka, kb)]
	if !ok {
		return
	}
	if ka > kb {
		a, b = b, a
	}
	fn(c, a, b)
}

// scoreMile consumes the oldest pending marker: one mile, a new label, the
// marker leaves the world, and every tenth mile up to the cap speeds up
// the clouds. Touching a marker that already scored does nothing.
func (c *Controller) scoreMile(touched *physics.Body) {
	if c.state != Running {
		return
	}
	if tm, ok := touched.Owner.(*object.MileMarker); ok && tm.Consumed() {
		return
	}
	m, ok := c.markers.head()
	if !ok || m.Consumed() {
		return
	}
	m.Consume()
	c.markers.pop()
	c.world.Remove(m.Body())

	c.miles++
	c.label.SetText(c.labelText())
	if levelUpAt(c.miles) {
		c.levelUp()
	}
}
