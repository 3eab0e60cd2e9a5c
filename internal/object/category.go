package object

import "github.com/tomz197/donthitclouds/internal/physics"

// Physics categories of the game's actors.
const (
	CategoryAirplane   physics.Category = 1 << 1
	CategoryGround     physics.Category = 1 << 2
	CategoryCeiling    physics.Category = 1 << 3
	CategoryCloud      physics.Category = 1 << 4
	CategoryMileMarker physics.Category = 1 << 5
)
