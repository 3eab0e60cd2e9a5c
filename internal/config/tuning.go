package config

import "fmt"

// Tuning holds the physics feel of the game in logical units (the view is
// 120 units wide and 80 units tall, y grows downwards).
type Tuning struct {
	Gravity         float64 `yaml:"gravity"`          // Downward acceleration, units/s²
	LiftPerHeight   float64 `yaml:"lift_per_height"`  // Upward force per unit of airplane height
	RotationDamping float64 `yaml:"rotation_damping"` // Radians per unit/s of vertical velocity
	SecondsPerUnit  float64 `yaml:"seconds_per_unit"` // Track traversal time per unit of distance
	AirplaneWidth   float64 `yaml:"airplane_width"`
	AirplaneHeight  float64 `yaml:"airplane_height"`
	CloudMinWidth   float64 `yaml:"cloud_min_width"`
	CloudMaxWidth   float64 `yaml:"cloud_max_width"`
}

// DefaultTuning returns values scaled from the mobile portrait scene
// (428x926 points, moon gravity) to the terminal view.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:         21,
		LiftPerHeight:   8.5,
		RotationDamping: 0.012,
		SecondsPerUnit:  0.0267,
		AirplaneWidth:   9,
		AirplaneHeight:  4,
		CloudMinWidth:   10,
		CloudMaxWidth:   24,
	}
}

// Validate reports the first non-physical value.
func (t Tuning) Validate() error {
	switch {
	case t.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidTuning)
	case t.LiftPerHeight <= 0:
		return fmt.Errorf("%w: lift_per_height must be positive", ErrInvalidTuning)
	case t.RotationDamping < 0:
		return fmt.Errorf("%w: rotation_damping must not be negative", ErrInvalidTuning)
	case t.SecondsPerUnit <= 0:
		return fmt.Errorf("%w: seconds_per_unit must be positive", ErrInvalidTuning)
	case t.AirplaneWidth <= 0 || t.AirplaneHeight <= 0:
		return fmt.Errorf("%w: airplane size must be positive", ErrInvalidTuning)
	case t.CloudMinWidth <= 0 || t.CloudMaxWidth < t.CloudMinWidth:
		return fmt.Errorf("%w: cloud width range is empty", ErrInvalidTuning)
	}
	return nil
}
