package lander

import (
	"fmt"
	"time"
)

// State is the physical state of the lander at a given tick.
// All angles are in degrees, distances in meters and masses in kg.
type State struct {
	Elapsed                time.Duration
	Altitude               float64
	HorizontalVelocity     float64
	VerticalVelocity       float64 // Negative when descending
	HorizontalAcceleration float64
	VerticalAcceleration   float64
	Angle                  float64 // Tilt from the upright/retrograde orientation, within (-180, 180]
	AngularVelocity        float64
	AngularAcceleration    float64
	FuelMass               float64
}

// Seconds returns the elapsed time in whole seconds.
func (s State) Seconds() int64 {
	return int64(s.Elapsed / time.Second)
}

// String implements the Stringer interface.
func (s State) String() string {
	return fmt.Sprintf("t=%ds alt=%.2fm vx=%.2fm/s vy=%.2fm/s angle=%.2f° fuel=%.2fkg", s.Seconds(), s.Altitude, s.HorizontalVelocity, s.VerticalVelocity, s.Angle, s.FuelMass)
}
