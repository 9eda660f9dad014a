package lander

import "github.com/lunarsim/lander/physics"

// Running returns whether the descent continues from the provided state.
func (c Config) Running(s State) bool {
	return s.Altitude > 0 && s.FuelMass > 0
}

// Advance returns the state one tick after the provided one.
// The provided state is not modified.
func (c Config) Advance(s State) State {
	dt := c.Step.Seconds()
	cmd := c.Decide(s)

	// Freefall unless the engines say otherwise.
	s.HorizontalAcceleration = 0
	s.VerticalAcceleration = -cmd.Gravity
	if cmd.Fire {
		s.VerticalAcceleration += cmd.Thrust
		if c.HorizontalBraking && s.HorizontalVelocity > 0 {
			s.HorizontalAcceleration -= cmd.Thrust
		}
	}

	switch cmd.Rotation {
	case RotateNegative:
		s.AngularAcceleration = -cmd.Angular
	case RotatePositive:
		s.AngularAcceleration = cmd.Angular
	default:
		s.AngularAcceleration = 0
	}
	s.Angle = physics.NormalizeDegrees(s.Angle + physics.Displacement(dt, s.AngularVelocity, s.AngularAcceleration))
	s.AngularVelocity += physics.VelocityIncrement(dt, s.AngularAcceleration)

	// The altitude is driven by the velocity of the configured axis, which is the
	// horizontal one unless told otherwise.
	v := s.HorizontalVelocity
	if c.AltitudeAxis == VerticalAxis {
		v = s.VerticalVelocity
	}
	s.Altitude += physics.Displacement(dt, v, s.VerticalAcceleration)
	s.HorizontalVelocity += physics.VelocityIncrement(dt, s.HorizontalAcceleration)
	s.VerticalVelocity += physics.VelocityIncrement(dt, s.VerticalAcceleration)

	// Fuel burns every tick, whether or not the engines fired.
	s.FuelMass -= dt * c.Vehicle.BurnRate()
	s.Elapsed += c.Step
	return s
}
