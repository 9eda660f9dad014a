package lander

import (
	"fmt"

	"github.com/lunarsim/lander/physics"
)

// Rotation defines an enum of stabilizer commands.
type Rotation uint8

const (
	// Hold does not rotate the lander.
	Hold Rotation = iota + 1
	// RotateNegative pushes the tilt toward negative angles.
	RotateNegative
	// RotatePositive pushes the tilt toward positive angles.
	RotatePositive
)

func (r Rotation) String() string {
	switch r {
	case Hold:
		return "hold"
	case RotateNegative:
		return "rotate-"
	case RotatePositive:
		return "rotate+"
	}
	panic("cannot stringify unknown rotation")
}

// Band is an altitude band of the thrust schedule: above Floor, the engines fire
// whenever the vertical velocity is below MinVerticalVelocity.
type Band struct {
	Floor               float64 // meters, exclusive
	MinVerticalVelocity float64 // m/s, negative when descending
}

func (b Band) String() string {
	return fmt.Sprintf(">%.0fm: vy<%.1fm/s", b.Floor, b.MinVerticalVelocity)
}

// ThrustSchedule is an ordered table of bands, from the highest floor down.
// Only the first band whose floor is below the altitude applies.
type ThrustSchedule []Band

// Match returns the index of the band governing the provided altitude, or -1
// if the altitude is below the lowest floor.
func (ts ThrustSchedule) Match(altitude float64) int {
	for i, b := range ts {
		if altitude > b.Floor {
			return i
		}
	}
	return -1
}

// Fire returns whether the engines must fire, and which band decided it (-1 if none).
func (ts ThrustSchedule) Fire(altitude, verticalVelocity float64) (band int, fire bool) {
	band = ts.Match(altitude)
	if band < 0 {
		return
	}
	return band, verticalVelocity < ts[band].MinVerticalVelocity
}

// DefaultSchedule is the thrust schedule flown by Beresheet.
func DefaultSchedule() ThrustSchedule {
	return ThrustSchedule{
		{30000, -25},
		{15000, -100},
		{3000, -50},
		{300, -10},
		{30, -5},
	}
}

// Stabilizer is the bang-bang attitude controller. Bound (deg/s) limits the
// angular velocity at which it keeps pushing toward zero tilt.
type Stabilizer struct {
	Bound float64
}

// Command returns the rotation to apply for the provided tilt and angular velocity.
func (st Stabilizer) Command(angle, angularVelocity float64) Rotation {
	if angle > 0 && angularVelocity > -st.Bound {
		return RotateNegative
	} else if angle < 0 && angularVelocity < st.Bound {
		return RotatePositive
	}
	return Hold
}

// Command is the decision of the control policy for one tick.
type Command struct {
	Band     int      // Index of the governing band, -1 below the lowest floor
	Fire     bool     // Whether the engines fire this tick
	Rotation Rotation // Stabilizer command
	Gravity  float64  // Freefall acceleration magnitude (m/s^2)
	Thrust   float64  // Acceleration (m/s^2) provided by the engines when firing
	Angular  float64  // Angular acceleration magnitude (deg/s^2) available to the stabilizer
}

// Decide returns what the control policy does from the provided state.
func (c Config) Decide(s State) Command {
	weight := c.Vehicle.Weight(s.FuelMass)
	thrust := c.Vehicle.TotalThrust()
	gravity := physics.AccelerationFromForce(physics.GravitationalForce(c.Body, weight, c.Body.Radius+s.Altitude), weight)
	band, fire := c.Schedule.Fire(s.Altitude, s.VerticalVelocity)
	r := c.Vehicle.Radius()
	angular := physics.AccelerationFromForce(physics.Torque(r, thrust), physics.AngularInertiaTerm(r, 1, weight))
	return Command{
		Band:     band,
		Fire:     fire,
		Rotation: c.Stabilizer.Command(s.Angle, s.AngularVelocity),
		Gravity:  gravity,
		Thrust:   physics.AccelerationFromForce(thrust, weight),
		Angular:  angular,
	}
}
