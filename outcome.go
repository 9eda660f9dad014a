package lander

// Outcome defines an enum of descent outcomes.
type Outcome uint8

const (
	// Aloft means the descent has not concluded: neither on the ground nor out of fuel.
	Aloft Outcome = iota + 1
	// Landed is a successful touchdown.
	Landed
	// FuelExhausted is a crash because the fuel ran out before touchdown.
	FuelExhausted
	// SpeedCrash is a crash because of the drift or fall speed at touchdown.
	SpeedCrash
	// TiltCrash is a crash because of the attitude at touchdown.
	TiltCrash
)

func (o Outcome) String() string {
	switch o {
	case Aloft:
		return "aloft"
	case Landed:
		return "landed"
	case FuelExhausted:
		return "crash-fuel"
	case SpeedCrash:
		return "crash-speed"
	case TiltCrash:
		return "crash-tilt"
	}
	panic("cannot stringify unknown outcome")
}

// Message returns the message reported at the end of a descent. Successful and
// unfinished descents report nothing.
func (o Outcome) Message() string {
	switch o {
	case FuelExhausted:
		return "ERROR-CRASH: Fuel mass consumed before landing. Crashing imminent."
	case SpeedCrash:
		return "ERROR-CRASH: Spacecraft speed while touching down too high - CRASH"
	case TiltCrash:
		return "ERROR-CRASH: Spacecraft angle while touching down too high - CRASH"
	}
	return ""
}

// Crashed returns whether this outcome is a crash.
func (o Outcome) Crashed() bool {
	return o == FuelExhausted || o == SpeedCrash || o == TiltCrash
}

// Touchdown defines the thresholds used to classify the end of a descent.
// The altitude and fuel thresholds leave margin for the last tick overshooting zero.
type Touchdown struct {
	Altitude              float64 // Below this altitude (m), the lander is on the ground
	MinFuel               float64 // Below this fuel mass (kg), the lander ran out of fuel
	MinHorizontalVelocity float64 // m/s
	MaxVerticalVelocity   float64 // m/s
	MaxAngle              float64 // Maximum tilt in degrees, either side
}

// DefaultTouchdown returns Beresheet's touchdown thresholds.
func DefaultTouchdown() Touchdown {
	return Touchdown{Altitude: 1, MinFuel: 1, MinHorizontalVelocity: -5, MaxVerticalVelocity: 5, MaxAngle: 3}
}

// Classify returns the outcome of the provided final state. Running out of fuel
// takes precedence over any touchdown condition.
func (td Touchdown) Classify(s State) Outcome {
	if s.FuelMass < td.MinFuel {
		return FuelExhausted
	}
	if s.Altitude >= td.Altitude {
		return Aloft
	}
	if s.HorizontalVelocity < td.MinHorizontalVelocity || s.VerticalVelocity > td.MaxVerticalVelocity {
		return SpeedCrash
	}
	if s.Angle < -td.MaxAngle || s.Angle > td.MaxAngle {
		return TiltCrash
	}
	return Landed
}
