package lander

import (
	"fmt"
	"time"

	"github.com/ChristopherRabotin/ode"
	"github.com/lunarsim/lander/physics"
)

// Impact is the prediction of an unpowered fall to the surface.
type Impact struct {
	Time             time.Duration // Time until the surface is reached
	VerticalVelocity float64       // m/s at the surface
	Reached          bool          // False if the surface isn't reached within the horizon
}

func (i Impact) String() string {
	if !i.Reached {
		return "no impact"
	}
	return fmt.Sprintf("impact in %s at %.2f m/s", i.Time, i.VerticalVelocity)
}

// freefall is an ode.Integrable of the vertical fall of the lander without thrust.
// Gravity is recomputed from the altitude at each evaluation.
type freefall struct {
	conf     Config
	altitude float64
	vy       float64
	elapsed  time.Duration
	step     time.Duration
	horizon  time.Duration
}

// GetState returns the altitude and vertical velocity.
func (f *freefall) GetState() []float64 {
	return []float64{f.altitude, f.vy}
}

// SetState sets the updated state.
func (f *freefall) SetState(t float64, s []float64) {
	f.altitude = s[0]
	f.vy = s[1]
	f.elapsed += f.step
}

// Stop implements the stop call of the integrator.
func (f *freefall) Stop(t float64) bool {
	return f.altitude <= 0 || f.elapsed >= f.horizon
}

// Func returns the derivative of the altitude and of the vertical velocity.
func (f *freefall) Func(t float64, s []float64) []float64 {
	return []float64{s[1], -physics.GravitationalAcceleration(f.conf.Body, f.conf.Body.Radius+s[0])}
}

// PredictImpact integrates the unpowered vertical fall from the provided state, with
// an RK4 of the provided step, for at most horizon.
func (c Config) PredictImpact(s State, step, horizon time.Duration) Impact {
	if step <= 0 {
		panic("impact prediction step must be positive")
	}
	if s.Altitude <= 0 {
		return Impact{VerticalVelocity: s.VerticalVelocity, Reached: true}
	}
	f := &freefall{conf: c, altitude: s.Altitude, vy: s.VerticalVelocity, step: step, horizon: horizon}
	ode.NewRK4(0, step.Seconds(), f).Solve() // Blocking.
	return Impact{Time: f.elapsed, VerticalVelocity: f.vy, Reached: f.altitude <= 0}
}
