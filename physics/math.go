// Package physics holds the Newtonian formulas used by the descent simulator.
// Every function is pure: same inputs, same output, no state kept between calls.
// Preconditions such as a positive mass are the caller's problem.
package physics

import "math"

// GravitationalForce returns the attraction (N) of the body on a mass (kg) at a
// given distance (m) from the center of the body.
func GravitationalForce(b Body, mass, distance float64) float64 {
	return b.μ * mass / (distance * distance)
}

// GravitationalAcceleration returns the gravity (m/s^2) at a given distance from
// the center of the body.
func GravitationalAcceleration(b Body, distance float64) float64 {
	return b.μ / (distance * distance)
}

// AccelerationFromForce solves F = m*a for a.
func AccelerationFromForce(force, mass float64) float64 {
	return force / mass
}

// Displacement returns the change in position over dt under constant acceleration.
func Displacement(dt, velocity, acceleration float64) float64 {
	return velocity*dt + 0.5*acceleration*dt*dt
}

// VelocityIncrement returns the change in velocity over dt under constant acceleration.
func VelocityIncrement(dt, acceleration float64) float64 {
	return acceleration * dt
}

// Torque returns the torque of a force applied at the end of a lever arm.
func Torque(leverArm, force float64) float64 {
	return leverArm * force
}

// AngularInertiaTerm returns the moment needed to sustain the provided angular
// acceleration of a mass spinning at the lever arm. For a unit acceleration, this
// is the moment of inertia.
func AngularInertiaTerm(leverArm, angularAcceleration, mass float64) float64 {
	return mass * leverArm * leverArm * angularAcceleration
}

// NormalizeDegrees returns the provided angle in degrees within (-180, 180].
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a <= -180 {
		a += 360
	} else if a > 180 {
		a -= 360
	}
	return a
}
