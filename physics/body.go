package physics

import (
	"fmt"
	"strings"
)

// Body defines a celestial body to descend onto.
// Unlike most astrodynamics tools, distances are in meters: the descent works at
// the scale of a lander, not of an orbit.
type Body struct {
	Name   string
	Radius float64 // Mean radius in meters
	μ      float64 // Standard gravitational parameter in m^3/s^2
}

// NewBody returns a new body from its radius (m) and GM (m^3/s^2).
func NewBody(name string, radius, gm float64) Body {
	return Body{name, radius, gm}
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (b Body) GM() float64 {
	return b.μ
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.Name + " body"
}

// Equals returns whether the provided body is the same.
func (b Body) Equals(o Body) bool {
	return b.Name == o.Name && b.Radius == o.Radius && b.μ == o.μ
}

// BodyFromString returns the body from its name
func BodyFromString(name string) (Body, error) {
	switch strings.ToLower(name) {
	case "moon":
		return Moon, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	default:
		return Body{}, fmt.Errorf("undefined body '%s'", name)
	}
}

/* Definitions */

// Moon is where Beresheet was headed.
var Moon = Body{"Moon", 1737.4e3, 4.9048695e12}

// Earth is home.
var Earth = Body{"Earth", 6378.1363e3, 3.98600433e14}

// Mars is the vacation place.
var Mars = Body{"Mars", 3396.19e3, 4.28283100e13}
