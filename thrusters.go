package lander

// Thruster defines a Thruster interface.
type Thruster interface {
	// Returns the thrust in Newtons.
	Thrust() float64
	// Returns the fuel consumed in kg per second of firing.
	BurnRate() float64
}

/* Available Thrusters */

// LEROS2b is the bipropellant main engine used on Beresheet.
type LEROS2b struct{}

// Thrust implements the Thruster interface.
func (t LEROS2b) Thrust() float64 {
	return 430
}

// BurnRate implements the Thruster interface.
func (t LEROS2b) BurnRate() float64 {
	return 1
}

// AuxThruster is one of the small attitude thrusters which also assist the descent.
type AuxThruster struct{}

// Thrust implements the Thruster interface.
func (t AuxThruster) Thrust() float64 {
	return 25
}

// BurnRate implements the Thruster interface.
func (t AuxThruster) BurnRate() float64 {
	return 0.001
}

// GenericThruster is a generic Thruster.
type GenericThruster struct {
	thrust float64
	burn   float64
}

// Thrust implements the Thruster interface.
func (t GenericThruster) Thrust() float64 {
	return t.thrust
}

// BurnRate implements the Thruster interface.
func (t GenericThruster) BurnRate() float64 {
	return t.burn
}

// NewGenericThruster returns a generic Thruster.
func NewGenericThruster(thrust, burn float64) GenericThruster {
	return GenericThruster{thrust, burn}
}

// EngineCluster is a set of identical thrusters which all fire together.
type EngineCluster struct {
	Thruster Thruster
	Count    uint
}

// Thrust returns the combined thrust of the cluster in Newtons.
func (c EngineCluster) Thrust() float64 {
	return float64(c.Count) * c.Thruster.Thrust()
}

// BurnRate returns the combined fuel consumption of the cluster in kg/s.
func (c EngineCluster) BurnRate() float64 {
	return float64(c.Count) * c.Thruster.BurnRate()
}
