package lander

import "fmt"

// Vehicle defines the lander: its structure and its engines. Fuel is part of the State.
type Vehicle struct {
	Name     string          // Name of the vehicle
	DryMass  float64         // Mass without fuel (in kg)
	Diameter float64         // Body diameter (in m)
	Engines  []EngineCluster // All engines fire together when the descent policy asks for thrust
}

// Radius returns the lever arm of the engines with respect to the center of mass.
func (v Vehicle) Radius() float64 {
	return v.Diameter / 2
}

// TotalThrust returns the thrust (N) of all engines firing together.
func (v Vehicle) TotalThrust() (thrust float64) {
	for _, c := range v.Engines {
		thrust += c.Thrust()
	}
	return
}

// BurnRate returns the fuel (kg/s) consumed by all engines.
func (v Vehicle) BurnRate() (burn float64) {
	for _, c := range v.Engines {
		burn += c.BurnRate()
	}
	return
}

// Weight returns the total mass (kg) for the provided fuel mass.
func (v Vehicle) Weight(fuel float64) float64 {
	return v.DryMass + fuel
}

func (v Vehicle) String() string {
	return fmt.Sprintf("%s (dry: %.1f kg, thrust: %.1f N, burn: %.3f kg/s)", v.Name, v.DryMass, v.TotalThrust(), v.BurnRate())
}

// NewBeresheet returns the SpaceIL lander: a LEROS 2b and eight auxiliary thrusters.
func NewBeresheet() Vehicle {
	return Vehicle{
		Name:     "Beresheet",
		DryMass:  164,
		Diameter: 2.288,
		Engines:  []EngineCluster{{LEROS2b{}, 1}, {AuxThruster{}, 8}},
	}
}
