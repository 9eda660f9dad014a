package lander

import "testing"

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// landingConf returns the Beresheet configuration starting from a low hover.
func landingConf(angle float64) Config {
	conf := Beresheet()
	conf.Name = "hover"
	conf.Initial = State{Altitude: 200, HorizontalVelocity: -4, Angle: angle, FuelMass: 216}
	return conf
}
