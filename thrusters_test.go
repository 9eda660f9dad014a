package lander

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestTHGeneric(t *testing.T) {
	thrust, burn := 1., 2.
	thruster := NewGenericThruster(thrust, burn)
	if thrust != thruster.Thrust() || thrust != thruster.Thrust() {
		t.Fatal("invalid thrust returned")
	}
	if burn != thruster.BurnRate() {
		t.Fatal("invalid burn rate returned")
	}
}

func TestTHCluster(t *testing.T) {
	c := EngineCluster{AuxThruster{}, 8}
	if c.Thrust() != 200 {
		t.Fatalf("invalid cluster thrust: %f", c.Thrust())
	}
	if !scalar.EqualWithinAbs(c.BurnRate(), 0.008, 1e-15) {
		t.Fatalf("invalid cluster burn: %f", c.BurnRate())
	}
	if empty := (EngineCluster{LEROS2b{}, 0}); empty.Thrust() != 0 || empty.BurnRate() != 0 {
		t.Fatal("an empty cluster should not thrust")
	}
}

func TestBeresheetVehicle(t *testing.T) {
	v := NewBeresheet()
	if v.TotalThrust() != 630 {
		t.Fatalf("invalid total thrust: %f", v.TotalThrust())
	}
	if !scalar.EqualWithinAbs(v.BurnRate(), 1.008, 1e-12) {
		t.Fatalf("invalid total burn rate: %f", v.BurnRate())
	}
	if v.Radius() != 1.144 {
		t.Fatalf("invalid radius: %f", v.Radius())
	}
	if v.Weight(216) != 380 {
		t.Fatalf("invalid weight: %f", v.Weight(216))
	}
	if v.String() != "Beresheet (dry: 164.0 kg, thrust: 630.0 N, burn: 1.008 kg/s)" {
		t.Fatalf("invalid string: %s", v)
	}
}
