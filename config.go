package lander

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lunarsim/lander/physics"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

const (
	// StepSize is the default tick of the descent.
	StepSize   = time.Second
	dateFormat = "2006-01-02 15:04:05"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("invalid descent configuration")

// Axis defines which velocity drives the altitude integration.
type Axis uint8

const (
	// HorizontalAxis integrates the altitude with the horizontal velocity, as Beresheet's
	// flight software did.
	HorizontalAxis Axis = iota + 1
	// VerticalAxis integrates the altitude with the vertical velocity.
	VerticalAxis
)

func (a Axis) String() string {
	switch a {
	case HorizontalAxis:
		return "horizontal"
	case VerticalAxis:
		return "vertical"
	}
	panic("cannot stringify unknown axis")
}

// AxisFromString returns the axis from its name.
func AxisFromString(name string) (Axis, error) {
	switch strings.ToLower(name) {
	case "horizontal", "":
		return HorizontalAxis, nil
	case "vertical":
		return VerticalAxis, nil
	default:
		return 0, fmt.Errorf("undefined axis '%s'", name)
	}
}

// Config holds everything a descent needs. It is never modified by a simulation,
// so the same Config may be shared by concurrent runs.
type Config struct {
	Name              string
	Epoch             time.Time // Date of the start of the descent
	Body              physics.Body
	Vehicle           Vehicle
	Step              time.Duration
	Schedule          ThrustSchedule
	Stabilizer        Stabilizer
	Touchdown         Touchdown
	AltitudeAxis      Axis
	HorizontalBraking bool // Also brake the horizontal velocity when firing
	Initial           State
}

// Beresheet returns the configuration of the April 2019 landing attempt.
func Beresheet() Config {
	return Config{
		Name:         "beresheet",
		Epoch:        time.Date(2019, 4, 11, 19, 0, 0, 0, time.UTC),
		Body:         physics.Moon,
		Vehicle:      NewBeresheet(),
		Step:         StepSize,
		Schedule:     DefaultSchedule(),
		Stabilizer:   Stabilizer{Bound: 0.5},
		Touchdown:    DefaultTouchdown(),
		AltitudeAxis: HorizontalAxis,
		Initial: State{
			Altitude:           30000,
			HorizontalVelocity: 1700,
			VerticalVelocity:   -56,
			Angle:              90,
			FuelMass:           216,
		},
	}
}

// Validate returns an error if this configuration cannot be simulated.
func (c Config) Validate() error {
	if c.Step <= 0 {
		return fmt.Errorf("%w: step must be positive (got %s)", ErrInvalidConfig, c.Step)
	}
	if c.Vehicle.DryMass <= 0 {
		return fmt.Errorf("%w: dry mass must be positive (got %f kg)", ErrInvalidConfig, c.Vehicle.DryMass)
	}
	if c.Vehicle.BurnRate() <= 0 {
		return fmt.Errorf("%w: burn rate must be positive or the descent may never end", ErrInvalidConfig)
	}
	if c.Initial.FuelMass < 0 {
		return fmt.Errorf("%w: negative initial fuel mass", ErrInvalidConfig)
	}
	for i := 1; i < len(c.Schedule); i++ {
		if c.Schedule[i].Floor >= c.Schedule[i-1].Floor {
			return fmt.Errorf("%w: band %d (%s) is not below band %d (%s)", ErrInvalidConfig, i, c.Schedule[i], i-1, c.Schedule[i-1])
		}
	}
	if c.Stabilizer.Bound < 0 {
		return fmt.Errorf("%w: negative stabilizer bound", ErrInvalidConfig)
	}
	if c.AltitudeAxis != HorizontalAxis && c.AltitudeAxis != VerticalAxis {
		return fmt.Errorf("%w: unknown altitude axis %d", ErrInvalidConfig, c.AltitudeAxis)
	}
	return nil
}

type bandConf struct {
	Floor float64 `mapstructure:"floor"`
	VY    float64 `mapstructure:"vy"`
}

// LoadConfig reads a TOML scenario. Every missing key falls back to Beresheet().
func LoadConfig(path string) (Config, error) {
	def := Beresheet()
	v := viper.New()
	v.SetDefault("name", def.Name)
	v.SetDefault("body.name", def.Body.Name)
	v.SetDefault("spacecraft.name", def.Vehicle.Name)
	v.SetDefault("spacecraft.dry", def.Vehicle.DryMass)
	v.SetDefault("spacecraft.diameter", def.Vehicle.Diameter)
	v.SetDefault("engines.main.thrust", LEROS2b{}.Thrust())
	v.SetDefault("engines.main.burn", LEROS2b{}.BurnRate())
	v.SetDefault("engines.main.count", 1)
	v.SetDefault("engines.aux.thrust", AuxThruster{}.Thrust())
	v.SetDefault("engines.aux.burn", AuxThruster{}.BurnRate())
	v.SetDefault("engines.aux.count", 8)
	v.SetDefault("mission.step", def.Step)
	v.SetDefault("mission.axis", def.AltitudeAxis.String())
	v.SetDefault("mission.braking", def.HorizontalBraking)
	v.SetDefault("initial.altitude", def.Initial.Altitude)
	v.SetDefault("initial.vx", def.Initial.HorizontalVelocity)
	v.SetDefault("initial.vy", def.Initial.VerticalVelocity)
	v.SetDefault("initial.angle", def.Initial.Angle)
	v.SetDefault("initial.angularVelocity", def.Initial.AngularVelocity)
	v.SetDefault("initial.fuel", def.Initial.FuelMass)
	v.SetDefault("control.bound", def.Stabilizer.Bound)
	v.SetDefault("touchdown.altitude", def.Touchdown.Altitude)
	v.SetDefault("touchdown.fuel", def.Touchdown.MinFuel)
	v.SetDefault("touchdown.vx", def.Touchdown.MinHorizontalVelocity)
	v.SetDefault("touchdown.vy", def.Touchdown.MaxVerticalVelocity)
	v.SetDefault("touchdown.angle", def.Touchdown.MaxAngle)

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("could not read scenario %s: %w", path, err)
	}

	body, err := physics.BodyFromString(v.GetString("body.name"))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	axis, err := AxisFromString(v.GetString("mission.axis"))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	epoch, err := confReadJDEorTime(v, "epoch", def.Epoch)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	schedule := DefaultSchedule()
	if v.IsSet("control.bands") {
		var bands []bandConf
		if err := v.UnmarshalKey("control.bands", &bands); err != nil {
			return Config{}, fmt.Errorf("%s: could not read control.bands: %w", path, err)
		}
		schedule = make(ThrustSchedule, len(bands))
		for i, b := range bands {
			schedule[i] = Band{b.Floor, b.VY}
		}
	}

	conf := Config{
		Name:  v.GetString("name"),
		Epoch: epoch,
		Body:  body,
		Vehicle: Vehicle{
			Name:     v.GetString("spacecraft.name"),
			DryMass:  v.GetFloat64("spacecraft.dry"),
			Diameter: v.GetFloat64("spacecraft.diameter"),
			Engines: []EngineCluster{
				{NewGenericThruster(v.GetFloat64("engines.main.thrust"), v.GetFloat64("engines.main.burn")), v.GetUint("engines.main.count")},
				{NewGenericThruster(v.GetFloat64("engines.aux.thrust"), v.GetFloat64("engines.aux.burn")), v.GetUint("engines.aux.count")},
			},
		},
		Step:       v.GetDuration("mission.step"),
		Schedule:   schedule,
		Stabilizer: Stabilizer{Bound: v.GetFloat64("control.bound")},
		Touchdown: Touchdown{
			Altitude:              v.GetFloat64("touchdown.altitude"),
			MinFuel:               v.GetFloat64("touchdown.fuel"),
			MinHorizontalVelocity: v.GetFloat64("touchdown.vx"),
			MaxVerticalVelocity:   v.GetFloat64("touchdown.vy"),
			MaxAngle:              v.GetFloat64("touchdown.angle"),
		},
		AltitudeAxis:      axis,
		HorizontalBraking: v.GetBool("mission.braking"),
		Initial: State{
			Altitude:           v.GetFloat64("initial.altitude"),
			HorizontalVelocity: v.GetFloat64("initial.vx"),
			VerticalVelocity:   v.GetFloat64("initial.vy"),
			Angle:              physics.NormalizeDegrees(v.GetFloat64("initial.angle")),
			AngularVelocity:    v.GetFloat64("initial.angularVelocity"),
			FuelMass:           v.GetFloat64("initial.fuel"),
		},
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return conf, nil
}

// confReadJDEorTime reads a date either as a Julian date or as a UTC date string.
func confReadJDEorTime(v *viper.Viper, key string, def time.Time) (time.Time, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	if jde := v.GetFloat64(key); jde != 0 {
		return julian.JDToTime(jde), nil
	}
	dt, err := time.Parse(dateFormat, v.GetString(key))
	if err != nil {
		return time.Time{}, fmt.Errorf("could not understand `%s`: %w", key, err)
	}
	return dt, nil
}
