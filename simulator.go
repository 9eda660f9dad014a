package lander

import (
	"fmt"
	"io"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/soniakeys/meeus/v3/julian"
)

/* Handles the descent loop. */

// impactHorizon bounds the freefall prediction of LogStatus.
const impactHorizon = time.Hour

// Simulator owns the state of one descent and advances it tick by tick.
// A Simulator must not be shared between goroutines; use one per run.
type Simulator struct {
	conf      Config
	state     State
	ticks     uint64
	telemetry *Telemetry // nil if no telemetry is wanted
	logger    kitlog.Logger
	done      bool
	result    Result // Valid once done
}

// NewSimulator returns a new Simulator starting from the initial state of the config.
// Telemetry lines are written to the provided writer if it isn't nil.
// Panics if the configuration is invalid: build configs with LoadConfig or check Validate first.
func NewSimulator(conf Config, telemetry io.Writer, logger kitlog.Logger) *Simulator {
	if err := conf.Validate(); err != nil {
		panic(err)
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	logger = kitlog.With(logger, "descent", conf.Name)
	s := &Simulator{conf: conf, state: conf.Initial, logger: logger}
	if telemetry != nil {
		s.telemetry = NewTelemetry(telemetry, conf.Vehicle.DryMass)
	}
	return s
}

// State returns the current state.
func (s *Simulator) State() State {
	return s.state
}

// Ticks returns the number of ticks performed so far.
func (s *Simulator) Ticks() uint64 {
	return s.ticks
}

// Running returns whether another tick will be performed.
func (s *Simulator) Running() bool {
	return s.conf.Running(s.state)
}

// LogStatus logs the current state of the descent, and where a fall without thrust would end.
func (s *Simulator) LogStatus() {
	s.logger.Log("level", "info", "subsys", "descent", "jde", julian.TimeToJD(s.conf.Epoch.Add(s.state.Elapsed)), "alt(m)", s.state.Altitude, "vy(m/s)", s.state.VerticalVelocity, "fuel(kg)", s.state.FuelMass)
	if s.state.Altitude > 0 {
		s.logger.Log("level", "debug", "subsys", "astro", "freefall", s.conf.PredictImpact(s.state, s.conf.Step, impactHorizon))
	}
}

// Step performs one tick if the descent is still running, and returns whether it did.
func (s *Simulator) Step() bool {
	if !s.Running() {
		return false
	}
	prev := s.state
	s.state = s.conf.Advance(s.state)
	s.ticks++
	if s.telemetry != nil {
		if err := s.telemetry.Record(s.state); err != nil {
			s.logger.Log("level", "warning", "subsys", "telemetry", "err", err)
		}
	}
	if prev.FuelMass > 0 && s.state.FuelMass <= 0 {
		s.logger.Log("level", "critical", "subsys", "prop", "fuel(kg)", s.state.FuelMass, "alt(m)", s.state.Altitude)
	}
	return true
}

// Run performs all remaining ticks and classifies the outcome. Further calls
// return the same result.
func (s *Simulator) Run() Result {
	if s.done {
		return s.result
	}
	s.logger.Log("level", "info", "subsys", "descent", "status", "started", "vehicle", s.conf.Vehicle, "body", s.conf.Body.Name, "axis", s.conf.AltitudeAxis)
	s.LogStatus()
	initFuel := s.state.FuelMass
	for s.Step() {
	}
	rslt := Result{Name: s.conf.Name, Outcome: s.conf.Touchdown.Classify(s.state), Final: s.state, Ticks: s.ticks}
	s.done = true
	s.result = rslt
	level := "notice"
	if rslt.Outcome.Crashed() {
		level = "critical"
	}
	s.logger.Log("level", level, "subsys", "descent", "status", "finished", "outcome", rslt.Outcome, "ticks", s.ticks, "fuel(kg)", initFuel-s.state.FuelMass)
	if msg := rslt.Outcome.Message(); msg != "" {
		s.logger.Log("level", level, "subsys", "descent", "message", msg)
	}
	s.LogStatus()
	return rslt
}

// Result is the conclusion of a descent.
type Result struct {
	Name    string
	Outcome Outcome
	Final   State
	Ticks   uint64
}

// String implements the Stringer interface.
func (r Result) String() string {
	return fmt.Sprintf("%s: %s after %d ticks (%s)", r.Name, r.Outcome, r.Ticks, r.Final)
}
