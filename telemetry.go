package lander

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var telemetryColumns = []string{"time", "altitude", "vy", "ay", "vx", "ax", "fuel", "weight", "angle", "ω", "α"}

// Telemetry writes one fixed-precision line per tick.
type Telemetry struct {
	w   io.Writer
	p   *message.Printer
	dry float64
}

// NewTelemetry returns a Telemetry writing to w for a vehicle of the provided dry mass.
func NewTelemetry(w io.Writer, dryMass float64) *Telemetry {
	return &Telemetry{w, message.NewPrinter(language.English), dryMass}
}

// Header returns the tab separated column names, in the order of Format.
func Header() string {
	return strings.Join(telemetryColumns, "\t")
}

// Format returns the telemetry line of the provided state (without a trailing new line).
// Only the altitude has its digits grouped.
func (t *Telemetry) Format(s State) string {
	return fmt.Sprintf("%4ds\t%s\t%5.2fm/s\t%5.2fm/s²\t%7.2fm/s\t%5.2fm/s²\t%.2f\t%.2f\t%5.2f°\t%5.2f\t%6.3f",
		s.Seconds(),
		t.p.Sprintf("%9.2f", s.Altitude),
		s.VerticalVelocity,
		s.VerticalAcceleration,
		s.HorizontalVelocity,
		s.HorizontalAcceleration,
		s.FuelMass,
		t.dry+s.FuelMass,
		s.Angle,
		s.AngularVelocity,
		s.AngularAcceleration,
	)
}

// Record writes the telemetry line of the provided state.
func (t *Telemetry) Record(s State) error {
	_, err := io.WriteString(t.w, t.Format(s)+"\n")
	return err
}

// FormatTelemetry is a helper returning the telemetry line of a state.
func FormatTelemetry(s State, dryMass float64) string {
	return NewTelemetry(io.Discard, dryMass).Format(s)
}
