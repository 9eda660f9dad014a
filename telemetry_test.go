package lander

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTelemetryFormat(t *testing.T) {
	conf := Beresheet()
	line := FormatTelemetry(conf.Initial, conf.Vehicle.DryMass)
	fields := strings.Split(line, "\t")
	if len(fields) != len(strings.Split(Header(), "\t")) {
		t.Fatalf("%d fields but %d columns: %q", len(fields), len(strings.Split(Header(), "\t")), line)
	}
	if len(fields) != 11 {
		t.Fatalf("expected 11 fields, got %d", len(fields))
	}
	if strings.TrimSpace(fields[0]) != "0s" {
		t.Fatalf("invalid time field: %q", fields[0])
	}
	if !strings.Contains(fields[1], "30,000.00") {
		t.Fatalf("invalid altitude field: %q", fields[1])
	}
	if !strings.Contains(fields[2], "-56.00m/s") {
		t.Fatalf("invalid vertical velocity field: %q", fields[2])
	}
	// Only the altitude is grouped.
	if strings.TrimSpace(fields[4]) != "1700.00m/s" {
		t.Fatalf("invalid horizontal velocity field: %q", fields[4])
	}
	if fields[6] != "216.00" || fields[7] != "380.00" {
		t.Fatalf("invalid fuel or weight: %q %q", fields[6], fields[7])
	}
	if !strings.Contains(fields[8], "90.00°") {
		t.Fatalf("invalid angle field: %q", fields[8])
	}
	if strings.HasSuffix(line, "\n") {
		t.Fatal("Format should not end with a new line")
	}

	late := State{Elapsed: 1234 * time.Second, Altitude: 1234567.891, HorizontalVelocity: -2500, FuelMass: 1500}
	fields = strings.Split(FormatTelemetry(late, 164), "\t")
	if strings.TrimSpace(fields[0]) != "1234s" {
		t.Fatalf("invalid time field: %q", fields[0])
	}
	if strings.TrimSpace(fields[1]) != "1,234,567.89" {
		t.Fatalf("invalid altitude field: %q", fields[1])
	}
	if strings.TrimSpace(fields[4]) != "-2500.00m/s" || fields[6] != "1500.00" || fields[7] != "1664.00" {
		t.Fatalf("only the altitude may be grouped: %q", fields)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTelemetryRecord(t *testing.T) {
	var buf bytes.Buffer
	tlm := NewTelemetry(&buf, 164)
	conf := Beresheet()
	s := conf.Initial
	for i := 0; i < 3; i++ {
		s = conf.Advance(s)
		if err := tlm.Record(s); err != nil {
			t.Fatal(err)
		}
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[2]), "3s") {
		t.Fatalf("invalid last line: %q", lines[2])
	}
	if err := NewTelemetry(failingWriter{}, 164).Record(s); err == nil {
		t.Fatal("expected an error")
	}
	// A failing telemetry writer does not stop the descent.
	if rslt := NewSimulator(landingConf(0), failingWriter{}, nil).Run(); rslt.Outcome != Landed {
		t.Fatalf("invalid outcome: %s", rslt)
	}
}
