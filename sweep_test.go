package lander

import (
	"bytes"
	"strings"
	"testing"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepNoRuns(t *testing.T) {
	_, err := Sweep(Beresheet(), Dispersion{}, 0, 1, nil)
	require.ErrorIs(t, err, ErrNoRuns)

	conf := Beresheet()
	conf.Step = 0
	_, err = Sweep(conf, Dispersion{}, 3, 1, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSweepWithoutDispersion(t *testing.T) {
	var logs bytes.Buffer
	results, err := Sweep(Beresheet(), Dispersion{}, 6, 2, kitlog.NewLogfmtLogger(&logs))
	require.NoError(t, err)
	require.Len(t, results, 6)
	for i, r := range results {
		assert.Equal(t, FuelExhausted, r.Outcome, "run %d", i)
		assert.EqualValues(t, 215, r.Ticks, "run %d", i)
		assert.Equal(t, Beresheet().Name+"-"+string(rune('0'+i)), r.Name)
	}
	assert.Contains(t, logs.String(), "subsys=sweep")
	assert.Contains(t, logs.String(), "status=finished")

	sum := Summarize(results)
	assert.Equal(t, 6, sum.Runs)
	assert.Equal(t, 6, sum.Outcomes[FuelExhausted])
	assert.Zero(t, sum.SuccessRate)
	assert.InDelta(t, 0, sum.StdVerticalVelocity, 1e-9)
	assert.EqualValues(t, 215, sum.MaxTicks)
	assert.True(t, strings.HasPrefix(sum.String(), "6 runs, 0.0% landed (6 fuel"), sum.String())
}

func TestSweepDispersed(t *testing.T) {
	disp := Dispersion{Altitude: 10, VerticalVelocity: 0.5, HorizontalVelocity: 0.2, Angle: 0.5, FuelMass: 1}
	results, err := Sweep(landingConf(0), disp, 20, 0, nil)
	require.NoError(t, err)
	require.Len(t, results, 20)
	sum := Summarize(results)
	total := 0
	for _, n := range sum.Outcomes {
		total += n
	}
	assert.Equal(t, 20, total)
	assert.Zero(t, sum.Outcomes[Aloft])
	assert.GreaterOrEqual(t, sum.SuccessRate, 0.)
	assert.LessOrEqual(t, sum.SuccessRate, 1.)
	assert.Greater(t, sum.StdAngle, 0.)
}

func TestDispersionApply(t *testing.T) {
	disp := Dispersion{Altitude: 100, VerticalVelocity: 1, HorizontalVelocity: 2, Angle: 10, FuelMass: 50}
	s := disp.Apply(State{Altitude: 50, Angle: 175, FuelMass: 20}, []float64{-1, 1, -1, 1, -1})
	assert.Equal(t, -50., s.Altitude)
	assert.Equal(t, 1., s.VerticalVelocity)
	assert.Equal(t, -2., s.HorizontalVelocity)
	assert.InDelta(t, -175, s.Angle, 1e-9)
	assert.Equal(t, -30., s.FuelMass)
	// No dispersion, no change.
	initial := Beresheet().Initial
	assert.Equal(t, initial, Dispersion{}.Apply(initial, []float64{3, -3, 3, -3, 3}))
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	assert.Zero(t, sum.Runs)
	assert.Empty(t, sum.Outcomes)
}

func TestSweepRedrawsGroundStarts(t *testing.T) {
	conf := landingConf(0)
	conf.Initial.Altitude = 5
	var logs bytes.Buffer
	results, err := Sweep(conf, Dispersion{Altitude: 100}, 200, 0, kitlog.NewLogfmtLogger(&logs))
	require.NoError(t, err)
	require.Len(t, results, 200)
	for i, r := range results {
		require.NotZero(t, r.Ticks, "run %d started on the ground", i)
		require.Greater(t, r.Final.Elapsed, time.Duration(0), "run %d", i)
	}
	// About half of the draws are below ground.
	assert.NotContains(t, logs.String(), "rejected=0\n")
}

func TestSweepNoViableDraw(t *testing.T) {
	conf := landingConf(0)
	conf.Initial.Altitude = 0
	_, err := Sweep(conf, Dispersion{}, 3, 1, nil)
	require.ErrorIs(t, err, ErrNoViableDraw)

	conf = landingConf(0)
	conf.Initial.FuelMass = 0
	_, err = Sweep(conf, Dispersion{Angle: 10}, 3, 1, nil)
	require.ErrorIs(t, err, ErrNoViableDraw)
}
