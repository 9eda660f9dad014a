package lander

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/lunarsim/lander/physics"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
)

// maxDraws bounds the number of draws for one dispersed initial state.
const maxDraws = 1000

var (
	// ErrNoRuns is returned when a sweep is requested without any run.
	ErrNoRuns = errors.New("sweep requires at least one run")
	// ErrNoViableDraw is returned when the dispersion keeps yielding initial states
	// which are on the ground or without fuel.
	ErrNoViableDraw = errors.New("dispersion yields no initial state above ground with fuel")
)

// Dispersion holds the standard deviation of each initial condition of a sweep.
type Dispersion struct {
	Altitude           float64 // m
	VerticalVelocity   float64 // m/s
	HorizontalVelocity float64 // m/s
	Angle              float64 // deg
	FuelMass           float64 // kg
}

func (d Dispersion) σ() []float64 {
	return []float64{d.Altitude, d.VerticalVelocity, d.HorizontalVelocity, d.Angle, d.FuelMass}
}

// Apply returns the initial state offset by the provided standard normal draws.
// The angle stays within (-180, 180].
func (d Dispersion) Apply(s State, draws []float64) State {
	σ := d.σ()
	s.Altitude += σ[0] * draws[0]
	s.VerticalVelocity += σ[1] * draws[1]
	s.HorizontalVelocity += σ[2] * draws[2]
	s.Angle = physics.NormalizeDegrees(s.Angle + σ[3]*draws[3])
	s.FuelMass += σ[4] * draws[4]
	return s
}

// Sweep runs independent descents from dispersed initial conditions, on at most
// `workers` goroutines (all CPUs if workers <= 0). Results are in draw order.
// Draws which start on the ground or without fuel are rejected and drawn again.
func Sweep(conf Config, disp Dispersion, runs, workers int, logger kitlog.Logger) ([]Result, error) {
	if runs <= 0 {
		return nil, ErrNoRuns
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	if cpus := runtime.NumCPU(); workers <= 0 || workers > cpus {
		workers = cpus
	}
	dim := len(disp.σ())
	identity := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		identity.SetSym(i, i, 1)
	}
	normal, ok := distmv.NewNormal(make([]float64, dim), identity, nil)
	if !ok {
		panic("identity covariance is not positive definite")
	}
	// Draw everything upfront so that runs don't share the random source.
	initials := make([]State, runs)
	rejected := 0
	for i := range initials {
		for draw := 0; ; draw++ {
			if draw == maxDraws {
				return nil, fmt.Errorf("sweep run %d: %w", i, ErrNoViableDraw)
			}
			if s := disp.Apply(conf.Initial, normal.Rand(nil)); conf.Running(s) {
				initials[i] = s
				rejected += draw
				break
			}
		}
	}
	logger.Log("level", "info", "subsys", "sweep", "runs", runs, "workers", workers, "rejected", rejected)

	results := make([]Result, runs)
	cpuChan := make(chan bool, workers)
	var wg sync.WaitGroup
	for i, initial := range initials {
		cpuChan <- true
		wg.Add(1)
		go func(i int, initial State) {
			defer func() {
				<-cpuChan
				wg.Done()
			}()
			runConf := conf
			runConf.Name = fmt.Sprintf("%s-%d", conf.Name, i)
			runConf.Initial = initial
			results[i] = NewSimulator(runConf, nil, nil).Run()
		}(i, initial)
	}
	wg.Wait()
	logger.Log("level", "notice", "subsys", "sweep", "status", "finished", "runs", runs)
	return results, nil
}

// Summary holds the statistics of a sweep.
type Summary struct {
	Runs                 int
	Outcomes             map[Outcome]int
	SuccessRate          float64
	MeanVerticalVelocity float64 // At the end of the descent
	StdVerticalVelocity  float64
	MeanAngle            float64
	StdAngle             float64
	MaxTicks             uint64
}

// Summarize computes the statistics of the provided results. Standard deviations
// require at least two results.
func Summarize(results []Result) Summary {
	sum := Summary{Runs: len(results), Outcomes: make(map[Outcome]int)}
	if len(results) == 0 {
		return sum
	}
	vy := make([]float64, len(results))
	angles := make([]float64, len(results))
	ticks := make([]float64, len(results))
	for i, r := range results {
		sum.Outcomes[r.Outcome]++
		vy[i] = r.Final.VerticalVelocity
		angles[i] = r.Final.Angle
		ticks[i] = float64(r.Ticks)
	}
	sum.SuccessRate = float64(sum.Outcomes[Landed]) / float64(len(results))
	sum.MeanVerticalVelocity, sum.StdVerticalVelocity = stat.MeanStdDev(vy, nil)
	sum.MeanAngle, sum.StdAngle = stat.MeanStdDev(angles, nil)
	sum.MaxTicks = uint64(floats.Max(ticks))
	return sum
}

// String implements the Stringer interface.
func (s Summary) String() string {
	return fmt.Sprintf("%d runs, %.1f%% landed (%d fuel, %d speed, %d tilt), vy=%.2f±%.2f m/s, angle=%.2f±%.2f°, max %d ticks",
		s.Runs, 100*s.SuccessRate, s.Outcomes[FuelExhausted], s.Outcomes[SpeedCrash], s.Outcomes[TiltCrash],
		s.MeanVerticalVelocity, s.StdVerticalVelocity, s.MeanAngle, s.StdAngle, s.MaxTicks)
}
