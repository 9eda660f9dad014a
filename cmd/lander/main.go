package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/lunarsim/lander"
	"github.com/spf13/viper"
)

// This code reads the scenario and flies the descent, or a sweep of descents.

const defaultScenario = "~~unset~~"

var (
	scenario string
	runs     int
	numCPUs  int
	quiet    bool
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "descent scenario TOML file (defaults to Beresheet)")
	flag.IntVar(&runs, "sweep", 0, "number of dispersed descents to fly (overrides sweep.runs)")
	flag.IntVar(&numCPUs, "cpus", 0, "number of CPUs to use for a sweep (set to 0 for max CPUs)")
	flag.BoolVar(&quiet, "quiet", false, "do not print the telemetry")
	flag.BoolVar(&verbose, "verbose", false, "log the descent status")
}

func main() {
	flag.Parse()
	conf := lander.Beresheet()
	disp := lander.Dispersion{}
	if scenario != defaultScenario {
		var err error
		if conf, err = lander.LoadConfig(scenario); err != nil {
			log.Fatal(err)
		}
		disp, runs = readSweep(scenario, runs)
	}

	var logger kitlog.Logger = kitlog.NewNopLogger()
	if verbose {
		logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	}

	if runs > 0 {
		results, err := lander.Sweep(conf, disp, runs, numCPUs, logger)
		if err != nil {
			log.Fatal(err)
		}
		for _, r := range results {
			fmt.Println(r)
		}
		fmt.Println(lander.Summarize(results))
		return
	}

	var tlm io.Writer = os.Stdout
	if quiet {
		tlm = nil
	} else {
		fmt.Println(lander.Header())
	}
	rslt := lander.NewSimulator(conf, tlm, logger).Run()
	if msg := rslt.Outcome.Message(); msg != "" {
		fmt.Println(msg)
	}
	fmt.Println(rslt)
	if rslt.Outcome.Crashed() {
		os.Exit(1)
	}
}

// readSweep reads the dispersion and the number of runs of the scenario.
// A positive flagRuns takes precedence over the scenario.
func readSweep(path string, flagRuns int) (lander.Dispersion, int) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("%s: %s", path, err)
	}
	disp := lander.Dispersion{
		Altitude:           v.GetFloat64("sweep.altitude"),
		VerticalVelocity:   v.GetFloat64("sweep.vy"),
		HorizontalVelocity: v.GetFloat64("sweep.vx"),
		Angle:              v.GetFloat64("sweep.angle"),
		FuelMass:           v.GetFloat64("sweep.fuel"),
	}
	if flagRuns > 0 {
		return disp, flagRuns
	}
	return disp, v.GetInt("sweep.runs")
}
