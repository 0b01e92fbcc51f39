package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"cloud-gen/internal/cloud"
	"cloud-gen/internal/logging"
	"cloud-gen/internal/sweep"
)

func main() {
	size := pflag.Int("size", 200, "raster side length for sweep runs")
	samples := pflag.Int("samples", 4, "clouds rendered per parameter set")
	workers := pflag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := pflag.Int64("seed", 1337, "seed shared by every parameter set")
	top := pflag.Int("top", 5, "results to print")
	spreads := pflag.Float64Slice("spread", []float64{20, 40, 60}, "spread values to try")
	densities := pflag.IntSlice("density", []int{4, 8, 16}, "circle counts to try")
	mins := pflag.Float64Slice("fluffyness-min", []float64{10, 16, 24}, "minimum radii to try")
	pflag.Parse()

	logger := logging.New(os.Stdout, false)

	base := cloud.DefaultParams()
	base.Size = *size
	scale := float64(*size) / float64(cloud.DefaultParams().Size)
	base.FluffynessMag *= scale

	sets := sweep.Grid(base, sweep.Axes{Spread: *spreads, Density: *densities, FluffynessMin: *mins})
	for _, p := range sets {
		if err := p.Validate(); err != nil {
			logger.WithError(err).Fatal("invalid parameter set")
		}
	}

	logger.WithFields(log.Fields{"workers": *workers, "samples": *samples}).
		Infof("Sweeping %d parameter sets", len(sets))

	start := time.Now()
	results := sweep.Run(sets, *seed, *samples, *workers)
	elapsed := time.Since(start)

	logger.Infof("Top %d results (elapsed %s):", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		logger.Info(fmt.Sprintf("%2d) %s", i+1, results[i]))
	}
}
