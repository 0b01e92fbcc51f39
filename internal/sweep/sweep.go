// Package sweep evaluates grids of cloud parameters by rendering sample
// clouds and measuring how much of the raster they cover.
package sweep

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"cloud-gen/internal/cloud"
	"cloud-gen/pkg/core"
)

// Axes lists the values to combine. Empty axes keep the base value.
type Axes struct {
	Spread        []float64
	Density       []int
	FluffynessMin []float64
}

// Result aggregates the stats of every sample rendered for one parameter set.
type Result struct {
	Params    cloud.Params
	Coverage  float64
	MeanAlpha float64
	MaxAlpha  uint8
}

func (r Result) String() string {
	return fmt.Sprintf("spread=%g density=%d fluffMin=%g coverage=%.3f meanAlpha=%.2f maxAlpha=%d",
		r.Params.Spread, r.Params.Density, r.Params.FluffynessMin, r.Coverage, r.MeanAlpha, r.MaxAlpha)
}

// Grid returns the cartesian product of axes applied over base.
func Grid(base cloud.Params, axes Axes) []cloud.Params {
	spreads := axes.Spread
	if len(spreads) == 0 {
		spreads = []float64{base.Spread}
	}
	densities := axes.Density
	if len(densities) == 0 {
		densities = []int{base.Density}
	}
	mins := axes.FluffynessMin
	if len(mins) == 0 {
		mins = []float64{base.FluffynessMin}
	}

	var sets []cloud.Params
	for _, spread := range spreads {
		for _, density := range densities {
			for _, fluff := range mins {
				p := base
				p.Spread = spread
				p.Density = density
				p.FluffynessMin = fluff
				sets = append(sets, p)
			}
		}
	}
	return sets
}

// Evaluate renders samples clouds for p, using streams 0..samples-1 of seed.
func Evaluate(p cloud.Params, seed int64, samples int) Result {
	res := Result{Params: p}
	if samples <= 0 {
		return res
	}
	for i := 0; i < samples; i++ {
		img := cloud.Generate(p, core.NewStream(seed, uint64(i))).Render(nil)
		s := cloud.Measure(img)
		res.Coverage += s.Coverage()
		res.MeanAlpha += s.MeanAlpha
		if s.MaxAlpha > res.MaxAlpha {
			res.MaxAlpha = s.MaxAlpha
		}
	}
	res.Coverage /= float64(samples)
	res.MeanAlpha /= float64(samples)
	return res
}

// Run evaluates every set on a pool of workers and returns the results
// ordered by descending coverage.
func Run(sets []cloud.Params, seed int64, samples, workers int) []Result {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan cloud.Params)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range jobs {
				results <- Evaluate(p, seed, samples)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, p := range sets {
			jobs <- p
		}
		close(jobs)
	}()

	all := make([]Result, 0, len(sets))
	for res := range results {
		all = append(all, res)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Coverage != all[j].Coverage {
			return all[i].Coverage > all[j].Coverage
		}
		return all[i].MeanAlpha > all[j].MeanAlpha
	})
	return all
}
