// Package batch generates many independent clouds and writes each one to
// disk, either one after another or with one goroutine per cloud.
package batch

import (
	"context"
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"cloud-gen/internal/cloud"
	"cloud-gen/internal/output"
	rng "cloud-gen/pkg/core"
)

// ErrInvalidCount is returned by Run for a negative cloud count.
var ErrInvalidCount = errors.New("cloud count must be a non-negative integer")

// Writer persists a finished raster.
type Writer interface {
	Save(path string, img image.Image) error
}

// Options configures a batch run.
type Options struct {
	Count  int
	Dir    string
	Params cloud.Params
	Seed   int64

	// Parallel runs every job in its own goroutine. Workers, when positive,
	// caps how many run at once.
	Parallel bool
	Workers  int
}

// Job is one cloud to generate.
type Job struct {
	Index int
	Path  string
	Seed  int64
}

// RNG returns the random stream owned by this job.
func (j Job) RNG() *rng.RNG {
	return rng.NewStream(j.Seed, uint64(j.Index))
}

// Report summarizes a completed batch.
type Report struct {
	Paths   []string
	Elapsed time.Duration
}

// Path returns the output file for the cloud with the given index.
func Path(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf("cloud%d.png", index))
}

// Plan lists the jobs a run with opts would execute.
func Plan(opts Options) []Job {
	if opts.Count <= 0 {
		return nil
	}
	jobs := make([]Job, opts.Count)
	for i := range jobs {
		jobs[i] = Job{Index: i, Path: Path(opts.Dir, i), Seed: opts.Seed}
	}
	return jobs
}

// Run creates the output directory and generates opts.Count clouds. All log
// output goes through logger, whose entries must be written atomically; a
// *logrus.Logger satisfies that. The first save failure aborts the batch.
func Run(ctx context.Context, opts Options, w Writer, logger log.FieldLogger) (*Report, error) {
	start := time.Now()
	if opts.Count < 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "got %d", opts.Count)
	}
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}
	if err := output.EnsureDir(opts.Dir); err != nil {
		return nil, err
	}

	jobs := Plan(opts)
	report := &Report{Paths: make([]string, len(jobs))}

	if opts.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		if opts.Workers > 0 {
			g.SetLimit(opts.Workers)
		}
		for _, job := range jobs {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return runJob(job, opts.Params, w, logger)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for _, job := range jobs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := runJob(job, opts.Params, w, logger); err != nil {
				return nil, err
			}
		}
	}

	for i, job := range jobs {
		report.Paths[i] = job.Path
	}
	report.Elapsed = time.Since(start)
	logger.WithField("elapsed", report.Elapsed.Round(time.Millisecond)).
		Infof("generated %d clouds in %s", len(jobs), opts.Dir)
	return report, nil
}

func runJob(job Job, p cloud.Params, w Writer, logger log.FieldLogger) error {
	l := logger.WithField("job", job.Index)
	l.Info("generating cloud")

	c := cloud.Generate(p, job.RNG())
	step := p.Size / 10
	if step < 1 {
		step = 1
	}
	img := c.Render(func(row, rows int) {
		if row%step == 0 || row == rows {
			l.Debugf("rendered row %d/%d", row, rows)
		}
	})

	if err := w.Save(job.Path, img); err != nil {
		l.WithError(err).Error("save failed")
		return errors.Wrapf(err, "cloud %d", job.Index)
	}
	l.WithField("path", job.Path).Info("generated cloud")
	return nil
}
