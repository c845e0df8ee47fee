package experiment

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/golsim/internal/config"
)

// Ensemble repeats one configuration over consecutive seeds.
type Ensemble struct {
	cfg       *config.Config
	numRuns   int
	seedStart int64
	limit     int
}

// NewEnsemble runs numRuns copies of cfg with seeds seedStart, seedStart+1, ...
// At most limit runs are in flight; limit <= 0 means no limit.
func NewEnsemble(cfg *config.Config, numRuns int, seedStart int64, limit int) *Ensemble {
	return &Ensemble{cfg: cfg, numRuns: numRuns, seedStart: seedStart, limit: limit}
}

func (e *Ensemble) Run(ctx context.Context) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	g, ctx := errgroup.WithContext(ctx)
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}
	for i := 0; i < e.numRuns; i++ {
		cfgCopy := *e.cfg
		cfgCopy.SetSeed(e.seedStart + int64(i))
		g.Go(func() error {
			res, err := New(&cfgCopy).Run(ctx)
			results[i] = res
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type DensitySweep struct {
	Base      *config.Config
	Min, Max  float64
	Steps     int
	Runs      int
	SeedStart int64
	Limit     int
}

type DensityPoint struct {
	Density float64
	// MeanFinal is the mean live fraction of the last frame over the runs.
	MeanFinal float64
	// Survived is the fraction of runs still populated at the last frame.
	Survived float64
}

// RunDensitySweep runs an ensemble at each initial density from Min to Max.
// progress, if set, is called after each density completes.
func RunDensitySweep(ctx context.Context, sweep *DensitySweep, progress func(done, total int)) ([]DensityPoint, error) {
	points := make([]DensityPoint, 0, sweep.Steps)

	step := 0.0
	if sweep.Steps > 1 {
		step = (sweep.Max - sweep.Min) / float64(sweep.Steps-1)
	}

	for i := 0; i < sweep.Steps; i++ {
		cfg := *sweep.Base
		cfg.Pattern = ""
		cfg.Density = sweep.Min + float64(i)*step

		results, err := NewEnsemble(&cfg, sweep.Runs, sweep.SeedStart, sweep.Limit).Run(ctx)
		if err != nil {
			return nil, err
		}

		cells := float64(cfg.GridLength * cfg.GridLength)
		point := DensityPoint{Density: cfg.Density}
		for _, res := range results {
			pop := res.Series.Frame(res.Series.Frames - 1).Population()
			point.MeanFinal += float64(pop) / cells
			if pop > 0 {
				point.Survived++
			}
		}
		if len(results) > 0 {
			point.MeanFinal /= float64(len(results))
			point.Survived /= float64(len(results))
		}
		points = append(points, point)

		if progress != nil {
			progress(i+1, sweep.Steps)
		}
	}

	return points, nil
}
