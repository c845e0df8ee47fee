package experiment

import (
	"context"
	"time"

	"github.com/san-kum/golsim/internal/config"
	"github.com/san-kum/golsim/internal/life"
	"github.com/san-kum/golsim/internal/pattern"
)

type Result struct {
	Initial  *life.Grid
	Series   *life.TimeSeries
	Metrics  map[string]float64
	Sweeper  string
	Interval int
	Sweeps   int
	Elapsed  time.Duration
}

type Experiment struct {
	cfg       *config.Config
	registry  *Registry
	observers []life.Observer
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg, registry: NewRegistry()}
}

// WithRegistry swaps the registry used to resolve the sweeper.
func (e *Experiment) WithRegistry(r *Registry) *Experiment {
	e.registry = r
	return e
}

func (e *Experiment) AddObserver(o life.Observer) { e.observers = append(e.observers, o) }

// InitialGrid builds the starting grid: the named pattern centred on the
// grid, or a seeded random fill when no pattern is set.
func (e *Experiment) InitialGrid() (*life.Grid, error) {
	if e.cfg.Pattern == "" {
		return pattern.Random(e.cfg.GridLength, e.cfg.Density, e.cfg.SeedValue()), nil
	}
	p, err := pattern.Named(e.cfg.Pattern)
	if err != nil {
		return nil, err
	}
	return pattern.Centered(e.cfg.GridLength, p), nil
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	initial, err := e.InitialGrid()
	if err != nil {
		return nil, err
	}

	sweeper, err := e.registry.GetSweeper(e.cfg.Sweeper, e.cfg.GridLength, e.cfg.Workers)
	if err != nil {
		return nil, err
	}

	sim := life.NewSimulator(sweeper)
	for _, m := range e.registry.DefaultMetrics() {
		sim.AddMetric(m)
	}
	for _, o := range e.observers {
		sim.AddObserver(o)
	}

	interval := e.cfg.Interval()
	series := life.NewTimeSeries(e.cfg.GridLength, e.cfg.Frames)

	start := time.Now()
	if err := sim.Run(ctx, initial, series, e.cfg.Frames, interval); err != nil {
		return nil, err
	}

	return &Result{
		Initial:  initial,
		Series:   series,
		Metrics:  sim.Metrics(),
		Sweeper:  sweeper.Name(),
		Interval: interval,
		Sweeps:   sim.Sweeps(),
		Elapsed:  time.Since(start),
	}, nil
}

// FrameProgress adapts a done/total callback to a simulator observer.
type FrameProgress struct {
	total  int
	report func(done, total int)
}

// NewFrameProgress reports frames 1..total; the initial frame is not counted.
func NewFrameProgress(total int, report func(done, total int)) *FrameProgress {
	return &FrameProgress{total: total, report: report}
}

func (p *FrameProgress) OnFrame(frame, sweeps int, g *life.Grid) {
	if frame > 0 {
		p.report(frame, p.total)
	}
}
