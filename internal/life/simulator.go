package life

import "context"

// Phase is the simulator's position in a run.
type Phase int

const (
	Initializing Phase = iota
	Sweeping
	Recording
	Done
)

func (p Phase) String() string {
	switch p {
	case Initializing:
		return "initializing"
	case Sweeping:
		return "sweeping"
	case Recording:
		return "recording"
	case Done:
		return "done"
	}
	return "unknown"
}

// Observer is notified after each frame is recorded, frame 0 included.
// g is only valid for the duration of the call.
type Observer interface {
	OnFrame(frame, sweeps int, g *Grid)
}

// Metric accumulates a scalar over the recorded frames of a run.
type Metric interface {
	Name() string
	Observe(frame int, g *Grid)
	Value() float64
	Reset()
}

type Simulator struct {
	sweeper   Sweeper
	metrics   []Metric
	observers []Observer
	phase     Phase
	sweeps    int
}

func NewSimulator(sweeper Sweeper) *Simulator {
	if sweeper == nil {
		sweeper = NewSerialSweeper()
	}
	return &Simulator{
		sweeper:   sweeper,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Sweeper() Sweeper { return s.sweeper }
func (s *Simulator) Phase() Phase     { return s.phase }

// Sweeps returns the number of sweeps performed by the last Run.
func (s *Simulator) Sweeps() int { return s.sweeps }

// Metrics returns the value of every registered metric keyed by name.
func (s *Simulator) Metrics() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Run records nFrames frames into series, each interval sweeps apart.
// series[:,:,0] is a copy of initial and series[:,:,k] is the grid after
// k*interval sweeps. initial is not modified.
//
// All preconditions are checked before any work and reported as errors
// wrapping ErrInvalidConfig. ctx is consulted between frames; a canceled run
// returns a *FrameError and leaves the frames recorded so far in series.
func (s *Simulator) Run(ctx context.Context, initial *Grid, series *TimeSeries, nFrames, interval int) error {
	if err := validateRun(initial, series, nFrames, interval); err != nil {
		return err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	s.phase = Initializing
	s.sweeps = 0
	cur := initial.Clone()
	next := NewGrid(initial.L)
	series.record(0, cur)
	s.notify(0, cur)

	for f := 1; f <= nFrames; f++ {
		select {
		case <-ctx.Done():
			return &FrameError{Frame: f, Sweeps: s.sweeps, Wrapped: ctx.Err()}
		default:
		}

		s.phase = Sweeping
		for range interval {
			s.sweeper.Sweep(cur, next)
			cur, next = next, cur
			s.sweeps++
		}

		s.phase = Recording
		series.record(f, cur)
		s.notify(f, cur)
	}

	s.phase = Done
	return nil
}

func (s *Simulator) notify(frame int, g *Grid) {
	for _, m := range s.metrics {
		m.Observe(frame, g)
	}
	for _, o := range s.observers {
		o.OnFrame(frame, s.sweeps, g)
	}
}

func validateRun(initial *Grid, series *TimeSeries, nFrames, interval int) error {
	if initial == nil {
		return invalidf("nil initial grid")
	}
	if err := initial.Validate(); err != nil {
		return err
	}
	if nFrames < 0 {
		return invalidf("frame count must be non-negative, got %d", nFrames)
	}
	if interval < 1 {
		return invalidf("interval must be at least 1, got %d", interval)
	}
	return series.checkShape(initial.L, nFrames)
}

// Interval is the sampling rate used by callers: max(1, nSweeps/nFrames).
func Interval(nSweeps, nFrames int) int {
	if nFrames <= 0 {
		return max(1, nSweeps)
	}
	return max(1, nSweeps/nFrames)
}
