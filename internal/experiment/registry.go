package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/golsim/internal/life"
	"github.com/san-kum/golsim/internal/metrics"
)

type Registry struct {
	sweepers map[string]func(l, workers int) life.Sweeper
}

func NewRegistry() *Registry {
	r := &Registry{
		sweepers: make(map[string]func(l, workers int) life.Sweeper),
	}

	r.sweepers["auto"] = life.AutoSweeper
	r.sweepers["serial"] = func(int, int) life.Sweeper { return life.NewSerialSweeper() }
	r.sweepers["parallel"] = func(_ int, workers int) life.Sweeper { return life.NewParallelSweeper(workers) }

	return r
}

// Register adds or replaces a sweeper constructor.
func (r *Registry) Register(name string, fn func(l, workers int) life.Sweeper) {
	r.sweepers[name] = fn
}

func (r *Registry) GetSweeper(name string, l, workers int) (life.Sweeper, error) {
	fn, ok := r.sweepers[name]
	if !ok {
		return nil, fmt.Errorf("unknown sweeper: %s", name)
	}
	return fn(l, workers), nil
}

func (r *Registry) ListSweepers() []string {
	names := make([]string, 0, len(r.sweepers))
	for name := range r.sweepers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics() []life.Metric {
	return metrics.Defaults()
}
