package metrics

import "github.com/san-kum/golsim/internal/life"

// Activity is the mean fraction of cells that changed between consecutive
// recorded frames. A still life scores 0.
type Activity struct {
	prev  []life.Cell
	sum   float64
	count int
}

func NewActivity() *Activity { return &Activity{} }

func (a *Activity) Name() string { return "activity" }

func (a *Activity) Observe(frame int, g *life.Grid) {
	if a.prev != nil && len(a.prev) == len(g.Cells) && len(g.Cells) > 0 {
		changed := 0
		for i, c := range g.Cells {
			if a.prev[i] != c {
				changed++
			}
		}
		a.sum += float64(changed) / float64(len(g.Cells))
		a.count++
	}
	if len(a.prev) != len(g.Cells) {
		a.prev = make([]life.Cell, len(g.Cells))
	}
	copy(a.prev, g.Cells)
}

func (a *Activity) Value() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

func (a *Activity) Reset() {
	a.prev = nil
	a.sum = 0
	a.count = 0
}

// Defaults returns the metrics recorded for every run.
func Defaults() []life.Metric {
	return []life.Metric{
		NewPopulation(),
		NewPeakPopulation(),
		NewMeanDensity(),
		NewActivity(),
	}
}
