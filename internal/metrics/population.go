package metrics

import "github.com/san-kum/golsim/internal/life"

// Population reports the live cell count of the last observed frame.
type Population struct {
	last int
}

func NewPopulation() *Population { return &Population{} }

func (p *Population) Name() string { return "population" }

func (p *Population) Observe(frame int, g *life.Grid) {
	p.last = g.Population()
}

func (p *Population) Value() float64 { return float64(p.last) }

func (p *Population) Reset() { p.last = 0 }

// PeakPopulation reports the largest live cell count over all frames.
type PeakPopulation struct {
	peak int
}

func NewPeakPopulation() *PeakPopulation { return &PeakPopulation{} }

func (p *PeakPopulation) Name() string { return "peak_population" }

func (p *PeakPopulation) Observe(frame int, g *life.Grid) {
	p.peak = max(p.peak, g.Population())
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }

func (p *PeakPopulation) Reset() { p.peak = 0 }

// MeanDensity is the live fraction of the grid averaged over frames.
type MeanDensity struct {
	sum   float64
	count int
}

func NewMeanDensity() *MeanDensity { return &MeanDensity{} }

func (m *MeanDensity) Name() string { return "mean_density" }

func (m *MeanDensity) Observe(frame int, g *life.Grid) {
	if len(g.Cells) == 0 {
		return
	}
	m.sum += float64(g.Population()) / float64(len(g.Cells))
	m.count++
}

func (m *MeanDensity) Value() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

func (m *MeanDensity) Reset() {
	m.sum = 0
	m.count = 0
}
