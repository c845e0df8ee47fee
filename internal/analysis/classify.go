package analysis

import (
	"hash/fnv"

	"github.com/san-kum/golsim/internal/life"
)

type Kind string

const (
	KindEmpty       Kind = "empty"
	KindExtinct     Kind = "extinct"
	KindStillLife   Kind = "still-life"
	KindOscillating Kind = "oscillating"
	KindEvolving    Kind = "evolving"
)

// Report summarises a time series.
type Report struct {
	Kind        Kind
	Populations []int
	// ExtinctAt is the first frame with no live cells, -1 if none.
	ExtinctAt int
	// CycleStart is the first frame of the first repeated state and Period
	// the repeat distance in frames; both -1 when no repeat was recorded.
	CycleStart int
	Period     int
}

func Populations(ts *life.TimeSeries) []int {
	pops := make([]int, ts.Frames)
	for k := range pops {
		pops[k] = ts.Frame(k).Population()
	}
	return pops
}

// Classify scans the frames in order and stops at the first repeated state.
func Classify(ts *life.TimeSeries) Report {
	r := Report{
		Kind:        KindEvolving,
		Populations: Populations(ts),
		ExtinctAt:   -1,
		CycleStart:  -1,
		Period:      -1,
	}

	seen := make(map[uint64][]int)
	for k := 0; k < ts.Frames; k++ {
		if r.ExtinctAt < 0 && r.Populations[k] == 0 {
			r.ExtinctAt = k
		}
		if r.CycleStart >= 0 {
			continue
		}
		frame := ts.Frame(k)
		h := hashFrame(frame)
		for _, prev := range seen[h] {
			// hash collisions are resolved by exact comparison
			if ts.Frame(prev).Equal(frame) {
				r.CycleStart, r.Period = prev, k-prev
				break
			}
		}
		seen[h] = append(seen[h], k)
	}

	switch {
	case r.ExtinctAt == 0:
		r.Kind = KindEmpty
	case r.ExtinctAt > 0:
		r.Kind = KindExtinct
	case r.Period == 1:
		r.Kind = KindStillLife
	case r.Period > 1:
		r.Kind = KindOscillating
	}
	return r
}

func hashFrame(g *life.Grid) uint64 {
	buf := make([]byte, len(g.Cells))
	for i, c := range g.Cells {
		buf[i] = byte(c)
	}
	h := fnv.New64a()
	h.Write(buf)
	return h.Sum64()
}
