package life_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/golsim/internal/life"
)

type frameLog struct {
	frames []int
	sweeps []int
	pops   []int
}

func (f *frameLog) OnFrame(frame, sweeps int, g *life.Grid) {
	f.frames = append(f.frames, frame)
	f.sweeps = append(f.sweeps, sweeps)
	f.pops = append(f.pops, g.Population())
}

type countingSweeper struct {
	life.Sweeper
	calls int
}

func (c *countingSweeper) Sweep(cur, next *life.Grid) {
	c.calls++
	c.Sweeper.Sweep(cur, next)
}

type frameCounter struct{ n int }

func (m *frameCounter) Name() string            { return "frames" }
func (m *frameCounter) Observe(int, *life.Grid) { m.n++ }
func (m *frameCounter) Value() float64          { return float64(m.n) }
func (m *frameCounter) Reset()                  { m.n = 0 }

var _ = Describe("Simulator", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("records a still life in every frame", func() {
		initial := gridWith(4, block(1, 1)...)
		ts := life.NewTimeSeries(4, 5)
		sim := life.NewSimulator(life.NewSerialSweeper())

		Expect(sim.Run(ctx, initial, ts, 5, 3)).To(Succeed())
		Expect(ts.Shape()).To(Equal([3]int{4, 4, 6}))
		for k := 0; k < ts.Frames; k++ {
			Expect(ts.Frame(k).Equal(initial)).To(BeTrue(), "frame %d", k)
		}
		Expect(sim.Phase()).To(Equal(life.Done))
		Expect(sim.Sweeps()).To(Equal(15))
	})

	It("stores the unmodified initial grid in slot 0", func() {
		initial := randomGrid(12, 3)
		orig := initial.Clone()
		ts := life.NewTimeSeries(12, 4)

		Expect(life.NewSimulator(nil).Run(ctx, initial, ts, 4, 2)).To(Succeed())
		Expect(ts.Frame(0).Equal(orig)).To(BeTrue())
		Expect(initial.Equal(orig)).To(BeTrue())
	})

	It("stores the grid after k*interval sweeps in slot k", func() {
		initial := randomGrid(10, 11)
		const nFrames, interval = 4, 3
		ts := life.NewTimeSeries(10, nFrames)
		Expect(life.NewSimulator(nil).Run(ctx, initial, ts, nFrames, interval)).To(Succeed())

		cur, next := initial.Clone(), life.NewGrid(10)
		sw := life.NewSerialSweeper()
		for k := 1; k <= nFrames; k++ {
			for range interval {
				sw.Sweep(cur, next)
				cur, next = next, cur
			}
			Expect(ts.Frame(k).Equal(cur)).To(BeTrue(), "frame %d", k)
		}
	})

	It("performs exactly nFrames*interval sweeps", func() {
		sw := &countingSweeper{Sweeper: life.NewSerialSweeper()}
		ts := life.NewTimeSeries(6, 7)
		Expect(life.NewSimulator(sw).Run(ctx, randomGrid(6, 1), ts, 7, 4)).To(Succeed())
		Expect(sw.calls).To(Equal(28))
	})

	It("records only the initial grid when nFrames is zero", func() {
		initial := gridWith(4, life.Coord{0, 0})
		ts := life.NewTimeSeries(4, 0)
		Expect(life.NewSimulator(nil).Run(ctx, initial, ts, 0, 1)).To(Succeed())
		Expect(ts.Frames).To(Equal(1))
		Expect(ts.Frame(0).Equal(initial)).To(BeTrue())
	})

	It("kills an isolated cell and keeps the grid empty", func() {
		ts := life.NewTimeSeries(5, 3)
		Expect(life.NewSimulator(nil).Run(ctx, gridWith(5, life.Coord{2, 2}), ts, 3, 1)).To(Succeed())
		Expect(ts.Frame(0).Population()).To(Equal(1))
		for k := 1; k < ts.Frames; k++ {
			Expect(ts.Frame(k).Population()).To(BeZero())
		}
	})

	It("notifies observers and metrics for every frame", func() {
		log := &frameLog{}
		metric := &frameCounter{}
		sim := life.NewSimulator(nil)
		sim.AddObserver(log)
		sim.AddMetric(metric)

		ts := life.NewTimeSeries(4, 3)
		Expect(sim.Run(ctx, gridWith(4, block(0, 0)...), ts, 3, 2)).To(Succeed())
		Expect(log.frames).To(Equal([]int{0, 1, 2, 3}))
		Expect(log.sweeps).To(Equal([]int{0, 2, 4, 6}))
		Expect(log.pops).To(Equal([]int{4, 4, 4, 4}))
		Expect(sim.Metrics()).To(HaveKeyWithValue("frames", 4.0))
	})

	It("resets metrics between runs", func() {
		metric := &frameCounter{}
		sim := life.NewSimulator(nil)
		sim.AddMetric(metric)
		for range 2 {
			Expect(sim.Run(ctx, life.NewGrid(3), life.NewTimeSeries(3, 2), 2, 1)).To(Succeed())
		}
		Expect(metric.n).To(Equal(3))
	})

	It("stops between frames when the context is canceled", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		ts := life.NewTimeSeries(4, 3)
		initial := gridWith(4, block(1, 1)...)

		err := life.NewSimulator(nil).Run(cctx, initial, ts, 3, 1)
		Expect(err).To(MatchError(context.Canceled))
		var fe *life.FrameError
		Expect(errors.As(err, &fe)).To(BeTrue())
		Expect(fe.Frame).To(Equal(1))
		Expect(ts.Frame(0).Equal(initial)).To(BeTrue())
	})

	DescribeTable("rejects invalid configurations",
		func(initial *life.Grid, ts *life.TimeSeries, nFrames, interval int) {
			err := life.NewSimulator(nil).Run(ctx, initial, ts, nFrames, interval)
			Expect(err).To(MatchError(life.ErrInvalidConfig))
		},
		Entry("nil grid", nil, life.NewTimeSeries(4, 1), 1, 1),
		Entry("zero length", life.NewGrid(0), life.NewTimeSeries(0, 1), 1, 1),
		Entry("zero interval", life.NewGrid(4), life.NewTimeSeries(4, 1), 1, 0),
		Entry("negative frames", life.NewGrid(4), life.NewTimeSeries(4, 1), -1, 1),
		Entry("too few slots", life.NewGrid(4), life.NewTimeSeries(4, 1), 2, 1),
		Entry("wrong side", life.NewGrid(4), life.NewTimeSeries(5, 1), 1, 1),
		Entry("nil series", life.NewGrid(4), nil, 1, 1),
		Entry("cell out of range", &life.Grid{L: 2, Cells: []life.Cell{0, 2, 0, 1}}, life.NewTimeSeries(2, 1), 1, 1),
	)

	It("reports shape mismatches distinctly", func() {
		err := life.NewSimulator(nil).Run(ctx, life.NewGrid(4), life.NewTimeSeries(4, 2), 3, 1)
		Expect(err).To(MatchError(life.ErrShapeMismatch))
	})
})

var _ = Describe("Interval", func() {
	DescribeTable("samples sweeps evenly",
		func(sweeps, frames, want int) {
			Expect(life.Interval(sweeps, frames)).To(Equal(want))
		},
		Entry("equal counts", 100, 100, 1),
		Entry("more sweeps", 1000, 100, 10),
		Entry("integer division", 250, 100, 2),
		Entry("fewer sweeps", 10, 100, 1),
		Entry("no frames", 10, 0, 10),
	)
})
