package life_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/golsim/internal/life"
)

func randomGrid(l int, seed uint64) *life.Grid {
	r := rand.New(rand.NewPCG(seed, 0))
	g := life.NewGrid(l)
	for i := range g.Cells {
		g.Cells[i] = life.Cell(r.IntN(2))
	}
	return g
}

var _ = Describe("Sweepers", func() {
	sweepers := []life.Sweeper{
		life.NewSerialSweeper(),
		life.NewParallelSweeper(1),
		life.NewParallelSweeper(3),
		life.NewParallelSweeper(16),
	}

	for _, sw := range sweepers {
		Context(sw.Name(), func() {
			It("keeps a 2x2 block still", func() {
				cur := gridWith(6, block(2, 2)...)
				next := life.NewGrid(6)
				sw.Sweep(cur, next)
				Expect(next.Equal(cur)).To(BeTrue())
			})

			It("keeps a block straddling the wrap still", func() {
				cur := gridWith(5, life.Coord{4, 4}, life.Coord{4, 0}, life.Coord{0, 4}, life.Coord{0, 0})
				next := life.NewGrid(5)
				sw.Sweep(cur, next)
				Expect(next.Equal(cur)).To(BeTrue())
			})

			It("kills an isolated cell", func() {
				cur := gridWith(5, life.Coord{2, 2})
				next := life.NewGrid(5)
				sw.Sweep(cur, next)
				Expect(next.Population()).To(BeZero())
			})

			It("keeps an empty grid empty", func() {
				cur, next := life.NewGrid(7), life.NewGrid(7)
				for range 10 {
					sw.Sweep(cur, next)
					cur, next = next, cur
				}
				Expect(cur.Population()).To(BeZero())
			})

			It("flips a blinker", func() {
				cur := gridWith(5, life.Coord{1, 2}, life.Coord{2, 2}, life.Coord{3, 2})
				next := life.NewGrid(5)
				sw.Sweep(cur, next)
				Expect(next.Equal(gridWith(5, life.Coord{2, 1}, life.Coord{2, 2}, life.Coord{2, 3}))).To(BeTrue())
			})

			It("overwrites stale values in the destination", func() {
				cur := life.NewGrid(4)
				next := life.NewGrid(4)
				for i := range next.Cells {
					next.Cells[i] = life.Alive
				}
				sw.Sweep(cur, next)
				Expect(next.Population()).To(BeZero())
			})

			It("is deterministic", func() {
				cur := randomGrid(33, 7)
				a, b := life.NewGrid(33), life.NewGrid(33)
				sw.Sweep(cur, a)
				sw.Sweep(cur, b)
				Expect(a.Equal(b)).To(BeTrue())
			})

			It("matches the serial sweeper", func() {
				cur := randomGrid(41, 99)
				want, got := life.NewGrid(41), life.NewGrid(41)
				life.NewSerialSweeper().Sweep(cur, want)
				sw.Sweep(cur, got)
				Expect(got.Cells).To(Equal(want.Cells))
			})

			It("rejects aliased buffers", func() {
				g := gridWith(4, block(1, 1)...)
				Expect(func() { sw.Sweep(g, g) }).To(Panic())
			})
		})
	}

	It("births a dead cell with exactly three neighbours", func() {
		for _, l := range []int{3, 4, 8, 16} {
			cur := gridWith(l, life.Coord{0, 1}, life.Coord{1, 0}, life.Coord{l - 1, l - 1})
			next := life.NewGrid(l)
			life.NewSerialSweeper().Sweep(cur, next)
			Expect(next.At(0, 0)).To(Equal(life.Alive), "side %d", l)
		}
	})

	It("selects the parallel sweeper for large grids", func() {
		Expect(life.AutoSweeper(life.ParallelThreshold, 2).Name()).To(Equal("parallel"))
		Expect(life.AutoSweeper(life.ParallelThreshold-1, 2).Name()).To(Equal("serial"))
	})
})
