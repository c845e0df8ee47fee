package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/golsim/internal/life"
)

var _ = Describe("Wrap", func() {
	DescribeTable("maps coordinates onto the torus",
		func(c, l, want int) {
			Expect(life.Wrap(c, l)).To(Equal(want))
		},
		Entry("inside", 3, 8, 3),
		Entry("minus one", -1, 8, 7),
		Entry("one past the end", 8, 8, 0),
		Entry("far negative", -17, 8, 7),
		Entry("side of one", -1, 1, 0),
	)
})

var _ = Describe("Neighbors", func() {
	It("wraps the corner in all four directions", func() {
		const l = 5
		var nb [8]life.Coord
		life.Neighbors(0, 0, l, &nb)

		Expect(nb).To(ConsistOf(
			life.Coord{0, 1}, life.Coord{0, l - 1},
			life.Coord{1, 0}, life.Coord{l - 1, 0},
			life.Coord{l - 1, 1}, life.Coord{l - 1, l - 1},
			life.Coord{1, 1}, life.Coord{1, l - 1},
		))
	})

	It("follows the offset table order", func() {
		var nb [8]life.Coord
		life.Neighbors(2, 2, 5, &nb)
		for n, off := range life.Offsets {
			Expect(nb[n]).To(Equal(life.Coord{2 + off.Row, 2 + off.Col}))
		}
	})

	It("never returns the cell itself on grids of side 3 or more", func() {
		var nb [8]life.Coord
		for l := 3; l <= 6; l++ {
			for i := 0; i < l; i++ {
				for j := 0; j < l; j++ {
					life.Neighbors(i, j, l, &nb)
					Expect(nb).NotTo(ContainElement(life.Coord{i, j}))
				}
			}
		}
	})
})

var _ = Describe("CountAlive", func() {
	It("counts live neighbours across the wrap", func() {
		g := gridWith(4, life.Coord{3, 3}, life.Coord{0, 3}, life.Coord{3, 0}, life.Coord{2, 2})
		var nb [8]life.Coord
		life.Neighbors(0, 0, 4, &nb)
		Expect(life.CountAlive(g, &nb)).To(Equal(3))
	})

	It("is zero on an empty grid", func() {
		var nb [8]life.Coord
		life.Neighbors(1, 1, 4, &nb)
		Expect(life.CountAlive(life.NewGrid(4), &nb)).To(BeZero())
	})
})
