package life_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/golsim/internal/life"
)

var _ = Describe("Next", func() {
	DescribeTable("live cells",
		func(n int, want life.Cell) {
			Expect(life.Next(life.Alive, n)).To(Equal(want))
		},
		Entry("0 neighbours dies", 0, life.Dead),
		Entry("1 neighbour dies", 1, life.Dead),
		Entry("2 neighbours survives", 2, life.Alive),
		Entry("3 neighbours survives", 3, life.Alive),
		Entry("4 neighbours dies", 4, life.Dead),
		Entry("8 neighbours dies", 8, life.Dead),
	)

	DescribeTable("dead cells",
		func(n int, want life.Cell) {
			Expect(life.Next(life.Dead, n)).To(Equal(want))
		},
		Entry("0 neighbours stays dead", 0, life.Dead),
		Entry("2 neighbours stays dead", 2, life.Dead),
		Entry("3 neighbours is born", 3, life.Alive),
		Entry("4 neighbours stays dead", 4, life.Dead),
		Entry("8 neighbours stays dead", 8, life.Dead),
	)

	It("is defined for every state and count", func() {
		for _, state := range []life.Cell{life.Dead, life.Alive} {
			for n := 0; n <= 8; n++ {
				Expect(life.Next(state, n)).To(BeElementOf(life.Dead, life.Alive))
			}
		}
	})
})
