package life

import (
	"context"
	"math/rand/v2"
	"testing"
)

func benchGrid(l int) *Grid {
	r := rand.New(rand.NewPCG(1, 0))
	g := NewGrid(l)
	for i := range g.Cells {
		g.Cells[i] = Cell(r.IntN(2))
	}
	return g
}

func benchmarkSweep(b *testing.B, sw Sweeper, l int) {
	cur, next := benchGrid(l), NewGrid(l)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sw.Sweep(cur, next)
		cur, next = next, cur
	}
}

func BenchmarkSerialSweep64(b *testing.B)    { benchmarkSweep(b, NewSerialSweeper(), 64) }
func BenchmarkSerialSweep512(b *testing.B)   { benchmarkSweep(b, NewSerialSweeper(), 512) }
func BenchmarkParallelSweep512(b *testing.B) { benchmarkSweep(b, NewParallelSweeper(0), 512) }

func BenchmarkSimulatorRun(b *testing.B) {
	initial := benchGrid(64)
	ts := NewTimeSeries(64, 100)
	s := NewSimulator(NewSerialSweeper())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Run(context.Background(), initial, ts, 100, 1); err != nil {
			b.Fatal(err)
		}
	}
}
