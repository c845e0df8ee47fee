package life

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelThreshold is the side length from which AutoSweeper switches to
// the parallel implementation.
const ParallelThreshold = 128

// Sweeper advances a grid by one generation. Sweep reads only cur and
// writes every cell of next; cur and next must be distinct buffers of the
// same side length.
type Sweeper interface {
	Name() string
	Sweep(cur, next *Grid)
}

// sweepRows applies the rule to rows [start, end) of cur, writing into next.
func sweepRows(cur, next *Grid, start, end int) {
	l := cur.L
	var nb [8]Coord
	for i := start; i < end; i++ {
		for j := 0; j < l; j++ {
			Neighbors(i, j, l, &nb)
			idx := i*l + j
			next.Cells[idx] = Next(cur.Cells[idx], CountAlive(cur, &nb))
		}
	}
}

func checkBuffers(cur, next *Grid) {
	if cur.L != next.L || len(next.Cells) != len(cur.Cells) {
		panic(fmt.Sprintf("life: sweep between grids of side %d and %d", cur.L, next.L))
	}
	if len(cur.Cells) > 0 && &cur.Cells[0] == &next.Cells[0] {
		panic("life: sweep source and destination alias the same buffer")
	}
}

type SerialSweeper struct{}

func NewSerialSweeper() *SerialSweeper { return &SerialSweeper{} }

func (s *SerialSweeper) Name() string { return "serial" }

func (s *SerialSweeper) Sweep(cur, next *Grid) {
	checkBuffers(cur, next)
	sweepRows(cur, next, 0, cur.L)
}

// ParallelSweeper splits the grid into row bands and sweeps them
// concurrently. Workers read only cur and each writes a disjoint band of
// next; Sweep returns after every band is done.
type ParallelSweeper struct {
	workers int
}

// NewParallelSweeper returns a sweeper with the given worker count.
// workers <= 0 means runtime.NumCPU().
func NewParallelSweeper(workers int) *ParallelSweeper {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &ParallelSweeper{workers: workers}
}

func (p *ParallelSweeper) Name() string { return "parallel" }

func (p *ParallelSweeper) Workers() int { return p.workers }

func (p *ParallelSweeper) Sweep(cur, next *Grid) {
	checkBuffers(cur, next)

	l := cur.L
	workers := min(p.workers, l)
	if workers <= 1 {
		sweepRows(cur, next, 0, l)
		return
	}

	var (
		eg         errgroup.Group
		rowsPerJob = (l + workers - 1) / workers
	)
	for w := range workers {
		start := w * rowsPerJob
		end := min(start+rowsPerJob, l)
		if start >= l {
			break
		}
		eg.Go(func() error {
			sweepRows(cur, next, start, end)
			return nil
		})
	}
	// bands never fail; Wait is the barrier before the caller swaps buffers
	_ = eg.Wait()
}

// AutoSweeper picks the parallel sweeper for large grids and the serial one otherwise.
func AutoSweeper(l, workers int) Sweeper {
	if l >= ParallelThreshold {
		return NewParallelSweeper(workers)
	}
	return NewSerialSweeper()
}
