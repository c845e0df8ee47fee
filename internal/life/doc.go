// Package life implements Conway's Game of Life on a dense toroidal grid.
//
// The package is layered leaf-first:
//
//   - [Offsets]: the fixed Moore neighbourhood table
//   - [Neighbors]: wraps the 8 neighbour coordinates of a cell
//   - [CountAlive]: counts live neighbours in the current grid
//   - [Next]: the birth/survival rule for a single cell
//   - [Sweeper]: one full generation, current grid to next grid
//   - [Simulator]: records a [TimeSeries] of frames, one every interval sweeps
//
// # Example
//
//	g := pattern.Random(64, 0.5, 1)
//	ts := life.NewTimeSeries(64, 100)
//	s := life.NewSimulator(life.NewSerialSweeper())
//	err := s.Run(ctx, g, ts, 100, life.Interval(100, 100))
//
// # Thread Safety
//
// A Simulator owns its two grid buffers for the duration of Run and is not
// safe for concurrent use. [ParallelSweeper] parallelises within one sweep only;
// the swap between sweeps happens after all workers finish.
package life
