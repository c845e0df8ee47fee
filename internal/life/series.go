package life

import "fmt"

// TimeSeries holds Frames snapshots of an L×L grid. Its logical shape is
// (L, L, Frames); storage is frame-major so each frame is one contiguous
// row-major block.
type TimeSeries struct {
	L      int
	Frames int
	Data   []Cell
}

// NewTimeSeries allocates room for nFrames recorded frames plus the initial grid.
func NewTimeSeries(l, nFrames int) *TimeSeries {
	if l < 0 {
		l = 0
	}
	frames := nFrames + 1
	if frames < 0 {
		frames = 0
	}
	return &TimeSeries{L: l, Frames: frames, Data: make([]Cell, l*l*frames)}
}

// Shape returns (L, L, Frames).
func (ts *TimeSeries) Shape() [3]int { return [3]int{ts.L, ts.L, ts.Frames} }

// Frame returns a grid view of slice k. Writes through the view modify the series.
func (ts *TimeSeries) Frame(k int) *Grid {
	n := ts.L * ts.L
	return &Grid{L: ts.L, Cells: ts.Data[k*n : (k+1)*n : (k+1)*n]}
}

// At returns series[i, j, k].
func (ts *TimeSeries) At(i, j, k int) Cell {
	return ts.Data[k*ts.L*ts.L+i*ts.L+j]
}

func (ts *TimeSeries) record(k int, g *Grid) {
	copy(ts.Frame(k).Cells, g.Cells)
}

func (ts *TimeSeries) checkShape(l, nFrames int) error {
	if ts == nil {
		return invalidf("nil time series")
	}
	if ts.L != l || ts.Frames != nFrames+1 || len(ts.Data) != l*l*(nFrames+1) {
		return &shapeError{got: ts.Shape(), want: [3]int{l, l, nFrames + 1}}
	}
	return nil
}

type shapeError struct {
	got, want [3]int
}

func (e *shapeError) Error() string {
	return fmt.Sprintf("%v: got %v, want %v", ErrShapeMismatch, e.got, e.want)
}

func (e *shapeError) Unwrap() error { return ErrShapeMismatch }
