package life

import "fmt"

// Cell is the state of one site. Only Dead and Alive are valid.
type Cell = int8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Grid is a dense L×L square of cells stored in row-major order.
type Grid struct {
	L     int
	Cells []Cell
}

// NewGrid allocates an all-dead grid with side length l.
func NewGrid(l int) *Grid {
	if l < 0 {
		l = 0
	}
	return &Grid{L: l, Cells: make([]Cell, l*l)}
}

// FromRows builds a grid from a square matrix of 0/1 values.
func FromRows(rows [][]Cell) (*Grid, error) {
	l := len(rows)
	g := NewGrid(l)
	for i, row := range rows {
		if len(row) != l {
			return nil, invalidf("row %d has %d cells, want %d", i, len(row), l)
		}
		copy(g.Cells[i*l:(i+1)*l], row)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grid) index(i, j int) int { return i*g.L + j }

// At returns the cell at row i, column j. Coordinates are not wrapped.
func (g *Grid) At(i, j int) Cell { return g.Cells[g.index(i, j)] }

// Set writes the cell at row i, column j.
func (g *Grid) Set(i, j int, c Cell) { g.Cells[g.index(i, j)] = c }

// CopyFrom overwrites g with src. Both grids must have the same side length.
func (g *Grid) CopyFrom(src *Grid) {
	if g.L != src.L {
		panic(fmt.Sprintf("life: copy between grids of side %d and %d", src.L, g.L))
	}
	copy(g.Cells, src.Cells)
}

func (g *Grid) Clone() *Grid {
	c := NewGrid(g.L)
	copy(c.Cells, g.Cells)
	return c
}

func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.L != other.L {
		return false
	}
	for i, c := range g.Cells {
		if other.Cells[i] != c {
			return false
		}
	}
	return true
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.Cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// Validate checks the side length, buffer length and that every cell is 0 or 1.
func (g *Grid) Validate() error {
	if g.L <= 0 {
		return invalidf("grid length must be positive, got %d", g.L)
	}
	if len(g.Cells) != g.L*g.L {
		return invalidf("grid buffer holds %d cells, want %d", len(g.Cells), g.L*g.L)
	}
	for idx, c := range g.Cells {
		if c != Dead && c != Alive {
			return fmt.Errorf("%w at (%d,%d): %d", ErrInvalidCell, idx/g.L, idx%g.L, c)
		}
	}
	return nil
}
