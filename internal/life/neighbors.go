package life

// Coord is a (row, column) position in a grid.
type Coord struct {
	Row, Col int
}

// Offsets is the Moore neighbourhood as (Δrow, Δcol) pairs.
var Offsets = [8]Coord{
	{0, 1},
	{0, -1},
	{1, 0},
	{-1, 0},
	{-1, 1},
	{-1, -1},
	{1, 1},
	{1, -1},
}

// Wrap maps c onto [0, l). Go's % keeps the sign of the dividend, so the
// result is shifted by l before the second reduction.
func Wrap(c, l int) int {
	return ((c % l) + l) % l
}

// Neighbors writes the wrapped coordinates of the 8 neighbours of (i, j)
// on a grid of side l into out.
func Neighbors(i, j, l int, out *[8]Coord) {
	for n, off := range Offsets {
		out[n] = Coord{Row: Wrap(i+off.Row, l), Col: Wrap(j+off.Col, l)}
	}
}

// CountAlive returns how many of the coordinates in nb are alive in g.
func CountAlive(g *Grid, nb *[8]Coord) int {
	count := 0
	for _, c := range nb {
		if g.Cells[c.Row*g.L+c.Col] == Alive {
			count++
		}
	}
	return count
}
