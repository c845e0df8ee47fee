package life

// Next returns the state of a cell after one generation given its current
// state and its number of live neighbours n (0..8).
func Next(state Cell, n int) Cell {
	if state == Alive {
		switch {
		case n < 2:
			return Dead // underpopulation
		case n <= 3:
			return Alive
		default:
			return Dead // overpopulation
		}
	}
	if n == 3 {
		return Alive // birth
	}
	return Dead
}
