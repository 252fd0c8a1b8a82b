package model

// neighborOffsets lists the (row, col) offsets of the eight surrounding cells.
var neighborOffsets = [8]Coordinate{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// CountNeighbors counts the living cells around (row, col). Candidates that
// fall outside the grid do not exist and are not counted, so edge cells have
// five candidates and corner cells three.
func CountNeighbors(g *Grid, row, col int) int {
	count := 0
	for _, off := range neighborOffsets {
		r, c := row+off.Row, col+off.Col
		if g.InBounds(r, c) && g.cells[r][c] {
			count++
		}
	}
	return count
}

// Neighbors returns the in-bounds neighbor coordinates of (row, col).
func Neighbors(g *Grid, row, col int) []Coordinate {
	out := make([]Coordinate, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		r, c := row+off.Row, col+off.Col
		if g.InBounds(r, c) {
			out = append(out, Coordinate{Row: r, Col: c})
		}
	}
	return out
}
