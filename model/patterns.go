package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Pattern is a set of live cells relative to a top-left origin.
type Pattern struct {
	Name  string
	Cells []Coordinate
}

var (
	// Glider moves one cell down and one cell right every four generations.
	Glider = Pattern{
		Name: "glider",
		Cells: []Coordinate{
			{0, 1},
			{1, 2},
			{2, 0}, {2, 1}, {2, 2},
		},
	}

	// Blinker is a horizontal period-2 oscillator.
	Blinker = Pattern{
		Name:  "blinker",
		Cells: []Coordinate{{0, 0}, {0, 1}, {0, 2}},
	}

	// Block is the 2x2 still life.
	Block = Pattern{
		Name:  "block",
		Cells: []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	}
)

var patterns = map[string]Pattern{
	Glider.Name:  Glider,
	Blinker.Name: Blinker,
	Block.Name:   Block,
}

// LookupPattern finds a built-in pattern by name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the built-in patterns in alphabetical order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of rows and columns spanned by the pattern.
func (p Pattern) Size() (rows, cols int) {
	for _, c := range p.Cells {
		rows = max(rows, c.Row+1)
		cols = max(cols, c.Col+1)
	}
	return rows, cols
}

// NewGridWithPattern creates an all-dead grid and stamps p at origin.
// Pattern cells that land outside the grid are dropped.
func NewGridWithPattern(width, height int, origin Coordinate, p Pattern) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGridWithPattern] width=%d height=%d", width, height)
	}

	g := newBlankGrid(width, height)
	for _, c := range p.Cells {
		row, col := origin.Row+c.Row, origin.Col+c.Col
		if g.InBounds(row, col) {
			g.cells[row][col] = true
		}
	}
	g.seal()
	return g, nil
}
