package model

import (
	"crypto/md5"
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// FillFunc produces the initial state of one cell. It is called once per
// cell in row-major order.
type FillFunc func() bool

// Coordinate addresses a single cell by row and column.
type Coordinate struct {
	Row, Col int
}

// Grid is an immutable, bounded game board. Every generation is a new Grid.
type Grid struct {
	width  int
	height int
	cells  [][]bool

	// bounding box of living cells, filled in by seal
	activeBounds struct {
		minRow, maxRow, minCol, maxCol int
		valid                          bool
	}
}

// NewGrid creates a grid with the specified dimensions, asking fill for the
// state of every cell, row 0 first and column 0 first within a row.
// A nil fill yields an all-dead grid.
func NewGrid(width, height int, fill FillFunc) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] width=%d height=%d", width, height)
	}

	g := newBlankGrid(width, height)
	if fill != nil {
		for row := range height {
			for col := range width {
				g.cells[row][col] = fill()
			}
		}
	}
	g.seal()
	return g, nil
}

// NewGridFromCells builds a grid from a copy of a rectangular row-major matrix.
func NewGridFromCells(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidDimension, "[NewGridFromCells] empty matrix")
	}

	width := len(cells[0])
	g := newBlankGrid(width, len(cells))
	for row, src := range cells {
		if len(src) != width {
			return nil, errors.Wrapf(ErrInvalidDimension,
				"[NewGridFromCells] row %d has %d cells, expected %d", row, len(src), width)
		}
		copy(g.cells[row], src)
	}
	g.seal()
	return g, nil
}

// newBlankGrid allocates an all-dead grid without validating dimensions.
func newBlankGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) (bool, error) {
	if !g.InBounds(row, col) {
		return false, errors.Wrapf(ErrOutOfBounds,
			"[Get] (%d,%d) outside %dx%d grid", row, col, g.width, g.height)
	}
	return g.cells[row][col], nil
}

// Rows yields every row top to bottom, each as a left-to-right sequence of
// cell states. The sequence can be ranged over any number of times.
func (g *Grid) Rows() iter.Seq[iter.Seq[bool]] {
	return func(yield func(iter.Seq[bool]) bool) {
		for _, row := range g.cells {
			if !yield(rowSeq(row)) {
				return
			}
		}
	}
}

func rowSeq(row []bool) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for _, alive := range row {
			if !yield(alive) {
				return
			}
		}
	}
}

// seal finishes construction. The grid must not be written after this.
func (g *Grid) seal() {
	g.calculateActiveBounds()
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	for row := range g.height {
		for col := range g.width {
			if !g.cells[row][col] {
				continue
			}
			if !g.activeBounds.valid {
				g.activeBounds.minRow, g.activeBounds.maxRow = row, row
				g.activeBounds.minCol, g.activeBounds.maxCol = col, col
				g.activeBounds.valid = true
				continue
			}
			g.activeBounds.minRow = min(g.activeBounds.minRow, row)
			g.activeBounds.maxRow = max(g.activeBounds.maxRow, row)
			g.activeBounds.minCol = min(g.activeBounds.minCol, col)
			g.activeBounds.maxCol = max(g.activeBounds.maxCol, col)
		}
	}
}

// BoundingBoxSize returns the size of the active region
func (g *Grid) BoundingBoxSize() int {
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxRow - g.activeBounds.minRow + 1) *
		(g.activeBounds.maxCol - g.activeBounds.minCol + 1)
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	buf := make([]byte, g.width)
	for _, row := range g.cells {
		for col, alive := range row {
			buf[col] = 0
			if alive {
				buf[col] = 1
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for row := range g.height {
		for col := range g.width {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}
