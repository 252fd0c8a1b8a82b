package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is built with a non-positive
	// width or height, or from a ragged cell matrix.
	ErrInvalidDimension = errors.New("invalid grid dimension")

	// ErrOutOfBounds is returned by Grid.Get for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
