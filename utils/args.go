package utils

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrUsage means the command line has the wrong shape and help should be shown.
	ErrUsage = errors.New("usage")

	// ErrInvalidArgument means a value was present but unusable.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Dimensions is the grid size requested on the command line.
type Dimensions struct {
	Cols int
	Rows int
}

// ParseArgs reads `<ncols> <nrows>` from the arguments after the program name.
func ParseArgs(args []string) (Dimensions, error) {
	if len(args) != 2 {
		return Dimensions{}, errors.Wrapf(ErrUsage, "[ParseArgs] expected 2 arguments, got %d", len(args))
	}

	cols, err := parsePositive("ncols", args[0])
	if err != nil {
		return Dimensions{}, err
	}
	rows, err := parsePositive("nrows", args[1])
	if err != nil {
		return Dimensions{}, err
	}
	return Dimensions{Cols: cols, Rows: rows}, nil
}

func parsePositive(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.Wrapf(ErrInvalidArgument,
			"[ParseArgs] a positive integer is required for %s, got %q", name, raw)
	}
	return n, nil
}

// PrintHelp writes the usage message
func PrintHelp(w io.Writer, program string) {
	fmt.Fprintln(w, "Conway's Game of Life on a bounded grid.")
	fmt.Fprintf(w, "Usage: %s ncols nrows\n", program)
	fmt.Fprintln(w, "where ncols and nrows are positive integers representing the grid dimensions.")
	fmt.Fprintf(w, "Optional settings are read from %s (override the path with %s).\n", DefaultConfigFile, ConfigEnv)
}
