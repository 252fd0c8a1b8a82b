package model

import (
	"bufio"
	"io"
	"os"
)

const (
	gridPosAlive = "O"
	gridPosDead  = "."
	cellSep      = " "

	// clear screen, cursor home
	ansiClear = "\033[2J\033[H"
)

// TerminalRenderer prints grids as text, one line per row
type TerminalRenderer struct {
	Out         io.Writer
	Alive       string
	Dead        string
	ClearScreen bool
}

// NewTerminalRenderer renders to stdout with the O/. alphabet.
func NewTerminalRenderer(clearScreen bool) *TerminalRenderer {
	return &TerminalRenderer{
		Out:         os.Stdout,
		Alive:       gridPosAlive,
		Dead:        gridPosDead,
		ClearScreen: clearScreen,
	}
}

// Display renders the grid, each cell followed by a space
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out())
	for row := range g.Rows() {
		for alive := range row {
			if alive {
				w.WriteString(r.alive())
			} else {
				w.WriteString(r.dead())
			}
			w.WriteString(cellSep)
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen when enabled
func (r *TerminalRenderer) Clear() error {
	if !r.ClearScreen {
		return nil
	}
	_, err := io.WriteString(r.out(), ansiClear)
	return err
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *TerminalRenderer) alive() string {
	if r.Alive == "" {
		return gridPosAlive
	}
	return r.Alive
}

func (r *TerminalRenderer) dead() string {
	if r.Dead == "" {
		return gridPosDead
	}
	return r.Dead
}
