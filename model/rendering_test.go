package model

import (
	"bytes"
	"testing"
)

func TestDisplay(t *testing.T) {
	g := gridFromStrings(t,
		"O..",
		".OO",
	)
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}
	want := "O . . \n. O O \n"
	if buf.String() != want {
		t.Fatalf("Display wrote %q, expected %q", buf.String(), want)
	}
}

func TestDisplayCustomAlphabet(t *testing.T) {
	g := gridFromStrings(t, "O.")
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf, Alive: "#", Dead: "_"}
	if err := r.Display(g); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if want := "# _ \n"; buf.String() != want {
		t.Fatalf("Display wrote %q, expected %q", buf.String(), want)
	}
}

func TestClear(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	if err := r.Clear(); err != nil || buf.Len() != 0 {
		t.Fatalf("Clear wrote %q with clearing disabled", buf.String())
	}
	r.ClearScreen = true
	if err := r.Clear(); err != nil || buf.String() != ansiClear {
		t.Fatalf("Clear wrote %q, expected the ANSI clear sequence", buf.String())
	}
}
