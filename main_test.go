package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func noConfigFile(t *testing.T) {
	t.Helper()
	t.Setenv(utils.ConfigEnv, filepath.Join(t.TempDir(), "absent.json"))
}

func TestRunPrintsHelpOnWrongArgCount(t *testing.T) {
	noConfigFile(t)
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"/bin/go-life"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, expected 0", code)
	}
	if !strings.Contains(stdout.String(), "Usage: go-life ncols nrows") {
		t.Fatalf("missing help text:\n%s", stdout.String())
	}
	if strings.Contains(stdout.String(), "Cycle count") {
		t.Fatalf("simulation ran without dimensions")
	}
}

func TestRunRejectsInvalidNumbers(t *testing.T) {
	noConfigFile(t)
	for _, args := range [][]string{{"go-life", "abc", "3"}, {"go-life", "3", "0"}} {
		var stdout, stderr bytes.Buffer
		if code := run(context.Background(), args, &stdout, &stderr); code != 1 {
			t.Fatalf("%v: exit code %d, expected 1", args, code)
		}
		if !strings.Contains(stderr.String(), "positive integer") {
			t.Fatalf("%v: missing diagnostic:\n%s", args, stderr.String())
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	noConfigFile(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	if code := run(ctx, []string{"go-life", "4", "3"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "Cycle count: 0") || !strings.Contains(out, "Shutting down gracefully") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestSimulateBlinker(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 5, 5
	config.Pattern = "blinker"
	config.FrameRate = utils.Duration(time.Millisecond)
	config.MaxGenerations = 2

	var out bytes.Buffer
	renderer := &model.TerminalRenderer{Out: &out}
	if err := simulate(context.Background(), config, renderer, &out); err != nil {
		t.Fatalf("simulate: %v", err)
	}

	text := out.String()
	horizontal := ". . . . . \n. . . . . \n. O O O . \n. . . . . \n. . . . . \n"
	vertical := ". . . . . \n. . O . . \n. . O . . \n. . O . . \n. . . . . \n"
	for _, want := range []string{horizontal, vertical, "Cycle count: 2", "Status: Stagnant", "----------"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Cycle count: 3") {
		t.Fatalf("ran past the generation limit")
	}
}

func TestLoadConfigOverridesDimensions(t *testing.T) {
	noConfigFile(t)
	var stderr bytes.Buffer
	config, err := loadConfig(utils.Dimensions{Cols: 7, Rows: 3}, &stderr)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Width != 7 || config.Height != 3 {
		t.Fatalf("dimensions %dx%d, expected 7x3", config.Width, config.Height)
	}
}

func TestSeedGridRandomIsReproducible(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = 5
	a, err := seedGrid(config)
	if err != nil {
		t.Fatalf("seedGrid: %v", err)
	}
	b, _ := seedGrid(config)
	if !a.Equal(b) {
		t.Fatalf("seeded grids differ")
	}
}
