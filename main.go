package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals; it returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	program := filepath.Base(args[0])

	dims, err := utils.ParseArgs(args[1:])
	switch {
	case errors.Is(err, utils.ErrUsage):
		utils.PrintHelp(stdout, program)
		return 0
	case err != nil:
		fmt.Fprintln(stderr, "Error:", err)
		utils.PrintHelp(stderr, program)
		return 1
	}

	config, err := loadConfig(dims, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	renderer := model.NewTerminalRenderer(config.ClearScreen)
	renderer.Out = stdout

	if err = simulate(ctx, config, renderer, stdout); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
