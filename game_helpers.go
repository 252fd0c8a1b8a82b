package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const separator = "----------"

// loadConfig merges the optional config file with the command line dimensions
func loadConfig(dims utils.Dimensions, stderr io.Writer) (utils.Config, error) {
	path := utils.ConfigPath()
	config, err := utils.LoadConfig(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		// a missing file just means defaults
		config = utils.DefaultConfig()
	}

	config.Width, config.Height = dims.Cols, dims.Rows
	if err = config.Validate(); err != nil {
		return config, err
	}
	if _, err = model.ParseStrategy(config.Strategy); err != nil {
		return config, errors.Wrap(utils.ErrInvalidArgument, err.Error())
	}
	if config.Pattern != utils.PatternRandom {
		if _, ok := model.LookupPattern(config.Pattern); !ok {
			return config, errors.Wrapf(utils.ErrInvalidArgument,
				"[loadConfig] unknown pattern %q, expected %s or one of %v",
				config.Pattern, utils.PatternRandom, model.PatternNames())
		}
	}
	if config.Pattern != utils.PatternRandom && config.Seed != 0 {
		fmt.Fprintf(stderr, "Note: seed %d is ignored for pattern %q\n", config.Seed, config.Pattern)
	}
	return config, nil
}

// buildEngine turns the configuration into an evolution engine
func buildEngine(config utils.Config) *model.Engine {
	opts := []model.EngineOption{
		model.WithStrategy(model.Strategy(config.Strategy)),
		model.WithWorkers(config.Workers),
	}
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}
	return model.NewEngine(opts...)
}

// seedGrid creates generation zero
func seedGrid(config utils.Config) (*model.Grid, error) {
	if config.Pattern == utils.PatternRandom {
		rng := model.NewRand(config.Seed)
		return model.NewGrid(config.Width, config.Height, model.RandomFill(rng, config.RandomDensity))
	}

	p, _ := model.LookupPattern(config.Pattern)
	rows, cols := p.Size()
	origin := model.Coordinate{Row: (config.Height - rows) / 2, Col: (config.Width - cols) / 2}
	return model.NewGridWithPattern(config.Width, config.Height, origin, p)
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintf(out, "Strategy: %s | Memory Pool: %v | Pattern: %s\n",
		config.Strategy, config.UseMemoryPool, config.Pattern)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d\n",
		grid.Width(), grid.Height(), grid.CountLivingCells())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// updateGameState records the generation and returns status information
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
	history *model.History,
) (int, string) {
	livingCells := grid.CountLivingCells()
	stats.Update(generation, livingCells, time.Since(lastFrameTime))
	stats.BoundingBoxSize = grid.BoundingBoxSize()

	status := "Active"
	if history.Record(grid) {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}
	return livingCells, status
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, generation, livingCells int, status string, grid *model.Grid) {
	density := float64(livingCells) / float64(grid.Width()*grid.Height()) * 100
	fmt.Fprintln(out, separator)
	fmt.Fprintf(out, "Cycle count: %d\n", generation)
	fmt.Fprintf(out, "Living: %d | Density: %.1f%% | Bounding box: %d cells | Status: %s\n",
		livingCells, density, grid.BoundingBoxSize(), status)
}

// displayFinalStats prints the shutdown summary
func displayFinalStats(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// simulate runs render, advance, pace until ctx ends or the generation
// limit is reached. A zero limit runs forever.
func simulate(ctx context.Context, config utils.Config, renderer *model.TerminalRenderer, out io.Writer) error {
	grid, err := seedGrid(config)
	if err != nil {
		return errors.Wrap(err, "[simulate] failed to seed grid")
	}

	var (
		engine        = buildEngine(config)
		stats         = utils.NewStats()
		history       = model.NewHistory(config.HistorySize)
		generation    = 0
		lastFrameTime = time.Now()
	)
	displayGameInfo(out, config, grid)

	for {
		frameStart := time.Now()
		if err = renderer.Clear(); err != nil {
			return errors.Wrap(err, "[simulate] failed to clear screen")
		}
		if err = renderer.Display(grid); err != nil {
			return errors.Wrap(err, "[simulate] failed to render grid")
		}

		livingCells, status := updateGameState(grid, generation, lastFrameTime, stats, history)
		lastFrameTime = frameStart
		displayGameStatus(out, generation, livingCells, status, grid)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Fprintf(out, "\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			displayFinalStats(out, stats)
			return nil
		}

		next := engine.Advance(grid)
		engine.Release(grid)
		grid = next
		generation++

		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nShutting down gracefully...")
			displayFinalStats(out, stats)
			return nil
		case <-time.After(time.Duration(config.FrameRate)):
		}
	}
}
