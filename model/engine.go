package model

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Strategy selects how the engine walks the grid. All strategies produce
// identical generations.
type Strategy string

const (
	StrategySequential Strategy = "sequential"
	StrategyParallel   Strategy = "parallel"
	StrategyBounded    Strategy = "bounded"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(name); s {
	case StrategySequential, StrategyParallel, StrategyBounded:
		return s, nil
	}
	return "", errors.Errorf("[ParseStrategy] unknown strategy %q", name)
}

// Engine computes successive generations.
type Engine struct {
	strategy Strategy
	workers  int
	pool     *GridPool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithStrategy picks the evaluation strategy.
func WithStrategy(s Strategy) EngineOption {
	return func(e *Engine) { e.strategy = s }
}

// WithWorkers caps the number of goroutines used by StrategyParallel.
// Values below one mean runtime.NumCPU().
func WithWorkers(n int) EngineOption {
	return func(e *Engine) { e.workers = n }
}

// WithPool makes the engine draw output grids from pool.
func WithPool(pool *GridPool) EngineOption {
	return func(e *Engine) { e.pool = pool }
}

// NewEngine returns a sequential engine unless configured otherwise.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{strategy: StrategySequential}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		e.workers = runtime.NumCPU()
	}
	return e
}

// Strategy returns the configured strategy.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Advance computes the generation after g. Only g is read and only the
// returned grid is written.
func Advance(g *Grid) *Grid {
	next := newBlankGrid(g.width, g.height)
	advanceRows(g, next, 0, g.height, 0, g.width)
	next.seal()
	return next
}

// Advance computes the generation after g using the configured strategy.
func (e *Engine) Advance(g *Grid) *Grid {
	next := e.alloc(g.width, g.height)

	switch e.strategy {
	case StrategyParallel:
		e.advanceParallel(g, next)
	case StrategyBounded:
		advanceBounded(g, next)
	default:
		advanceRows(g, next, 0, g.height, 0, g.width)
	}

	next.seal()
	return next
}

// Release hands a discarded generation back to the engine's pool, if any.
// g must not be used afterwards.
func (e *Engine) Release(g *Grid) {
	if e.pool == nil {
		return
	}
	e.pool.Put(g)
}

func (e *Engine) alloc(width, height int) *Grid {
	if e.pool != nil {
		return e.pool.Get(width, height)
	}
	return newBlankGrid(width, height)
}

// advanceRows writes the next state of every cell in the given half-open
// row and column ranges of cur into next.
func advanceRows(cur, next *Grid, fromRow, toRow, fromCol, toCol int) {
	for row := fromRow; row < toRow; row++ {
		for col := fromCol; col < toCol; col++ {
			next.cells[row][col] = rules.ApplyConwayRules(CountNeighbors(cur, row, col), cur.cells[row][col])
		}
	}
}

// advanceParallel splits the rows into bands, one per worker
func (e *Engine) advanceParallel(cur, next *Grid) {
	var (
		eg            errgroup.Group
		numWorkers    = min(e.workers, cur.height)
		rowsPerWorker = (cur.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, cur.height)
		)
		if startRow >= cur.height {
			break
		}

		eg.Go(func() error {
			advanceRows(cur, next, startRow, endRow, 0, cur.width)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		panic(fmt.Sprintf("[advanceParallel] worker failed: %+v", err))
	}
}

// advanceBounded evaluates only the active region plus a one cell margin;
// next must start all dead.
func advanceBounded(cur, next *Grid) {
	if !cur.activeBounds.valid {
		return
	}

	b := cur.activeBounds
	advanceRows(cur, next,
		max(0, b.minRow-1), min(cur.height, b.maxRow+2),
		max(0, b.minCol-1), min(cur.width, b.maxCol+2),
	)
}
