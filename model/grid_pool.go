package model

import "sync"

// GridPool recycles the cell buffers of discarded generations.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-dead grid from the pool with the given dimensions.
// The grid is writable until it is sealed by the engine.
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.reset(width, height)
	return g
}

// Put returns a grid to the pool. The caller must not use g afterwards.
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	p.pool.Put(g)
}

// reset resizes the grid to new dimensions and kills every cell
func (g *Grid) reset(width, height int) {
	g.width = width
	g.height = height
	g.activeBounds.valid = false

	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
			continue
		}
		clear(g.cells[i])
	}
}
