package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/rules"
)

// Engine owns the current generation and a scratch buffer for the next one.
//
// An Engine is not safe for concurrent use. Callers must not mutate it while
// Tick or TickParallel is running.
type Engine struct {
	current    *Grid
	next       *Grid
	wrapping   bool
	workers    int
	generation int
}

// NewEngine creates an engine with all cells dead. When wrapping is set the
// edges of the grid are joined into a torus.
func NewEngine(width, height int, wrapping bool) *Engine {
	return &Engine{
		current:  NewGrid(width, height),
		next:     NewGrid(width, height),
		wrapping: wrapping,
	}
}

// CloneState returns an independent engine with the same cells, edge mode and
// generation count as e.
func (e *Engine) CloneState() *Engine {
	return &Engine{
		current:    e.current.Clone(),
		next:       NewGrid(e.current.width, e.current.height),
		wrapping:   e.wrapping,
		workers:    e.workers,
		generation: e.generation,
	}
}

// Width returns the number of columns
func (e *Engine) Width() int {
	return e.current.width
}

// Height returns the number of rows
func (e *Engine) Height() int {
	return e.current.height
}

// Generation returns the number of ticks applied so far
func (e *Engine) Generation() int {
	return e.generation
}

// Wrapping reports whether neighbor lookups wrap around the edges
func (e *Engine) Wrapping() bool {
	return e.wrapping
}

// SetEdgeMode changes the neighbor counting policy for subsequent ticks
func (e *Engine) SetEdgeMode(wrapping bool) {
	e.wrapping = wrapping
}

// SetWorkers bounds the number of goroutines used by TickParallel.
// Zero or less means GOMAXPROCS.
func (e *Engine) SetWorkers(n int) {
	e.workers = max(0, n)
}

// Populate marks cell (x, y) alive
func (e *Engine) Populate(x, y int) error {
	return errors.Wrap(e.current.Set(x, y, true), "[Populate]")
}

// Depopulate marks cell (x, y) dead
func (e *Engine) Depopulate(x, y int) error {
	return errors.Wrap(e.current.Set(x, y, false), "[Depopulate]")
}

// Toggle flips cell (x, y)
func (e *Engine) Toggle(x, y int) error {
	alive, err := e.Cell(x, y)
	if err != nil {
		return errors.Wrap(err, "[Toggle]")
	}
	return errors.Wrap(e.current.Set(x, y, !alive), "[Toggle]")
}

// Cell returns the state of cell (x, y) in the current generation
func (e *Engine) Cell(x, y int) (bool, error) {
	if !(Coord{X: x, Y: y}).InBounds(e.current.width, e.current.height) {
		return false, errors.Wrapf(ErrOutOfRange, "[Cell] (%d,%d) outside %dx%d grid",
			x, y, e.current.width, e.current.height)
	}
	return e.current.cells[y][x], nil
}

// ReadGrid returns a copy of the current generation
func (e *Engine) ReadGrid() *Grid {
	return e.current.Clone()
}

// ReadGridPooled copies the current generation into a grid taken from pool.
// The caller should hand it back with GridToPool once done.
func (e *Engine) ReadGridPooled(pool *GridPool) *Grid {
	if pool == nil {
		return e.ReadGrid()
	}
	g := pool.Get(e.current.width, e.current.height)
	g.copyFrom(e.current)
	return g
}

// countNeighbors counts the living Moore neighbors of (x, y) in the current generation
func (e *Engine) countNeighbors(x, y int) int {
	var (
		count  int
		w, h   = e.current.width, e.current.height
		center = Coord{X: x, Y: y}
	)
	for _, d := range neighborOffsets {
		pos := center.Add(d)
		if !pos.InBounds(w, h) {
			if !e.wrapping {
				continue
			}
			pos = pos.Wrap(w, h)
		}
		if e.current.cells[pos.Y][pos.X] {
			count++
		}
	}
	return count
}

// computeRows fills rows [startRow, endRow) of next from current
func (e *Engine) computeRows(startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		row := e.next.cells[y]
		for x := range row {
			row[x] = rules.ApplyConwayRules(e.countNeighbors(x, y), e.current.cells[y][x])
		}
	}
}

// swap publishes next as the current generation
func (e *Engine) swap() {
	e.current, e.next = e.next, e.current
	e.generation++
}

// Tick advances the simulation by one generation on the calling goroutine
func (e *Engine) Tick() {
	e.computeRows(0, e.current.height)
	e.swap()
}

// TickParallel advances the simulation by one generation, splitting the rows
// into contiguous bands computed concurrently. The result is identical to Tick.
func (e *Engine) TickParallel() {
	height := e.current.height
	if height == 0 {
		e.swap()
		return
	}

	var (
		eg            errgroup.Group
		numWorkers    = e.workerCount()
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			e.computeRows(startRow, endRow)
			return nil
		})
	}

	// Workers never fail; Wait is the barrier before the swap.
	_ = eg.Wait()
	e.swap()
}

// workerCount is the pool size for one parallel tick, never more than the row count
func (e *Engine) workerCount() int {
	n := e.workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return max(1, min(n, e.current.height))
}
