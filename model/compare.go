package model

import (
	"time"

	"github.com/pkg/errors"
)

// Comparison is the outcome of running the same start state through Tick and TickParallel
type Comparison struct {
	Generations int
	Sequential  time.Duration
	Parallel    time.Duration
	Equal       bool

	SequentialGrid *Grid
	ParallelGrid   *Grid
}

// Compare clones seed twice, advances one clone with Tick and the other with
// TickParallel for the given number of generations, and compares the results.
// seed itself is not modified.
func Compare(seed *Engine, generations int) (Comparison, error) {
	if generations < 0 {
		return Comparison{}, errors.Errorf("[Compare] negative generation count: %d", generations)
	}

	var (
		sequential = seed.CloneState()
		parallel   = seed.CloneState()
		result     = Comparison{Generations: generations}
	)

	start := time.Now()
	for range generations {
		sequential.Tick()
	}
	result.Sequential = time.Since(start)

	start = time.Now()
	for range generations {
		parallel.TickParallel()
	}
	result.Parallel = time.Since(start)

	result.SequentialGrid = sequential.ReadGrid()
	result.ParallelGrid = parallel.ReadGrid()

	equal, err := result.SequentialGrid.Equal(result.ParallelGrid)
	if err != nil {
		return result, errors.Wrap(err, "[Compare] failed to compare final grids")
	}
	result.Equal = equal
	return result, nil
}
