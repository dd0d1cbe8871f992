package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

// gliderCells is the glider the game starts with
var gliderCells = []model.Coord{
	{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 1, Y: 2}, {X: 3, Y: 1}, {X: 2, Y: 0},
}

// initializeGame builds the engine described by config and seeds it
func initializeGame(config utils.Config) (*model.Engine, error) {
	engine := model.NewEngine(config.Width, config.Height, config.Wrapping)
	engine.SetWorkers(config.Workers)

	if config.RandomDensity > 0 {
		grid := model.NewGrid(config.Width, config.Height)
		grid.Randomize(rand.New(rand.NewPCG(uint64(config.Seed), 0)), config.RandomDensity)
		for y := range grid.GetHeight() {
			for x := range grid.GetWidth() {
				if !grid.Get(x, y) {
					continue
				}
				if err := engine.Populate(x, y); err != nil {
					return nil, errors.Wrap(err, "[initializeGame] failed to seed random cells")
				}
			}
		}
	}

	for _, c := range gliderCells {
		if err := engine.Populate(c.X, c.Y); err != nil {
			return nil, errors.Wrapf(err, "[initializeGame] grid %dx%d too small for glider",
				config.Width, config.Height)
		}
	}
	return engine, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, engine *model.Engine) {
	fmt.Printf("Mode: %s | Wrapping: %v | Memory Pool: %v\n",
		config.Mode, engine.Wrapping(), config.UseMemoryPool)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		engine.Width(), engine.Height(), engine.ReadGrid().CountLivingCells())
	if config.Interactive {
		fmt.Println("Press Enter to advance a generation, Ctrl+C to exit")
	} else {
		fmt.Println("Press Ctrl+C to exit gracefully")
	}
	fmt.Println()
}

// updateGameState records the frame in stats and history and returns status information
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
	history *model.History,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := 0.0
	if area := grid.GetWidth() * grid.GetHeight(); area > 0 {
		density = float64(livingCells) / float64(area) * 100
	}

	stats.Update(generation, livingCells, time.Since(lastFrameTime))
	isStagnant := history.Record(grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// checkStopConditions determines if the console game should end
func checkStopConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}

// readSteps sends one value per line read from r until r is exhausted
func readSteps(r io.Reader) <-chan struct{} {
	steps := make(chan struct{})
	go func() {
		defer close(steps)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			steps <- struct{}{}
		}
	}()
	return steps
}

// runBenchmark times sequential against parallel ticks from the same start state
func runBenchmark(config utils.Config, engine *model.Engine) error {
	result, err := model.Compare(engine, config.BenchmarkGenerations)
	if err != nil {
		return errors.Wrap(err, "[runBenchmark] comparison failed")
	}

	fmt.Printf("Running %d cycles each:\n\n", result.Generations)
	fmt.Printf("Single-threaded: %dms (%.1f gen/sec)\n",
		result.Sequential.Milliseconds(), utils.Throughput(result.Generations, result.Sequential))
	fmt.Printf("Multi-threaded: %dms (%.1f gen/sec)\n",
		result.Parallel.Milliseconds(), utils.Throughput(result.Generations, result.Parallel))
	fmt.Printf("Speedup: %.2fx\n\n", utils.Speedup(result.Sequential, result.Parallel))
	fmt.Printf("State Equality: %v\n\n", result.Equal)

	renderer := &model.TerminalRenderer{Out: os.Stdout}
	for _, g := range []*model.Grid{result.SequentialGrid, result.ParallelGrid} {
		if err = renderer.Display(g); err != nil {
			return errors.Wrap(err, "[runBenchmark] failed to render result")
		}
		fmt.Println()
	}

	if !result.Equal {
		return errors.New("[runBenchmark] sequential and parallel states differ")
	}
	return nil
}
