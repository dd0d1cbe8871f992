package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to JSON configuration")
		mode       = flag.String("mode", "", "run mode override: console or benchmark")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}
	if *mode != "" {
		config.Mode = *mode
	}
	if err = config.Validate(); err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	engine, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Failed to initialize game: %v\n", err)
		os.Exit(1)
	}

	if config.Mode == utils.ModeBenchmark {
		if err = runBenchmark(config, engine); err != nil {
			fmt.Printf("Benchmark failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err = runConsole(config, engine); err != nil {
		fmt.Printf("Game failed: %v\n", err)
		os.Exit(1)
	}
}

// runConsole renders the engine to the terminal until a stop condition is met
func runConsole(config utils.Config, engine *model.Engine) error {
	displayGameInfo(config, engine)

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	var (
		renderer      = &model.TerminalRenderer{Out: os.Stdout}
		stats         = utils.NewStats()
		history       = model.NewHistory(config.StagnationThreshold)
		stagnantCount = 0
		lastFrameTime = time.Now()
		steps         <-chan struct{}
	)
	if config.Interactive {
		steps = readSteps(os.Stdin)
	}

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	for {
		frameStart := time.Now()
		if config.ClearScreen {
			if err := renderer.Clear(); err != nil {
				return err
			}
		}

		grid := engine.ReadGridPooled(pool)
		livingCells, density, status, isStagnant := updateGameState(
			grid, engine.Generation(), lastFrameTime, stats, history)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(engine.Generation(), livingCells, density, status, stats)
		err := renderer.Display(grid)
		model.GridToPool(grid, pool)
		if err != nil {
			return err
		}

		if stop, reason := checkStopConditions(livingCells, stagnantCount, engine.Generation(), config); stop {
			fmt.Printf("\nStopping: %s\n", reason)
			return nil
		}

		if config.Interactive {
			select {
			case <-sigChan:
				shutdown(engine, stats)
				return nil
			case _, ok := <-steps:
				if !ok {
					return nil
				}
			}
		} else {
			select {
			case <-sigChan:
				shutdown(engine, stats)
				return nil
			case <-time.After(config.FrameRate):
			}
		}

		engine.Tick()
	}
}

// shutdown prints the final stats
func shutdown(engine *model.Engine, stats *utils.Stats) {
	fmt.Println("\nShutting down gracefully...")
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		engine.Generation(), time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}
