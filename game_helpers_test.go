package main

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-engine/model"
	"github.com/sheikhrachel/go-gol-engine/utils"
)

func TestInitializeGameSeedsGlider(t *testing.T) {
	config := utils.DefaultConfig()
	config.Workers = 2

	engine, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	if engine.Width() != config.Width || engine.Height() != config.Height {
		t.Fatalf("engine is %dx%d", engine.Width(), engine.Height())
	}
	for _, c := range gliderCells {
		if alive, _ := engine.Cell(c.X, c.Y); !alive {
			t.Fatalf("glider cell %v not populated", c)
		}
	}
	if n := engine.ReadGrid().CountLivingCells(); n != len(gliderCells) {
		t.Fatalf("living cells = %d, want %d", n, len(gliderCells))
	}
}

func TestInitializeGameTooSmall(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 3, 3

	_, err := initializeGame(config)
	if !errors.Is(err, model.ErrOutOfRange) {
		t.Fatalf("err = %v, want ErrOutOfRange", err)
	}
}

func TestInitializeGameRandomDensity(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width, config.Height = 20, 20
	config.RandomDensity = 1

	engine, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	if n := engine.ReadGrid().CountLivingCells(); n != 400 {
		t.Fatalf("living cells = %d, want 400", n)
	}
}

func TestCheckStopConditions(t *testing.T) {
	config := utils.DefaultConfig()
	config.MaxGenerations = 10
	config.StagnationThreshold = 3

	tests := []struct {
		name                  string
		living, stagnant, gen int
		wantStop              bool
		wantReasonContains    string
	}{
		{"active", 5, 0, 1, false, ""},
		{"extinct", 0, 0, 1, true, "extinction"},
		{"stagnant", 5, 3, 1, true, "stagnation"},
		{"limit", 5, 0, 10, true, "maximum generations"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stop, reason := checkStopConditions(tt.living, tt.stagnant, tt.gen, config)
			if stop != tt.wantStop || !strings.Contains(reason, tt.wantReasonContains) {
				t.Fatalf("got (%v, %q), want (%v, ~%q)", stop, reason, tt.wantStop, tt.wantReasonContains)
			}
		})
	}
}

func TestReadSteps(t *testing.T) {
	steps := readSteps(strings.NewReader("\n\nnext\n"))
	count := 0
	for range steps {
		count++
	}
	if count != 3 {
		t.Fatalf("steps = %d, want 3", count)
	}
}

func TestRunBenchmark(t *testing.T) {
	config := utils.DefaultConfig()
	config.BenchmarkGenerations = 50

	engine, err := initializeGame(config)
	if err != nil {
		t.Fatal(err)
	}
	if err = runBenchmark(config, engine); err != nil {
		t.Fatal(err)
	}
}
