package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	// ModeConsole renders the grid to the terminal every generation
	ModeConsole = "console"
	// ModeBenchmark times sequential against parallel ticks
	ModeBenchmark = "benchmark"
)

// Config holds the configuration for the game
type Config struct {
	Width                int           `json:"width"`
	Height               int           `json:"height"`
	Wrapping             bool          `json:"wrapping"`
	FrameRate            time.Duration `json:"frame_rate"`
	MaxGenerations       int           `json:"max_generations"`
	Mode                 string        `json:"mode"`
	Interactive          bool          `json:"interactive"`
	ClearScreen          bool          `json:"clear_screen"`
	BenchmarkGenerations int           `json:"benchmark_generations"`
	RandomDensity        float64       `json:"random_density"`
	Seed                 int64         `json:"seed"`
	Workers              int           `json:"workers"`
	UseMemoryPool        bool          `json:"use_memory_pool"`
	StagnationThreshold  int           `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:                8,
		Height:               8,
		Wrapping:             true,
		FrameRate:            150 * time.Millisecond,
		MaxGenerations:       1000,
		Mode:                 ModeConsole,
		Interactive:          false,
		ClearScreen:          true,
		BenchmarkGenerations: 10000,
		RandomDensity:        0, // 0 keeps only the seeded glider
		Seed:                 1,
		Workers:              0, // 0 uses GOMAXPROCS
		UseMemoryPool:        true,
		StagnationThreshold:  5,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Errorf("[Validate] negative grid size %dx%d", c.Width, c.Height)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] negative max_generations: %d", c.MaxGenerations)
	case c.BenchmarkGenerations < 0:
		return errors.Errorf("[Validate] negative benchmark_generations: %d", c.BenchmarkGenerations)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Errorf("[Validate] random_density %v outside [0,1]", c.RandomDensity)
	case c.Workers < 0:
		return errors.Errorf("[Validate] negative workers: %d", c.Workers)
	case c.Mode != ModeConsole && c.Mode != ModeBenchmark:
		return errors.Errorf("[Validate] unknown mode %q", c.Mode)
	}
	return nil
}
