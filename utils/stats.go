package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Throughput returns generations per second for a timed run
func Throughput(generations int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(generations) / elapsed.Seconds()
}

// Speedup returns how many times faster parallel was than sequential
func Speedup(sequential, parallel time.Duration) float64 {
	if parallel <= 0 {
		return 0
	}
	return float64(sequential) / float64(parallel)
}
