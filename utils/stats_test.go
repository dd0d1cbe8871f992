package utils

import (
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 10, 100*time.Millisecond)
	if s.GenerationsPerSecond != 10 || s.AveragePopulation != 10 || s.TotalGenerations != 1 {
		t.Fatalf("unexpected stats after first update: %+v", s)
	}

	s.Update(2, 20, 0)
	if s.AveragePopulation != 11 {
		t.Fatalf("average population = %v, want 11", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatal("zero duration should not change the rate")
	}
}

func TestThroughputAndSpeedup(t *testing.T) {
	if got := Throughput(500, 2*time.Second); got != 250 {
		t.Fatalf("Throughput = %v, want 250", got)
	}
	if Throughput(10, 0) != 0 {
		t.Fatal("Throughput with no elapsed time should be 0")
	}
	if got := Speedup(3*time.Second, time.Second); got != 3 {
		t.Fatalf("Speedup = %v, want 3", got)
	}
	if Speedup(time.Second, 0) != 0 {
		t.Fatal("Speedup with zero parallel time should be 0")
	}
}
