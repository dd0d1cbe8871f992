package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 100, "height": 50, "wrapping": false, "mode": "benchmark"}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Width != 100 || config.Height != 50 || config.Wrapping || config.Mode != ModeBenchmark {
		t.Fatalf("unexpected config: %+v", config)
	}
	if config.BenchmarkGenerations != DefaultConfig().BenchmarkGenerations {
		t.Fatal("unset fields should keep their defaults")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{width"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty grid", func(c *Config) { c.Width, c.Height = 0, 0 }, false},
		{"negative width", func(c *Config) { c.Width = -1 }, true},
		{"negative generations", func(c *Config) { c.MaxGenerations = -5 }, true},
		{"negative benchmark", func(c *Config) { c.BenchmarkGenerations = -1 }, true},
		{"density too high", func(c *Config) { c.RandomDensity = 1.5 }, true},
		{"negative workers", func(c *Config) { c.Workers = -2 }, true},
		{"unknown mode", func(c *Config) { c.Mode = "window" }, true},
		{"benchmark mode", func(c *Config) { c.Mode = ModeBenchmark }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
