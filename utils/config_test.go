package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("LoadConfig succeeded on a missing file, want error")
	}
	if config != DefaultConfig() {
		t.Errorf("config = %+v, want defaults on missing file", config)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"rows": 12, "cols": 24, "tick_interval_ms": 90, "random_seed": false, "max_generations": 50}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if config.Rows != 12 || config.Cols != 24 {
		t.Errorf("dimensions = %dx%d, want 12x24", config.Rows, config.Cols)
	}
	if config.TickIntervalMs != 90 {
		t.Errorf("TickIntervalMs = %d, want 90", config.TickIntervalMs)
	}
	if config.RandomSeed {
		t.Error("RandomSeed = true, want false")
	}
	if config.MaxGenerations != 50 {
		t.Errorf("MaxGenerations = %d, want 50", config.MaxGenerations)
	}
	// Fields absent from the file keep their defaults.
	if config.RandomDensity != DefaultConfig().RandomDensity {
		t.Errorf("RandomDensity = %v, want default %v", config.RandomDensity, DefaultConfig().RandomDensity)
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig succeeded on malformed JSON, want error")
	}
}
