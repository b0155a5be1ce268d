package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation driver
type Config struct {
	Rows           int     `json:"rows"`
	Cols           int     `json:"cols"`
	TickIntervalMs int     `json:"tick_interval_ms"`
	SeedFile       string  `json:"seed_file"`
	RandomSeed     bool    `json:"random_seed"`
	RandomDensity  float64 `json:"random_density"`
	MaxGenerations int     `json:"max_generations"`
	ShowComponents bool    `json:"show_components"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:           30,
		Cols:           60,
		TickIntervalMs: 150,
		RandomSeed:     true,
		RandomDensity:  0.30,
		MaxGenerations: 1000,
		ShowComponents: true,
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
