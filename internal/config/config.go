// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the CLI and the Temporal worker.
type Config struct {
	TemporalHost      string `env:"SOLID_TEMPORAL_HOST" envDefault:"localhost:7233"`
	TemporalNamespace string `env:"SOLID_TEMPORAL_NAMESPACE" envDefault:"default"`
	TaskQueue         string `env:"SOLID_TASK_QUEUE" envDefault:"solid-payroll"`
	LogMode           string `env:"SOLID_LOG_MODE" envDefault:"development"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom reads Config from the given variables instead of the process
// environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
