package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds overrides read from FOODWEB_* environment variables.
// Unset variables leave the loaded configuration alone.
type Env struct {
	ConfigPath  string `env:"FOODWEB_CONFIG"`
	OutputDir   string `env:"FOODWEB_OUTPUT_DIR"`
	LogLevel    string `env:"FOODWEB_LOG_LEVEL"`
	LogStats    *bool  `env:"FOODWEB_LOG_STATS"`
	StatsWindow int    `env:"FOODWEB_STATS_WINDOW"`
}

// ParseEnv reads the environment overrides.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply overlays the environment onto c.
func (e Env) Apply(c *Config) error {
	if e.LogLevel != "" {
		level, err := parseLevel(e.LogLevel)
		if err != nil {
			return fmt.Errorf("FOODWEB_LOG_LEVEL: %w", err)
		}
		c.Log.Level = e.LogLevel
		c.Derived.LogLevel = level
	}
	if e.LogStats != nil {
		c.Telemetry.LogStats = *e.LogStats
	}
	if e.StatsWindow > 0 {
		c.Telemetry.StatsWindow = e.StatsWindow
	}
	return nil
}
