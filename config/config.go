// Package config provides configuration loading and access for the ecosystem runner.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/foodweb/traits"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all runner configuration parameters.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Roster     []OrganismConfig `yaml:"roster"`
	Encounters []StepConfig     `yaml:"encounters"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// LogConfig holds slog settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int  `yaml:"stats_window"` // Steps per stats window
	LogStats    bool `yaml:"log_stats"`
}

// OrganismConfig defines one named organism in the starting roster.
type OrganismConfig struct {
	Name     string `yaml:"name"`
	Species  string `yaml:"species"`
	Diet     string `yaml:"diet"` // carnivore, omnivore, herbivore or plant
	Vitality uint64 `yaml:"vitality"`
}

// Kind parses the configured diet.
func (o OrganismConfig) Kind() (traits.Diet, error) {
	return traits.ParseDiet(o.Diet)
}

// StepConfig is one scenario step: First meets every organism in Against,
// in order. A single opponent is a plain encounter, several form a series.
type StepConfig struct {
	First   string   `yaml:"first"`
	Against []string `yaml:"against"`
}

// IsSeries reports whether the step runs as an encounter series.
func (s StepConfig) IsSeries() bool {
	return len(s.Against) > 1
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	RosterIndex map[string]int // name -> roster index
	LogLevel    slog.Level
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	return Parse(data)
}

// Parse builds a configuration from embedded defaults overlaid with data.
// A user file that defines a roster replaces the default scenario entirely.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if len(data) > 0 {
		var user Config
		if err := yaml.Unmarshal(data, &user); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		// Scalars merge field by field; the scenario is taken as a whole.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
		if user.Roster != nil {
			cfg.Roster = user.Roster
			cfg.Encounters = user.Encounters
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	if c.Telemetry.StatsWindow < 1 {
		c.Telemetry.StatsWindow = 1
	}

	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return err
	}
	c.Derived.LogLevel = level

	c.Derived.RosterIndex = make(map[string]int, len(c.Roster))
	for i, org := range c.Roster {
		if _, dup := c.Derived.RosterIndex[org.Name]; dup {
			return fmt.Errorf("%w: duplicate roster name %q", ErrInvalid, org.Name)
		}
		c.Derived.RosterIndex[org.Name] = i
	}
	return nil
}

// Organism returns the roster entry with the given name.
func (c *Config) Organism(name string) (OrganismConfig, bool) {
	i, ok := c.Derived.RosterIndex[name]
	if !ok {
		return OrganismConfig{}, false
	}
	return c.Roster[i], true
}

// Names returns roster names in declaration order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Roster))
	for i, org := range c.Roster {
		names[i] = org.Name
	}
	return names
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalid, s)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
