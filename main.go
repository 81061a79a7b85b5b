package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pthm-cable/foodweb/config"
	"github.com/pthm-cable/foodweb/game"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("scenario failed", "error", err)
		os.Exit(1)
	}
}

// run loads configuration in order defaults, file, environment, flags and
// then plays the scenario.
func run(args []string, logOut io.Writer) error {
	overrides, err := config.ParseEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("foodweb", flag.ContinueOnError)
	configPath := fs.String("config", overrides.ConfigPath, "Path to config.yaml (empty = use defaults)")
	outputDir := fs.String("output-dir", overrides.OutputDir, "Output directory for CSV logs and config snapshot")
	logStats := fs.Bool("log-stats", false, "Output stats via slog")
	statsWindow := fs.Int("stats-window", 0, "Steps per stats window (0 = use config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := config.Init(*configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()
	if err := overrides.Apply(cfg); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-stats":
			cfg.Telemetry.LogStats = *logStats
		case "stats-window":
			if *statsWindow > 0 {
				cfg.Telemetry.StatsWindow = *statsWindow
			}
		}
	})

	slog.SetDefault(newLogger(cfg.Log, cfg.Derived.LogLevel, logOut))

	eco, err := game.NewEcosystem(game.Options{
		LogStats:    cfg.Telemetry.LogStats,
		StatsWindow: cfg.Telemetry.StatsWindow,
		OutputDir:   *outputDir,
	})
	if err != nil {
		return err
	}

	slog.Info("starting scenario",
		"organisms", len(cfg.Roster),
		"steps", len(cfg.Encounters),
		"stats_window", cfg.Telemetry.StatsWindow,
		"output_dir", *outputDir,
	)

	runErr := eco.RunScenario(cfg)
	if err := eco.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("closing output: %w", err)
	}
	if runErr != nil {
		return runErr
	}

	slog.Info("scenario complete", "steps", eco.Step(), "population", eco.Population())
	return nil
}

func newLogger(lc config.LogConfig, level slog.Level, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
