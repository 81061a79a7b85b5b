package game

import "github.com/pthm-cable/foodweb/telemetry"

// Options configures an Ecosystem.
type Options struct {
	LogStats      bool                        // Log each stats window via slog
	StatsWindow   int                         // Steps per stats window
	OutputDir     string                      // Directory for CSV output (empty = disabled)
	StatsCallback func(telemetry.WindowStats) // Called with each flushed window
}
