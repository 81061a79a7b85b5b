package game

import (
	"log/slog"

	"github.com/pthm-cable/foodweb/telemetry"
)

// flushTelemetry flushes the stats window once enough steps have passed.
func (e *Ecosystem) flushTelemetry() {
	if !e.collector.ShouldFlush(e.step) {
		return
	}
	e.flushWindow()
}

// flushWindow emits the current stats window and checks for bookmarks.
func (e *Ecosystem) flushWindow() {
	stats := e.collector.Flush(e.step, e.Census())

	if e.statsCallback != nil {
		e.statsCallback(stats)
	}

	if e.logStats {
		stats.LogStats()
	}

	if err := e.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}

	for _, bm := range e.bookmarkDetector.Check(stats) {
		if e.logStats {
			bm.LogBookmark()
		}
		if err := e.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// writeLifetimes saves per-organism stats at the end of a run.
func (e *Ecosystem) writeLifetimes() {
	if err := e.outputManager.WriteLifetimes(e.lifetimeTracker); err != nil {
		slog.Error("failed to write lifetimes", "error", err)
	}
}

// Close flushes the last partial window and closes outputs.
func (e *Ecosystem) Close() error {
	if e.collector.Pending() {
		e.flushWindow()
	}
	e.writeLifetimes()
	return e.outputManager.Close()
}

// Collector returns the running stats collector.
func (e *Ecosystem) Collector() *telemetry.Collector {
	return e.collector
}
