package game

import (
	"log/slog"

	"github.com/pthm-cable/foodweb/telemetry"
	"github.com/pthm-cable/foodweb/traits"
)

func logEncounter(event telemetry.EncounterEvent) {
	slog.Debug("encounter", "event", event)
}

func logError(msg string, err error) {
	slog.Error(msg, "error", err)
}

// logWorldState logs a census summary.
func (e *Ecosystem) logWorldState() {
	census := e.Census()
	attrs := []any{
		"step", e.step,
		"population", e.Population(),
		"alive", census.AliveTotal(),
		"dead", census.Dead,
	}
	for _, kind := range traits.Kinds {
		attrs = append(attrs, kind.String(), census.Alive[kind])
	}
	slog.Info("world", attrs...)
}
