package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/foodweb/config"
)

// RunScenario spawns cfg's roster and runs each encounter step in order,
// one step per tick. It stops at the first failing step.
func (e *Ecosystem) RunScenario(cfg *config.Config) error {
	if err := e.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}
	if err := e.spawnRoster(cfg.Roster); err != nil {
		return err
	}
	e.bookmarkDetector.Seed(e.Census())
	e.logWorldState()

	for i, step := range cfg.Encounters {
		phase := "meet"
		if step.IsSeries() {
			phase = "series"
		}
		if err := e.perf.Time(phase, func() error { return e.runStep(step) }); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		e.step++
		e.perf.Time("telemetry", func() error {
			e.flushTelemetry()
			return nil
		})
	}

	e.logWorldState()
	e.perf.logPerfStats()
	return nil
}

func (e *Ecosystem) runStep(step config.StepConfig) error {
	first, err := e.resolve(step.First)
	if err != nil {
		return err
	}
	rest := make([]ecs.Entity, len(step.Against))
	for i, name := range step.Against {
		if rest[i], err = e.resolve(name); err != nil {
			return err
		}
	}

	switch {
	case len(rest) == 0:
		return fmt.Errorf("%q meets nobody", step.First)
	case !step.IsSeries():
		_, err := e.Meet(first, rest[0])
		return err
	default:
		return e.Series(first, rest...)
	}
}

func (e *Ecosystem) resolve(name string) (ecs.Entity, error) {
	entity, ok := e.Lookup(name)
	if !ok {
		return ecs.Entity{}, fmt.Errorf("%w %q", ErrUnknownOrganism, name)
	}
	return entity, nil
}
