// Package game hosts a population of organisms and drives scenario encounters.
package game

import (
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/foodweb/components"
	"github.com/pthm-cable/foodweb/telemetry"
)

var (
	// ErrUnknownOrganism is returned for names or entities not in the ecosystem.
	ErrUnknownOrganism = errors.New("unknown organism")
	// ErrDuplicateName is returned when spawning over an existing name.
	ErrDuplicateName = errors.New("duplicate organism name")
	// ErrSelfEncounter is returned when an organism is asked to meet itself.
	ErrSelfEncounter = errors.New("organism cannot meet itself")
)

// Ecosystem holds the population and telemetry state.
type Ecosystem struct {
	world *ecs.World

	// Entity mapper for all organism components
	entityMapper *ecs.Map3[
		components.Identity,
		components.Vitals,
		components.Lineage,
	]
	entityFilter *ecs.Filter3[
		components.Identity,
		components.Vitals,
		components.Lineage,
	]

	// Individual component mappers for lookups
	identityMap *ecs.Map1[components.Identity]
	vitalsMap   *ecs.Map1[components.Vitals]
	lineageMap  *ecs.Map1[components.Lineage]

	byName map[string]ecs.Entity
	byID   map[uint32]ecs.Entity

	// State
	step   int32
	nextID uint32

	// Telemetry
	collector        *telemetry.Collector
	lifetimeTracker  *telemetry.LifetimeTracker
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	logStats         bool
	statsCallback    func(telemetry.WindowStats)
	perf             *PerfStats
}

// NewEcosystem creates an empty ecosystem.
func NewEcosystem(opts Options) (*Ecosystem, error) {
	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}

	e := &Ecosystem{
		world:            ecs.NewWorld(),
		byName:           make(map[string]ecs.Entity),
		byID:             make(map[uint32]ecs.Entity),
		nextID:           1,
		collector:        telemetry.NewCollector(opts.StatsWindow),
		lifetimeTracker:  telemetry.NewLifetimeTracker(),
		bookmarkDetector: telemetry.NewBookmarkDetector(),
		outputManager:    om,
		logStats:         opts.LogStats,
		statsCallback:    opts.StatsCallback,
		perf:             NewPerfStats(),
	}
	e.entityMapper = ecs.NewMap3[
		components.Identity,
		components.Vitals,
		components.Lineage,
	](e.world)
	e.entityFilter = ecs.NewFilter3[
		components.Identity,
		components.Vitals,
		components.Lineage,
	](e.world)
	e.identityMap = ecs.NewMap1[components.Identity](e.world)
	e.vitalsMap = ecs.NewMap1[components.Vitals](e.world)
	e.lineageMap = ecs.NewMap1[components.Lineage](e.world)

	return e, nil
}

// Step returns the number of scenario steps run so far.
func (e *Ecosystem) Step() int32 {
	return e.step
}

// Lookup returns the entity with the given name.
func (e *Ecosystem) Lookup(name string) (ecs.Entity, bool) {
	entity, ok := e.byName[name]
	return entity, ok
}

// Vitals returns the current vitals of an entity.
func (e *Ecosystem) Vitals(entity ecs.Entity) (components.Vitals, bool) {
	if !e.world.Alive(entity) {
		return components.Vitals{}, false
	}
	return *e.vitalsMap.Get(entity), true
}

// Identity returns the identity of an entity.
func (e *Ecosystem) Identity(entity ecs.Entity) (components.Identity, bool) {
	if !e.world.Alive(entity) {
		return components.Identity{}, false
	}
	return *e.identityMap.Get(entity), true
}

// Population returns the number of organisms, living or dead.
func (e *Ecosystem) Population() int {
	return len(e.byID)
}

// Lifetimes returns per-organism statistics ordered by ID.
func (e *Ecosystem) Lifetimes() []telemetry.LifetimeStats {
	return e.lifetimeTracker.All()
}

// Perf returns per-phase timing for scenario runs.
func (e *Ecosystem) Perf() *PerfStats {
	return e.perf
}
