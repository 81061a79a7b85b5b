package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/foodweb/components"
	"github.com/pthm-cable/foodweb/config"
	"github.com/pthm-cable/foodweb/traits"
)

// Spawn adds a founder organism to the ecosystem.
func (e *Ecosystem) Spawn(name, species string, diet traits.Diet, vitality uint64) (ecs.Entity, error) {
	if name == "" {
		return ecs.Entity{}, fmt.Errorf("spawn: empty name")
	}
	if !diet.Valid() {
		return ecs.Entity{}, fmt.Errorf("spawn %q: invalid diet %v", name, diet)
	}
	if _, dup := e.byName[name]; dup {
		return ecs.Entity{}, fmt.Errorf("spawn %q: %w", name, ErrDuplicateName)
	}

	vitals := components.Vitals{Species: species, Diet: diet, Vitality: vitality}
	return e.spawnEntity(name, vitals, components.Lineage{BornAtStep: e.step}), nil
}

// spawnRoster creates the starting population of a scenario.
func (e *Ecosystem) spawnRoster(roster []config.OrganismConfig) error {
	for _, org := range roster {
		diet, err := org.Kind()
		if err != nil {
			return fmt.Errorf("roster %q: %w", org.Name, err)
		}
		if _, err := e.Spawn(org.Name, org.Species, diet, org.Vitality); err != nil {
			return err
		}
	}
	slog.Debug("roster spawned", "organisms", len(roster))
	return nil
}

// spawnOffspring creates a child of parent, named after it.
func (e *Ecosystem) spawnOffspring(parent components.Identity, parentLineage components.Lineage, vitals components.Vitals) (ecs.Entity, components.Identity) {
	name := e.offspringName(parent)
	lineage := components.Lineage{
		ParentID:   parent.ID,
		Generation: parentLineage.Generation + 1,
		BornAtStep: e.step,
	}
	entity := e.spawnEntity(name, vitals, lineage)

	e.lifetimeTracker.RecordChild(parent.ID)
	e.collector.RecordBirth()

	return entity, *e.identityMap.Get(entity)
}

// offspringName returns the first free "<parent>#<n>" name.
func (e *Ecosystem) offspringName(parent components.Identity) string {
	n := 1
	if s := e.lifetimeTracker.Get(parent.ID); s != nil {
		n = s.Children + 1
	}
	for {
		name := fmt.Sprintf("%s#%d", parent.Name, n)
		if _, taken := e.byName[name]; !taken {
			return name
		}
		n++
	}
}

// spawnEntity creates the entity and registers it everywhere.
func (e *Ecosystem) spawnEntity(name string, vitals components.Vitals, lineage components.Lineage) ecs.Entity {
	id := e.nextID
	e.nextID++

	identity := components.Identity{ID: id, Name: name}
	entity := e.entityMapper.NewEntity(&identity, &vitals, &lineage)

	e.byName[name] = entity
	e.byID[id] = entity
	e.lifetimeTracker.Register(id, name, vitals.Diet.String(), e.step, lineage.ParentID, lineage.Generation, vitals.Vitality)

	return entity
}
