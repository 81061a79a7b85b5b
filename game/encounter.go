package game

import (
	"fmt"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/foodweb/components"
	"github.com/pthm-cable/foodweb/organism"
	"github.com/pthm-cable/foodweb/telemetry"
)

// party is an entity's components copied out of the world.
type party struct {
	entity   ecs.Entity
	identity components.Identity
	vitals   components.Vitals
	lineage  components.Lineage
}

func (p party) specimen() (organism.Specimen[string], error) {
	s, err := p.vitals.Specimen()
	if err != nil {
		return s, fmt.Errorf("%s: %w", p.identity.Name, err)
	}
	return s, nil
}

func (p party) telemetry(after uint64) telemetry.Party {
	return telemetry.Party{
		ID:     p.identity.ID,
		Name:   p.identity.Name,
		Diet:   p.vitals.Diet,
		Before: p.vitals.Vitality,
		After:  after,
	}
}

// load copies an entity's components.
func (e *Ecosystem) load(entity ecs.Entity) (party, error) {
	if !e.world.Alive(entity) {
		return party{}, ErrUnknownOrganism
	}
	return party{
		entity:   entity,
		identity: *e.identityMap.Get(entity),
		vitals:   *e.vitalsMap.Get(entity),
		lineage:  *e.lineageMap.Get(entity),
	}, nil
}

// Meet resolves an encounter between a and b. Both parties' vitality is
// written back and a mating spawns an offspring of a's kind.
func (e *Ecosystem) Meet(a, b ecs.Entity) (organism.Rule, error) {
	if a == b {
		return 0, ErrSelfEncounter
	}
	first, err := e.load(a)
	if err != nil {
		return 0, err
	}
	second, err := e.load(b)
	if err != nil {
		return 0, err
	}

	sa, err := first.specimen()
	if err != nil {
		return 0, err
	}
	sb, err := second.specimen()
	if err != nil {
		return 0, err
	}

	out, err := organism.Meet(sa, sb)
	if err != nil {
		return 0, fmt.Errorf("%s meets %s: %w", first.identity.Name, second.identity.Name, err)
	}

	// Write back before spawning: new entities may move component storage.
	*e.vitalsMap.Get(a) = components.VitalsFrom(out.First)
	*e.vitalsMap.Get(b) = components.VitalsFrom(out.Second)

	event := telemetry.NewEncounterEvent(e.step, out.Rule, false,
		first.telemetry(out.First.Vitality()),
		second.telemetry(out.Second.Vitality()))

	if out.Offspring != nil {
		_, child := e.spawnOffspring(first.identity, first.lineage, components.VitalsFrom(*out.Offspring))
		event = event.WithOffspring(child.Name, out.Offspring.Vitality())
	}

	e.record(event)
	return out.Rule, nil
}

// Series runs first against each of rest in order. Only first's vitality is
// kept; the others and any offspring are left as they were. A series that
// would pair two plants is rejected before any encounter runs.
func (e *Ecosystem) Series(first ecs.Entity, rest ...ecs.Entity) error {
	head, err := e.load(first)
	if err != nil {
		return err
	}
	cur, err := head.specimen()
	if err != nil {
		return err
	}

	others := make([]party, len(rest))
	for i, entity := range rest {
		if entity == first {
			return fmt.Errorf("encounter %d: %w", i, ErrSelfEncounter)
		}
		if others[i], err = e.load(entity); err != nil {
			return fmt.Errorf("encounter %d: %w", i, err)
		}
		if cur.IsPlant() && others[i].vitals.Diet.IsPlant() {
			return fmt.Errorf("encounter %d: %s meets %s: %w",
				i, head.identity.Name, others[i].identity.Name, organism.ErrImmobilePair)
		}
	}

	for _, other := range others {
		so, err := other.specimen()
		if err != nil {
			return err
		}
		out, err := organism.Meet(cur, so)
		if err != nil {
			return fmt.Errorf("%s meets %s: %w", head.identity.Name, other.identity.Name, err)
		}

		before := head
		before.vitals.Vitality = cur.Vitality()
		e.record(telemetry.NewEncounterEvent(e.step, out.Rule, true,
			before.telemetry(out.First.Vitality()),
			other.telemetry(other.vitals.Vitality)))

		cur = out.First
	}

	*e.vitalsMap.Get(first) = components.VitalsFrom(cur)
	return nil
}

// record feeds an encounter event to every telemetry sink.
func (e *Ecosystem) record(event telemetry.EncounterEvent) {
	e.collector.RecordEncounter(event)
	e.lifetimeTracker.RecordEncounter(e.step, event)
	logEncounter(event)
	if err := e.outputManager.WriteEncounter(event); err != nil {
		logError("failed to write encounter", err)
	}
}

// Census counts the population by diet kind.
func (e *Ecosystem) Census() telemetry.Census {
	census := telemetry.NewCensus()
	query := e.entityFilter.Query()
	for query.Next() {
		_, vitals, _ := query.Get()
		census.Add(vitals.Diet, vitals.Vitality)
	}
	return census
}
