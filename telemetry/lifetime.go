package telemetry

import (
	"sort"

	"github.com/pthm-cable/foodweb/organism"
)

// LifetimeStats tracks per-organism statistics over its lifetime.
type LifetimeStats struct {
	ID         uint32 `csv:"id"`
	Name       string `csv:"name"`
	Diet       string `csv:"diet"`
	BirthStep  int32  `csv:"birth_step"`
	DeathStep  int32  `csv:"death_step"` // -1 while alive
	ParentID   uint32 `csv:"parent_id"`
	Generation uint32 `csv:"generation"`

	Encounters   int    `csv:"encounters"`
	Kills        int    `csv:"kills"`
	Children     int    `csv:"children"`
	Vitality     uint64 `csv:"vitality"`
	PeakVitality uint64 `csv:"peak_vitality"`
}

// LifetimeTracker manages per-organism lifetime statistics.
type LifetimeTracker struct {
	stats map[uint32]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[uint32]*LifetimeStats),
	}
}

// Register creates lifetime stats for a new organism.
func (lt *LifetimeTracker) Register(id uint32, name, diet string, birthStep int32, parentID, generation uint32, vitality uint64) {
	lt.stats[id] = &LifetimeStats{
		ID:           id,
		Name:         name,
		Diet:         diet,
		BirthStep:    birthStep,
		DeathStep:    -1,
		ParentID:     parentID,
		Generation:   generation,
		Vitality:     vitality,
		PeakVitality: vitality,
	}
}

// Get returns the lifetime stats for an organism, or nil if not found.
func (lt *LifetimeTracker) Get(id uint32) *LifetimeStats {
	return lt.stats[id]
}

// RecordEncounter updates both parties of an encounter.
func (lt *LifetimeTracker) RecordEncounter(step int32, e EncounterEvent) {
	lt.recordParty(step, e.FirstID, e.FirstBefore, e.FirstAfter)
	lt.recordParty(step, e.SecondID, e.SecondBefore, e.SecondAfter)

	if !killingRule(e.Rule) {
		return
	}
	// The survivor of a deadly encounter made the kill.
	if e.SecondBefore > 0 && e.SecondAfter == 0 && e.FirstAfter > 0 {
		lt.recordKill(e.FirstID)
	}
	if e.FirstBefore > 0 && e.FirstAfter == 0 && e.SecondAfter > 0 {
		lt.recordKill(e.SecondID)
	}
}

func killingRule(r organism.Rule) bool {
	switch r {
	case organism.RuleFight, organism.RuleHunt, organism.RuleGrazing:
		return true
	}
	return false
}

func (lt *LifetimeTracker) recordParty(step int32, id uint32, before, after uint64) {
	s := lt.stats[id]
	if s == nil {
		return
	}
	s.Encounters++
	s.Vitality = after
	if after > s.PeakVitality {
		s.PeakVitality = after
	}
	if before > 0 && after == 0 {
		s.DeathStep = step
	}
}

func (lt *LifetimeTracker) recordKill(id uint32) {
	if s := lt.stats[id]; s != nil {
		s.Kills++
	}
}

// RecordChild increments children count.
func (lt *LifetimeTracker) RecordChild(parentID uint32) {
	if s := lt.stats[parentID]; s != nil {
		s.Children++
	}
}

// All returns tracked stats ordered by ID.
func (lt *LifetimeTracker) All() []LifetimeStats {
	out := make([]LifetimeStats, 0, len(lt.stats))
	for _, s := range lt.stats {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Count returns the number of tracked organisms.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}
