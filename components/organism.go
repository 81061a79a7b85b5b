// Package components defines ECS components for the ecosystem.
package components

import (
	"github.com/pthm-cable/foodweb/organism"
	"github.com/pthm-cable/foodweb/traits"
)

// Identity names an organism within the ecosystem.
type Identity struct {
	ID   uint32
	Name string
}

// Vitals holds the encounter-relevant state of an organism.
// Diet never changes after spawn; only Vitality is rewritten.
type Vitals struct {
	Species  string
	Diet     traits.Diet
	Vitality uint64
}

// Lineage records where an organism came from.
type Lineage struct {
	ParentID   uint32 // 0 for founders
	Generation uint32
	BornAtStep int32
}

// Specimen converts v to the engine form.
func (v Vitals) Specimen() (organism.Specimen[string], error) {
	return organism.NewSpecimen(v.Species, v.Diet, v.Vitality)
}

// VitalsFrom converts an engine specimen back to a component.
func VitalsFrom(s organism.Specimen[string]) Vitals {
	return Vitals{Species: s.Species(), Diet: s.Diet(), Vitality: s.Vitality()}
}

// Alive reports whether the organism still has vitality.
func (v Vitals) Alive() bool {
	return v.Vitality > 0
}
