// Package organism implements typed organisms and the rules that resolve an
// encounter between two of them.
//
// An Organism carries its diet in its type: Organism[S, CarnivoreDiet] and
// Organism[S, PlantDiet] are distinct types, and two organisms can only meet
// when they share the species identity type S. Values are immutable; every
// operation that changes vitality returns a new value.
package organism

import (
	"fmt"
	"math"

	"github.com/pthm-cable/foodweb/traits"
)

// Diet is implemented by the zero-size marker types that fix an organism's
// feeding capabilities at the type level.
type Diet interface {
	Traits() traits.Diet
}

// CarnivoreDiet eats animals only.
type CarnivoreDiet struct{}

// OmnivoreDiet eats animals and plants.
type OmnivoreDiet struct{}

// HerbivoreDiet eats plants only.
type HerbivoreDiet struct{}

// PlantDiet eats nothing and cannot move.
type PlantDiet struct{}

func (CarnivoreDiet) Traits() traits.Diet { return traits.Carnivore }
func (OmnivoreDiet) Traits() traits.Diet  { return traits.Omnivore }
func (HerbivoreDiet) Traits() traits.Diet { return traits.Herbivore }
func (PlantDiet) Traits() traits.Diet     { return traits.Plant }

// Profile is a read-only view of an organism of species type S, whatever its diet.
type Profile[S comparable] interface {
	Species() S
	Diet() traits.Diet
	Vitality() uint64
}

// Organism is an immutable organism with species identity S and diet D.
type Organism[S comparable, D Diet] struct {
	species  S
	vitality uint64
}

// Canonical organism kinds.
type (
	Carnivore[S comparable] = Organism[S, CarnivoreDiet]
	Omnivore[S comparable]  = Organism[S, OmnivoreDiet]
	Herbivore[S comparable] = Organism[S, HerbivoreDiet]
	Plant[S comparable]     = Organism[S, PlantDiet]
)

// New creates an organism with the given species and initial vitality.
func New[S comparable, D Diet](species S, vitality uint64) Organism[S, D] {
	return Organism[S, D]{species: species, vitality: vitality}
}

// NewCarnivore creates a carnivore.
func NewCarnivore[S comparable](species S, vitality uint64) Carnivore[S] {
	return New[S, CarnivoreDiet](species, vitality)
}

// NewOmnivore creates an omnivore.
func NewOmnivore[S comparable](species S, vitality uint64) Omnivore[S] {
	return New[S, OmnivoreDiet](species, vitality)
}

// NewHerbivore creates a herbivore.
func NewHerbivore[S comparable](species S, vitality uint64) Herbivore[S] {
	return New[S, HerbivoreDiet](species, vitality)
}

// NewPlant creates a plant.
func NewPlant[S comparable](species S, vitality uint64) Plant[S] {
	return New[S, PlantDiet](species, vitality)
}

// Vitality returns the current vitality. Zero means dead.
func (o Organism[S, D]) Vitality() uint64 {
	return o.vitality
}

// IsDead reports whether vitality is zero.
func (o Organism[S, D]) IsDead() bool {
	return o.vitality == 0
}

// Species returns the species identity.
func (o Organism[S, D]) Species() S {
	return o.species
}

// Diet returns the feeding capabilities fixed by D.
func (o Organism[S, D]) Diet() traits.Diet {
	var d D
	return d.Traits()
}

// IsPlant reports whether the organism is an immobile plant.
func (o Organism[S, D]) IsPlant() bool {
	return o.Diet().IsPlant()
}

// CanEat reports whether o is able to eat other. Vitality plays no part.
func (o Organism[S, D]) CanEat(other Profile[S]) bool {
	return canEat(o.Diet(), other.Diet())
}

// SameSpeciesAs reports whether o and other have equal species values and
// identical diets. Organisms with different diets are never the same species.
func (o Organism[S, D]) SameSpeciesAs(other Profile[S]) bool {
	return sameSpecies[S](o, other)
}

// WithVitality returns a copy of o with vitality set to v.
func (o Organism[S, D]) WithVitality(v uint64) Organism[S, D] {
	return Organism[S, D]{species: o.species, vitality: v}
}

// AddVitality returns a copy of o with delta added to its vitality.
// The sum saturates at math.MaxUint64.
func (o Organism[S, D]) AddVitality(delta uint64) Organism[S, D] {
	return o.WithVitality(saturatingAdd(o.vitality, delta))
}

// Kill returns a dead copy of o.
func (o Organism[S, D]) Kill() Organism[S, D] {
	return o.WithVitality(0)
}

// Specimen returns the run-time form of o.
func (o Organism[S, D]) Specimen() Specimen[S] {
	return Specimen[S]{species: o.species, diet: o.Diet(), vitality: o.vitality}
}

func (o Organism[S, D]) String() string {
	return fmt.Sprintf("%v %v (vitality %d)", o.Diet(), o.species, o.vitality)
}

func canEat(eater, food traits.Diet) bool {
	if eater.EatsMeat() && !food.IsPlant() {
		return true
	}
	return eater.EatsPlants() && food.IsPlant()
}

func sameSpecies[S comparable](a, b Profile[S]) bool {
	return a.Species() == b.Species() && a.Diet() == b.Diet()
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
