package organism

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/foodweb/traits"
)

// ErrInvalidDiet is returned when a specimen is built from a non-canonical diet.
var ErrInvalidDiet = errors.New("invalid diet")

// ErrDietMismatch is returned by As when the specimen's diet differs from D.
var ErrDietMismatch = errors.New("diet mismatch")

// Specimen is an organism whose diet is only known at run time.
// Hosts that load organisms from data use it in place of Organism.
type Specimen[S comparable] struct {
	species  S
	diet     traits.Diet
	vitality uint64
}

// NewSpecimen creates a specimen. The diet must be one of the canonical kinds.
func NewSpecimen[S comparable](species S, diet traits.Diet, vitality uint64) (Specimen[S], error) {
	if !diet.Valid() {
		return Specimen[S]{}, fmt.Errorf("%w: %v", ErrInvalidDiet, diet)
	}
	return Specimen[S]{species: species, diet: diet, vitality: vitality}, nil
}

// SpecimenOf captures any profile as a specimen.
func SpecimenOf[S comparable](p Profile[S]) Specimen[S] {
	return Specimen[S]{species: p.Species(), diet: p.Diet(), vitality: p.Vitality()}
}

// As converts s back to a typed organism.
func As[D Diet, S comparable](s Specimen[S]) (Organism[S, D], error) {
	var d D
	if d.Traits() != s.diet {
		return Organism[S, D]{}, fmt.Errorf("%w: have %v, want %v", ErrDietMismatch, s.diet, d.Traits())
	}
	return New[S, D](s.species, s.vitality), nil
}

// Vitality returns the current vitality.
func (s Specimen[S]) Vitality() uint64 {
	return s.vitality
}

// IsDead reports whether vitality is zero.
func (s Specimen[S]) IsDead() bool {
	return s.vitality == 0
}

// Species returns the species tag.
func (s Specimen[S]) Species() S {
	return s.species
}

// Diet returns the run-time diet.
func (s Specimen[S]) Diet() traits.Diet {
	return s.diet
}

// IsPlant reports whether the specimen eats nothing.
func (s Specimen[S]) IsPlant() bool {
	return s.diet.IsPlant()
}

// CanEat reports whether s could eat other.
func (s Specimen[S]) CanEat(other Profile[S]) bool {
	return canEat(s.diet, other.Diet())
}

// SameSpeciesAs reports whether s and other share species and diet.
func (s Specimen[S]) SameSpeciesAs(other Profile[S]) bool {
	return sameSpecies[S](s, other)
}

// WithVitality returns a copy of s with vitality v.
func (s Specimen[S]) WithVitality(v uint64) Specimen[S] {
	return Specimen[S]{species: s.species, diet: s.diet, vitality: v}
}

// AddVitality returns a copy of s with delta added, saturating at the maximum.
func (s Specimen[S]) AddVitality(delta uint64) Specimen[S] {
	return s.WithVitality(saturatingAdd(s.vitality, delta))
}

// Kill returns a copy of s with zero vitality.
func (s Specimen[S]) Kill() Specimen[S] {
	return s.WithVitality(0)
}

func (s Specimen[S]) String() string {
	return fmt.Sprintf("%v %v (vitality %d)", s.diet, s.species, s.vitality)
}
