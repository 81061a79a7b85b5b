// Package traits defines organism diet capabilities.
package traits

import (
	"fmt"
	"strings"
)

// Diet is a set of feeding capabilities.
type Diet uint8

const (
	Meat   Diet = 1 << iota // Eats animals
	Plants                  // Eats plants
)

// Canonical diet kinds.
const (
	Plant     Diet = 0
	Carnivore      = Meat
	Herbivore      = Plants
	Omnivore       = Meat | Plants
)

// Kinds lists the four canonical diets.
var Kinds = []Diet{Carnivore, Omnivore, Herbivore, Plant}

// Has checks if a diet contains a capability.
func (d Diet) Has(other Diet) bool {
	return d&other != 0
}

// Add adds a capability to the set.
func (d Diet) Add(other Diet) Diet {
	return d | other
}

// Remove removes a capability from the set.
func (d Diet) Remove(other Diet) Diet {
	return d &^ other
}

// EatsMeat reports whether the diet includes animals.
func (d Diet) EatsMeat() bool {
	return d.Has(Meat)
}

// EatsPlants reports whether the diet includes plants.
func (d Diet) EatsPlants() bool {
	return d.Has(Plants)
}

// IsPlant reports whether the diet marks an immobile organism.
func (d Diet) IsPlant() bool {
	return d&(Meat|Plants) == 0
}

// Valid reports whether d is one of the canonical kinds.
func (d Diet) Valid() bool {
	return d&^(Meat|Plants) == 0
}

// String returns the canonical kind name.
func (d Diet) String() string {
	switch d {
	case Carnivore:
		return "carnivore"
	case Omnivore:
		return "omnivore"
	case Herbivore:
		return "herbivore"
	case Plant:
		return "plant"
	default:
		return fmt.Sprintf("diet(%#02x)", uint8(d))
	}
}

// Names returns human-readable names for the capabilities in d.
func Names(d Diet) []string {
	var names []string
	if d.Has(Meat) {
		names = append(names, "Meat")
	}
	if d.Has(Plants) {
		names = append(names, "Plants")
	}
	return names
}

// ParseDiet parses a canonical kind name.
func ParseDiet(s string) (Diet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "carnivore":
		return Carnivore, nil
	case "omnivore":
		return Omnivore, nil
	case "herbivore":
		return Herbivore, nil
	case "plant":
		return Plant, nil
	}
	return 0, fmt.Errorf("unknown diet %q", s)
}
