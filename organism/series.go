package organism

import "fmt"

// EncounterSeries has first meet each of rest in order and returns first as
// changed by all of those encounters. Changes to the other parties and any
// offspring are discarded.
//
// A party in rest with a non-canonical diet, or a plant first with any plant
// in rest, is rejected before any encounter runs.
func EncounterSeries[S comparable, D Diet](first Organism[S, D], rest ...Profile[S]) (Organism[S, D], error) {
	for i, other := range rest {
		if d := other.Diet(); !d.Valid() {
			return Organism[S, D]{}, fmt.Errorf("encounter %d: %w: %v", i, ErrInvalidDiet, d)
		}
	}
	if first.IsPlant() {
		for i, other := range rest {
			if other.Diet().IsPlant() {
				return Organism[S, D]{}, fmt.Errorf("encounter %d: %w", i, ErrImmobilePair)
			}
		}
	}
	for _, other := range rest {
		v, err := resolve[S](first, other)
		if err != nil {
			return Organism[S, D]{}, err
		}
		first = first.WithVitality(v.first)
	}
	return first, nil
}
