package config

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a roster name.
const maxSuggestDistance = 3

// Validate checks the roster and scenario. Steps that would pair two plants
// are rejected here, before any encounter runs.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Log.Format)
	}

	for _, org := range c.Roster {
		if org.Name == "" {
			return fmt.Errorf("%w: roster entry without name", ErrInvalid)
		}
		if _, err := org.Kind(); err != nil {
			return fmt.Errorf("%w: organism %q: %v", ErrInvalid, org.Name, err)
		}
	}

	for i, step := range c.Encounters {
		first, err := c.lookup(step.First)
		if err != nil {
			return fmt.Errorf("%w: encounter %d: %v", ErrInvalid, i, err)
		}
		if len(step.Against) == 0 {
			return fmt.Errorf("%w: encounter %d: %q meets nobody", ErrInvalid, i, step.First)
		}
		firstDiet, _ := first.Kind()
		for _, name := range step.Against {
			other, err := c.lookup(name)
			if err != nil {
				return fmt.Errorf("%w: encounter %d: %v", ErrInvalid, i, err)
			}
			otherDiet, _ := other.Kind()
			if firstDiet.IsPlant() && otherDiet.IsPlant() {
				return fmt.Errorf("%w: encounter %d: plants %q and %q cannot meet", ErrInvalid, i, first.Name, other.Name)
			}
		}
	}
	return nil
}

func (c *Config) lookup(name string) (OrganismConfig, error) {
	org, ok := c.Organism(name)
	if ok {
		return org, nil
	}
	if s := Suggest(name, c.Names()); s != "" {
		return OrganismConfig{}, fmt.Errorf("unknown organism %q (did you mean %q?)", name, s)
	}
	return OrganismConfig{}, fmt.Errorf("unknown organism %q", name)
}

// Suggest returns the candidate closest to name by edit distance, or "" if
// none is close enough. Ties go to the alphabetically first candidate.
func Suggest(name string, candidates []string) string {
	type scored struct {
		val  string
		dist int
	}
	var results []scored
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(name, cand)
		if dist > maxSuggestDistance || dist >= len(cand) {
			continue
		}
		results = append(results, scored{val: cand, dist: dist})
	}
	if len(results) == 0 {
		return ""
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].val < results[j].val
		}
		return results[i].dist < results[j].dist
	})
	return results[0].val
}
