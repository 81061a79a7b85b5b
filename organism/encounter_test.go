package organism

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pthm-cable/foodweb/traits"
)

func TestEncounterDeadParty(t *testing.T) {
	for _, da := range traits.Kinds {
		for _, db := range traits.Kinds {
			if da.IsPlant() && db.IsPlant() {
				continue
			}
			for _, vs := range [][2]uint64{{0, 10}, {10, 0}, {0, 0}} {
				a, _ := NewSpecimen("a", da, vs[0])
				b, _ := NewSpecimen("a", db, vs[1])
				t.Run(fmt.Sprintf("%v_%d_vs_%v_%d", da, vs[0], db, vs[1]), func(t *testing.T) {
					out, err := Meet(a, b)
					if err != nil {
						t.Fatalf("Meet: %v", err)
					}
					if out.Rule != RuleDeadParty {
						t.Errorf("Rule = %v, want dead_party", out.Rule)
					}
					if out.First != a || out.Second != b {
						t.Errorf("parties changed: %v, %v", out.First, out.Second)
					}
					if out.Offspring != nil {
						t.Errorf("unexpected offspring %v", *out.Offspring)
					}
				})
			}
		}
	}
}

func TestEncounterMating(t *testing.T) {
	a := NewHerbivore("Gazella dorcas", 10)
	b := NewHerbivore("Gazella dorcas", 20)

	out, err := Encounter(a, b)
	if err != nil {
		t.Fatalf("Encounter: %v", err)
	}
	if out.Rule != RuleMating {
		t.Errorf("Rule = %v, want mating", out.Rule)
	}
	if out.First != a || out.Second != b {
		t.Errorf("parents changed: %v, %v", out.First, out.Second)
	}
	if out.Offspring == nil {
		t.Fatal("expected offspring")
	}
	if got := out.Offspring.Vitality(); got != 15 {
		t.Errorf("offspring vitality = %d, want 15", got)
	}
	if out.Offspring.Species() != "Gazella dorcas" {
		t.Errorf("offspring species = %q", out.Offspring.Species())
	}
}

func TestEncounterMatingBeforePredation(t *testing.T) {
	// Two carnivores of one species could fight, but mating wins.
	out, err := Encounter(NewCarnivore("wolf", 100), NewCarnivore("wolf", 7))
	if err != nil {
		t.Fatalf("Encounter: %v", err)
	}
	if out.Rule != RuleMating {
		t.Fatalf("Rule = %v, want mating", out.Rule)
	}
	if out.Offspring == nil || out.Offspring.Vitality() != 53 {
		t.Errorf("offspring = %v, want vitality 53", out.Offspring)
	}
}

func TestEncounterTable(t *testing.T) {
	type side struct {
		diet     traits.Diet
		species  string
		vitality uint64
	}
	tests := []struct {
		name       string
		a, b       side
		wantRule   Rule
		wantFirst  uint64
		wantSecond uint64
	}{
		{"fight equal", side{traits.Carnivore, "lion", 50}, side{traits.Carnivore, "tiger", 50}, RuleFight, 0, 0},
		{"fight first wins", side{traits.Carnivore, "lion", 100}, side{traits.Omnivore, "bear", 40}, RuleFight, 120, 0},
		{"fight second wins", side{traits.Omnivore, "bear", 40}, side{traits.Carnivore, "lion", 100}, RuleFight, 0, 120},
		{"fight diet splits species", side{traits.Carnivore, "x", 10}, side{traits.Omnivore, "x", 20}, RuleFight, 0, 25},
		{"grazing", side{traits.Herbivore, "deer", 30}, side{traits.Plant, "grass", 50}, RuleGrazing, 80, 0},
		{"grazing plant first", side{traits.Plant, "grass", 50}, side{traits.Omnivore, "boar", 5}, RuleGrazing, 0, 55},
		{"grazing dominant plant", side{traits.Herbivore, "deer", 1}, side{traits.Plant, "oak", 1000}, RuleGrazing, 1001, 0},
		{"standoff equal", side{traits.Carnivore, "lion", 10}, side{traits.Herbivore, "deer", 10}, RuleStandoff, 10, 10},
		{"standoff prey stronger", side{traits.Herbivore, "buffalo", 90}, side{traits.Carnivore, "lion", 60}, RuleStandoff, 90, 60},
		{"hunt", side{traits.Carnivore, "lion", 30}, side{traits.Herbivore, "deer", 11}, RuleHunt, 35, 0},
		{"hunt reversed", side{traits.Herbivore, "deer", 11}, side{traits.Omnivore, "bear", 30}, RuleHunt, 0, 35},
		{"carnivore ignores plant", side{traits.Carnivore, "lion", 10}, side{traits.Plant, "grass", 10}, RuleIndifferent, 10, 10},
		{"herbivores ignore each other", side{traits.Herbivore, "deer", 10}, side{traits.Herbivore, "elk", 30}, RuleIndifferent, 10, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewSpecimen(tt.a.species, tt.a.diet, tt.a.vitality)
			if err != nil {
				t.Fatal(err)
			}
			b, err := NewSpecimen(tt.b.species, tt.b.diet, tt.b.vitality)
			if err != nil {
				t.Fatal(err)
			}

			out, err := Meet(a, b)
			if err != nil {
				t.Fatalf("Meet: %v", err)
			}
			if out.Rule != tt.wantRule {
				t.Errorf("Rule = %v, want %v", out.Rule, tt.wantRule)
			}
			if got := out.First.Vitality(); got != tt.wantFirst {
				t.Errorf("first vitality = %d, want %d", got, tt.wantFirst)
			}
			if got := out.Second.Vitality(); got != tt.wantSecond {
				t.Errorf("second vitality = %d, want %d", got, tt.wantSecond)
			}
			if out.Offspring != nil {
				t.Errorf("unexpected offspring %v", *out.Offspring)
			}
			if out.First.Diet() != a.Diet() || out.Second.Diet() != b.Diet() {
				t.Error("diet changed during encounter")
			}
		})
	}
}

func TestEncounterTypedMatchesSpecimen(t *testing.T) {
	lion := NewCarnivore("lion", 100)
	bear := NewOmnivore("bear", 40)

	typed, err := Encounter(lion, bear)
	if err != nil {
		t.Fatalf("Encounter: %v", err)
	}
	dynamic, err := Meet(lion.Specimen(), bear.Specimen())
	if err != nil {
		t.Fatalf("Meet: %v", err)
	}

	if typed.Rule != dynamic.Rule {
		t.Errorf("rules differ: %v vs %v", typed.Rule, dynamic.Rule)
	}
	if typed.First.Specimen() != dynamic.First || typed.Second.Specimen() != dynamic.Second {
		t.Errorf("results differ: (%v, %v) vs (%v, %v)", typed.First, typed.Second, dynamic.First, dynamic.Second)
	}
	if typed.First.Vitality() != 120 || !typed.Second.IsDead() {
		t.Errorf("Encounter(lion, bear) = (%v, %v)", typed.First, typed.Second)
	}
}

func TestEncounterRejectsPlants(t *testing.T) {
	fern := NewPlant("fern", 5)
	moss := NewPlant("moss", 5)

	if _, err := Encounter(fern, moss); !errors.Is(err, ErrImmobilePair) {
		t.Errorf("Encounter(plant, plant) error = %v, want ErrImmobilePair", err)
	}
	// Rejected even when a plant is dead.
	if _, err := Encounter(fern.Kill(), moss); !errors.Is(err, ErrImmobilePair) {
		t.Errorf("Encounter(dead plant, plant) error = %v, want ErrImmobilePair", err)
	}
	if _, err := Meet(fern.Specimen(), fern.Specimen()); !errors.Is(err, ErrImmobilePair) {
		t.Errorf("Meet(plant, plant) error = %v, want ErrImmobilePair", err)
	}
}

// specimenGrid enumerates specimens covering every rule branch.
func specimenGrid(t *testing.T) []Specimen[string] {
	t.Helper()
	var grid []Specimen[string]
	for _, d := range traits.Kinds {
		for _, species := range []string{"alpha", "beta"} {
			for _, v := range []uint64{0, 1, 10, 11, 20} {
				s, err := NewSpecimen(species, d, v)
				if err != nil {
					t.Fatal(err)
				}
				grid = append(grid, s)
			}
		}
	}
	return grid
}

func TestEncounterCommutative(t *testing.T) {
	seen := make(map[Rule]bool)
	grid := specimenGrid(t)

	for _, a := range grid {
		for _, b := range grid {
			if a.IsPlant() && b.IsPlant() {
				continue
			}
			ab, err := Meet(a, b)
			if err != nil {
				t.Fatalf("Meet(%v, %v): %v", a, b, err)
			}
			ba, err := Meet(b, a)
			if err != nil {
				t.Fatalf("Meet(%v, %v): %v", b, a, err)
			}
			seen[ab.Rule] = true

			if ab.Rule != ba.Rule {
				t.Errorf("Meet(%v, %v) rule %v, swapped %v", a, b, ab.Rule, ba.Rule)
			}
			if ab.First != ba.Second || ab.Second != ba.First {
				t.Errorf("Meet(%v, %v) = (%v, %v), swapped = (%v, %v)", a, b, ab.First, ab.Second, ba.First, ba.Second)
			}
			if (ab.Offspring == nil) != (ba.Offspring == nil) {
				t.Errorf("Meet(%v, %v) offspring presence differs under swap", a, b)
			} else if ab.Offspring != nil && *ab.Offspring != *ba.Offspring {
				t.Errorf("Meet(%v, %v) offspring %v, swapped %v", a, b, *ab.Offspring, *ba.Offspring)
			}
		}
	}

	for _, r := range Rules {
		if !seen[r] {
			t.Errorf("rule %v never exercised", r)
		}
	}
}

func TestEncounterNeverReachesInvariant(t *testing.T) {
	grid := specimenGrid(t)
	for _, a := range grid {
		for _, b := range grid {
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("Meet(%v, %v) panicked: %v", a, b, r)
					}
				}()
				_, err := Meet(a, b)
				if err != nil && !(a.IsPlant() && b.IsPlant()) {
					t.Errorf("Meet(%v, %v) error: %v", a, b, err)
				}
			}()
		}
	}
}

func TestEncounterVitalityNonNegative(t *testing.T) {
	grid := specimenGrid(t)
	for _, a := range grid {
		for _, b := range grid {
			out, err := Meet(a, b)
			if err != nil {
				continue
			}
			// Vitality is unsigned; a kill must land on exactly zero and
			// gains never shrink the eater.
			if !out.First.IsDead() && out.First.Vitality() < a.Vitality() {
				t.Errorf("Meet(%v, %v) shrank first to %d", a, b, out.First.Vitality())
			}
			if !out.Second.IsDead() && out.Second.Vitality() < b.Vitality() {
				t.Errorf("Meet(%v, %v) shrank second to %d", a, b, out.Second.Vitality())
			}
		}
	}
}

func TestInvariantErrorMessage(t *testing.T) {
	err := &InvariantError{First: traits.Plant, Second: traits.Plant}
	want := "organism: no encounter rule matched plant vs plant"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestRuleString(t *testing.T) {
	if RuleHunt.String() != "hunt" {
		t.Errorf("RuleHunt.String() = %q", RuleHunt.String())
	}
	if Rule(42).String() != "rule(42)" {
		t.Errorf("Rule(42).String() = %q", Rule(42).String())
	}
}
