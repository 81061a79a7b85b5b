package organism

import (
	"errors"
	"testing"

	"github.com/pthm-cable/foodweb/traits"
)

func TestEncounterSeriesEmpty(t *testing.T) {
	lion := NewCarnivore("lion", 50)
	got, err := EncounterSeries(lion)
	if err != nil {
		t.Fatalf("EncounterSeries: %v", err)
	}
	if got != lion {
		t.Errorf("EncounterSeries(lion) = %v, want %v", got, lion)
	}
}

func TestEncounterSeriesMatchesFold(t *testing.T) {
	bear := NewOmnivore("bear", 20)
	grass := NewPlant("grass", 15)
	deer := NewHerbivore("deer", 30)
	wolf := NewCarnivore("wolf", 60)
	cub := NewOmnivore("bear", 4)

	got, err := EncounterSeries(bear, grass, deer, wolf, cub)
	if err != nil {
		t.Fatalf("EncounterSeries: %v", err)
	}

	// Fold by hand, keeping only the first party.
	step1, _ := Encounter(bear, grass)
	step2, _ := Encounter(step1.First, deer)
	step3, _ := Encounter(step2.First, wolf)
	step4, _ := Encounter(step3.First, cub)
	if got != step4.First {
		t.Errorf("EncounterSeries = %v, want %v", got, step4.First)
	}

	// grass: 20+15=35; deer: hunt 35+15=50; wolf: fight 60 >= 50, bear dies;
	// cub: dead party.
	if !got.IsDead() {
		t.Errorf("EncounterSeries vitality = %d, want 0", got.Vitality())
	}
}

func TestEncounterSeriesIgnoresOffspring(t *testing.T) {
	a := NewHerbivore("deer", 10)
	got, err := EncounterSeries(a, NewHerbivore("deer", 30), NewPlant("grass", 5))
	if err != nil {
		t.Fatalf("EncounterSeries: %v", err)
	}
	if got.Vitality() != 15 {
		t.Errorf("vitality = %d, want 15", got.Vitality())
	}
}

func TestEncounterSeriesAcceptsSpecimens(t *testing.T) {
	deer := NewHerbivore("deer", 10)
	grass, err := NewSpecimen("grass", NewPlant("", 0).Diet(), 7)
	if err != nil {
		t.Fatal(err)
	}
	got, err := EncounterSeries(deer, grass, grass)
	if err != nil {
		t.Fatalf("EncounterSeries: %v", err)
	}
	if got.Vitality() != 24 {
		t.Errorf("vitality = %d, want 24", got.Vitality())
	}
}

func TestEncounterSeriesRejectsPlants(t *testing.T) {
	fern := NewPlant("fern", 10)
	got, err := EncounterSeries(fern, NewHerbivore("deer", 50), NewPlant("moss", 3))
	if !errors.Is(err, ErrImmobilePair) {
		t.Fatalf("error = %v, want ErrImmobilePair", err)
	}
	if got != (Plant[string]{}) {
		t.Errorf("partial result returned: %v", got)
	}
}

// oddProfile reports a diet outside the four kinds.
type oddProfile struct{}

func (oddProfile) Species() string   { return "slime" }
func (oddProfile) Diet() traits.Diet { return traits.Diet(0x80) }
func (oddProfile) Vitality() uint64  { return 5 }

func TestEncounterSeriesRejectsInvalidDiet(t *testing.T) {
	wolf := NewCarnivore("wolf", 40)
	got, err := EncounterSeries(wolf, NewHerbivore("deer", 10), oddProfile{})
	if !errors.Is(err, ErrInvalidDiet) {
		t.Fatalf("error = %v, want ErrInvalidDiet", err)
	}
	if got != (Carnivore[string]{}) {
		t.Errorf("partial result returned: %v", got)
	}
}
