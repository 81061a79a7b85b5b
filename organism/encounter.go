package organism

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/foodweb/traits"
)

// ErrImmobilePair is returned when two plants are asked to meet.
var ErrImmobilePair = errors.New("two plants cannot meet")

// InvariantError is the panic value raised when no encounter rule matches.
// Reaching it means the rule set or its preconditions were broken.
type InvariantError struct {
	First, Second traits.Diet
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("organism: no encounter rule matched %v vs %v", e.First, e.Second)
}

// Rule identifies the encounter rule that decided an outcome.
type Rule uint8

const (
	RuleDeadParty   Rule = iota // One side is dead, nothing happens
	RuleMating                  // Same species, offspring spawned
	RuleIndifferent             // Neither side can eat the other
	RuleFight                   // Both animals can eat each other
	RuleGrazing                 // An animal eats a plant
	RuleStandoff                // One-way predation, prey is not weaker
	RuleHunt                    // One-way predation, predator kills prey
)

// RuleCount is the number of encounter rules.
const RuleCount = int(RuleHunt) + 1

var ruleNames = [...]string{
	RuleDeadParty:   "dead_party",
	RuleMating:      "mating",
	RuleIndifferent: "indifferent",
	RuleFight:       "fight",
	RuleGrazing:     "grazing",
	RuleStandoff:    "standoff",
	RuleHunt:        "hunt",
}

// Rules lists every rule in evaluation order.
var Rules = []Rule{RuleDeadParty, RuleMating, RuleIndifferent, RuleFight, RuleGrazing, RuleStandoff, RuleHunt}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("rule(%d)", uint8(r))
}

// Outcome is the result of an encounter between a and b.
type Outcome[S comparable, A, B Diet] struct {
	First     Organism[S, A]
	Second    Organism[S, B]
	Offspring *Organism[S, A] // nil unless the parties mated
	Rule      Rule
}

// SpecimenOutcome is the result of Meet.
type SpecimenOutcome[S comparable] struct {
	First     Specimen[S]
	Second    Specimen[S]
	Offspring *Specimen[S]
	Rule      Rule
}

// Encounter resolves a meeting between a and b and returns both parties as
// they are afterwards, plus an offspring of a's kind when they mated.
// Meeting two plants is rejected with ErrImmobilePair before any rule runs.
func Encounter[S comparable, A, B Diet](a Organism[S, A], b Organism[S, B]) (Outcome[S, A, B], error) {
	v, err := resolve[S](a, b)
	if err != nil {
		return Outcome[S, A, B]{}, err
	}
	out := Outcome[S, A, B]{
		First:  a.WithVitality(v.first),
		Second: b.WithVitality(v.second),
		Rule:   v.rule,
	}
	if v.spawned {
		child := a.WithVitality(v.offspring)
		out.Offspring = &child
	}
	return out, nil
}

// Meet is Encounter for specimens whose diets are only known at run time.
func Meet[S comparable](a, b Specimen[S]) (SpecimenOutcome[S], error) {
	v, err := resolve[S](a, b)
	if err != nil {
		return SpecimenOutcome[S]{}, err
	}
	out := SpecimenOutcome[S]{
		First:  a.WithVitality(v.first),
		Second: b.WithVitality(v.second),
		Rule:   v.rule,
	}
	if v.spawned {
		child := a.WithVitality(v.offspring)
		out.Offspring = &child
	}
	return out, nil
}

// verdict holds post-encounter vitalities.
type verdict struct {
	rule      Rule
	first     uint64
	second    uint64
	offspring uint64
	spawned   bool
}

// resolve applies the encounter rules in order; the first match wins.
func resolve[S comparable](a, b Profile[S]) (verdict, error) {
	da, db := a.Diet(), b.Diet()
	if da.IsPlant() && db.IsPlant() {
		return verdict{}, ErrImmobilePair
	}

	va, vb := a.Vitality(), b.Vitality()
	v := verdict{first: va, second: vb}

	if va == 0 || vb == 0 {
		v.rule = RuleDeadParty
		return v, nil
	}

	if sameSpecies(a, b) {
		v.rule = RuleMating
		v.offspring = mean(va, vb)
		v.spawned = true
		return v, nil
	}

	aEatsB, bEatsA := canEat(da, db), canEat(db, da)
	if !aEatsB && !bEatsA {
		v.rule = RuleIndifferent
		return v, nil
	}

	if !da.IsPlant() && !db.IsPlant() && aEatsB && bEatsA {
		v.rule = RuleFight
		if vb >= va {
			v.first = 0
		} else {
			v.first = saturatingAdd(va, vb/2)
		}
		if va >= vb {
			v.second = 0
		} else {
			v.second = saturatingAdd(vb, va/2)
		}
		return v, nil
	}

	if db.IsPlant() && aEatsB {
		v.rule = RuleGrazing
		v.first = saturatingAdd(va, vb)
		v.second = 0
		return v, nil
	}
	if da.IsPlant() && bEatsA {
		v.rule = RuleGrazing
		v.first = 0
		v.second = saturatingAdd(vb, va)
		return v, nil
	}

	if aEatsB {
		if vb >= va {
			v.rule = RuleStandoff
			return v, nil
		}
		v.rule = RuleHunt
		v.first = saturatingAdd(va, vb/2)
		v.second = 0
		return v, nil
	}
	if bEatsA {
		if va >= vb {
			v.rule = RuleStandoff
			return v, nil
		}
		v.rule = RuleHunt
		v.first = 0
		v.second = saturatingAdd(vb, va/2)
		return v, nil
	}

	panic(&InvariantError{First: da, Second: db})
}

// mean returns floor((a+b)/2) without overflowing.
func mean(a, b uint64) uint64 {
	return a/2 + b/2 + a&b&1
}
