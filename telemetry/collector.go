package telemetry

import (
	"gonum.org/v1/gonum/floats"

	"github.com/pthm-cable/foodweb/organism"
	"github.com/pthm-cable/foodweb/traits"
)

// Collector accumulates events within step windows and produces WindowStats.
type Collector struct {
	windowSteps     int32
	windowStartStep int32

	// Event counters for current window
	rules  [organism.RuleCount]int
	births int
	deaths int
}

// NewCollector creates a new stats collector flushing every windowSteps steps.
func NewCollector(windowSteps int) *Collector {
	if windowSteps < 1 {
		windowSteps = 1
	}
	return &Collector{windowSteps: int32(windowSteps)}
}

// RecordEncounter records a resolved encounter and the deaths it caused.
func (c *Collector) RecordEncounter(e EncounterEvent) {
	if int(e.Rule) < len(c.rules) {
		c.rules[e.Rule]++
	}
	if e.FirstBefore > 0 && e.FirstAfter == 0 {
		c.deaths++
	}
	if e.SecondBefore > 0 && e.SecondAfter == 0 {
		c.deaths++
	}
}

// RecordBirth records an offspring joining the population.
func (c *Collector) RecordBirth() {
	c.births++
}

// ShouldFlush returns true if enough steps have passed to flush the window.
func (c *Collector) ShouldFlush(currentStep int32) bool {
	return currentStep-c.windowStartStep >= c.windowSteps
}

// Pending reports whether any events were recorded since the last flush.
func (c *Collector) Pending() bool {
	for _, n := range c.rules {
		if n > 0 {
			return true
		}
	}
	return c.births > 0
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentStep int32, census Census) WindowStats {
	mean, std, p10, p50, p90 := ComputeVitalityStats(census.Vitalities)

	stats := WindowStats{
		WindowStartStep: c.windowStartStep,
		WindowEndStep:   currentStep,

		Carnivores: census.Alive[traits.Carnivore],
		Omnivores:  census.Alive[traits.Omnivore],
		Herbivores: census.Alive[traits.Herbivore],
		Plants:     census.Alive[traits.Plant],
		Dead:       census.Dead,

		DeadParty:   c.rules[organism.RuleDeadParty],
		Matings:     c.rules[organism.RuleMating],
		Indifferent: c.rules[organism.RuleIndifferent],
		Fights:      c.rules[organism.RuleFight],
		Grazings:    c.rules[organism.RuleGrazing],
		Standoffs:   c.rules[organism.RuleStandoff],
		Hunts:       c.rules[organism.RuleHunt],

		Births: c.births,
		Deaths: c.deaths,

		VitalityMean: mean,
		VitalityStd:  std,
		VitalityP10:  p10,
		VitalityP50:  p50,
		VitalityP90:  p90,
	}
	for _, n := range c.rules {
		stats.Encounters += n
	}
	if len(census.Vitalities) > 0 {
		stats.VitalityTotal = floats.Sum(census.Vitalities)
	}

	// Reset for next window
	c.windowStartStep = currentStep
	c.rules = [organism.RuleCount]int{}
	c.births = 0
	c.deaths = 0

	return stats
}

// WindowSteps returns the number of steps per window.
func (c *Collector) WindowSteps() int32 {
	return c.windowSteps
}
