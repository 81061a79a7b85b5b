// Package telemetry provides encounter logging, window statistics and CSV output.
package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/foodweb/organism"
	"github.com/pthm-cable/foodweb/traits"
)

// Party is one side of an encounter as seen by telemetry.
type Party struct {
	ID     uint32
	Name   string
	Diet   traits.Diet
	Before uint64
	After  uint64
}

// Died reports whether the party was killed by the encounter.
func (p Party) Died() bool {
	return p.Before > 0 && p.After == 0
}

// EncounterEvent is one resolved encounter, written as a row of encounters.csv.
type EncounterEvent struct {
	Step     int32         `csv:"step"`
	Rule     organism.Rule `csv:"-"`
	RuleName string        `csv:"rule"`
	Series   bool          `csv:"series"`

	FirstID      uint32 `csv:"-"`
	First        string `csv:"first"`
	FirstDiet    string `csv:"first_diet"`
	FirstBefore  uint64 `csv:"first_before"`
	FirstAfter   uint64 `csv:"first_after"`
	SecondID     uint32 `csv:"-"`
	Second       string `csv:"second"`
	SecondDiet   string `csv:"second_diet"`
	SecondBefore uint64 `csv:"second_before"`
	SecondAfter  uint64 `csv:"second_after"`

	Offspring         string `csv:"offspring"` // empty when no offspring survives the step
	OffspringVitality uint64 `csv:"offspring_vitality"`
}

// NewEncounterEvent creates an encounter event.
func NewEncounterEvent(step int32, rule organism.Rule, series bool, first, second Party) EncounterEvent {
	return EncounterEvent{
		Step:         step,
		Rule:         rule,
		RuleName:     rule.String(),
		Series:       series,
		FirstID:      first.ID,
		First:        first.Name,
		FirstDiet:    first.Diet.String(),
		FirstBefore:  first.Before,
		FirstAfter:   first.After,
		SecondID:     second.ID,
		Second:       second.Name,
		SecondDiet:   second.Diet.String(),
		SecondBefore: second.Before,
		SecondAfter:  second.After,
	}
}

// WithOffspring records the spawned offspring on the event.
func (e EncounterEvent) WithOffspring(name string, vitality uint64) EncounterEvent {
	e.Offspring = name
	e.OffspringVitality = vitality
	return e
}

// LogValue implements slog.LogValuer for structured logging.
func (e EncounterEvent) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("step", int(e.Step)),
		slog.String("rule", e.RuleName),
		slog.Bool("series", e.Series),
		slog.String("first", e.First),
		slog.Uint64("first_before", e.FirstBefore),
		slog.Uint64("first_after", e.FirstAfter),
		slog.String("second", e.Second),
		slog.Uint64("second_before", e.SecondBefore),
		slog.Uint64("second_after", e.SecondAfter),
	}
	if e.Offspring != "" {
		attrs = append(attrs,
			slog.String("offspring", e.Offspring),
			slog.Uint64("offspring_vitality", e.OffspringVitality),
		)
	}
	return slog.GroupValue(attrs...)
}
