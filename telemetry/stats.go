package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/foodweb/traits"
)

// Census is a population snapshot taken when a window is flushed.
type Census struct {
	Alive      map[traits.Diet]int
	Dead       int
	Vitalities []float64 // vitality of every living organism
}

// NewCensus creates an empty census.
func NewCensus() Census {
	return Census{Alive: make(map[traits.Diet]int, len(traits.Kinds))}
}

// Add counts one organism.
func (c *Census) Add(diet traits.Diet, vitality uint64) {
	if vitality == 0 {
		c.Dead++
		return
	}
	c.Alive[diet]++
	c.Vitalities = append(c.Vitalities, float64(vitality))
}

// AliveTotal returns the number of living organisms.
func (c Census) AliveTotal() int {
	total := 0
	for _, n := range c.Alive {
		total += n
	}
	return total
}

// WindowStats holds aggregated statistics for a window of scenario steps.
type WindowStats struct {
	WindowStartStep int32 `csv:"-"`
	WindowEndStep   int32 `csv:"window_end"`

	// Population at window end
	Carnivores int `csv:"carnivores"`
	Omnivores  int `csv:"omnivores"`
	Herbivores int `csv:"herbivores"`
	Plants     int `csv:"plants"`
	Dead       int `csv:"dead"`

	// Encounters during window, by deciding rule
	Encounters  int `csv:"encounters"`
	DeadParty   int `csv:"dead_party"`
	Matings     int `csv:"matings"`
	Indifferent int `csv:"indifferent"`
	Fights      int `csv:"fights"`
	Grazings    int `csv:"grazings"`
	Standoffs   int `csv:"standoffs"`
	Hunts       int `csv:"hunts"`

	Births int `csv:"births"`
	Deaths int `csv:"deaths"`

	// Vitality distribution of living organisms at window end
	VitalityTotal float64 `csv:"vitality_total"`
	VitalityMean  float64 `csv:"vitality_mean"`
	VitalityStd   float64 `csv:"vitality_std"`
	VitalityP10   float64 `csv:"vitality_p10"`
	VitalityP50   float64 `csv:"vitality_p50"`
	VitalityP90   float64 `csv:"vitality_p90"`
}

// ComputeVitalityStats calculates mean, standard deviation and percentiles.
// Returns zeros for an empty slice; std is zero for a single value.
func ComputeVitalityStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	mean = stat.Mean(values, nil)
	if n > 1 {
		std = stat.PopStdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartStep)),
		slog.Int("window_end", int(s.WindowEndStep)),
		slog.Int("carnivores", s.Carnivores),
		slog.Int("omnivores", s.Omnivores),
		slog.Int("herbivores", s.Herbivores),
		slog.Int("plants", s.Plants),
		slog.Int("dead", s.Dead),
		slog.Int("encounters", s.Encounters),
		slog.Int("dead_party", s.DeadParty),
		slog.Int("matings", s.Matings),
		slog.Int("indifferent", s.Indifferent),
		slog.Int("fights", s.Fights),
		slog.Int("grazings", s.Grazings),
		slog.Int("standoffs", s.Standoffs),
		slog.Int("hunts", s.Hunts),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Float64("vitality_total", s.VitalityTotal),
		slog.Float64("vitality_mean", s.VitalityMean),
		slog.Float64("vitality_std", s.VitalityStd),
		slog.Float64("vitality_p10", s.VitalityP10),
		slog.Float64("vitality_p50", s.VitalityP50),
		slog.Float64("vitality_p90", s.VitalityP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
