package game

import (
	"log/slog"
	"sort"
	"time"
)

// PerfStats accumulates wall time per scenario phase.
type PerfStats struct {
	total map[string]time.Duration
	count map[string]int
}

// NewPerfStats creates an empty tracker.
func NewPerfStats() *PerfStats {
	return &PerfStats{
		total: make(map[string]time.Duration),
		count: make(map[string]int),
	}
}

// Record adds a duration sample for the named phase.
func (p *PerfStats) Record(name string, d time.Duration) {
	p.total[name] += d
	p.count[name]++
}

// Time runs fn and records its duration under name.
func (p *PerfStats) Time(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	p.Record(name, time.Since(start))
	return err
}

// Count returns how many samples were recorded for name.
func (p *PerfStats) Count(name string) int {
	return p.count[name]
}

// Avg returns the average duration for the named phase.
func (p *PerfStats) Avg(name string) time.Duration {
	n := p.count[name]
	if n == 0 {
		return 0
	}
	return p.total[name] / time.Duration(n)
}

// SortedNames returns phase names by total time, longest first.
func (p *PerfStats) SortedNames() []string {
	names := make([]string, 0, len(p.total))
	for name := range p.total {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if p.total[names[i]] == p.total[names[j]] {
			return names[i] < names[j]
		}
		return p.total[names[i]] > p.total[names[j]]
	})
	return names
}

// logPerfStats logs per-phase timing at debug level.
func (p *PerfStats) logPerfStats() {
	for _, name := range p.SortedNames() {
		slog.Debug("perf",
			"phase", name,
			"count", p.count[name],
			"total", p.total[name],
			"avg", p.Avg(name),
		)
	}
}
