// Package metrics holds the read-only counters exposed by the metrics
// surface of spec §6, plus an optional Prometheus republishing layer.
package metrics

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Metrics is incremented only from the search goroutine (spec §5); it
// carries every counter enumerated in spec §6 "Metrics surface".
type Metrics struct {
	StartTime time.Time

	Branches            int
	MaxDepth             int
	GlobalMaxDepth       int
	CurrentDepth         int
	RestartCount         int
	RandomChoices        int
	GlobalRandomChoices  int
	CacheHits            int
	SkippedPropagations  int
	SolutionsFound       int
	EarlyFailureCount    int
	ConstraintChecks     int
	FilteringRounds      int
	MaxDepthHits         int
	PeakMemoryBytes      uint64

	// VarValueFrequency tracks, per variable and value, how many times
	// that value was chosen during search; consumed by the
	// LOWEST_FREQUENCY value heuristic (restored from the original
	// Python's src/solver.py var_value_frequency bookkeeping).
	VarValueFrequency map[string]map[int]int
}

// New returns a freshly started Metrics snapshot.
func New() *Metrics {
	return &Metrics{StartTime: time.Now(), VarValueFrequency: make(map[string]map[int]int)}
}

// ResetForRestart clears the per-attempt counters a restart discards
// (spec §4.5): current depth, max depth, max-depth-hit counter, and the
// per-restart random budget, while leaving GlobalMaxDepth and
// GlobalRandomChoices (and RestartCount, which it increments)
// monotonically increasing, per spec property P6.
func (m *Metrics) ResetForRestart() {
	m.CurrentDepth = 0
	m.MaxDepth = 0
	m.MaxDepthHits = 0
	m.RandomChoices = 0
	m.RestartCount++
}

// SampleMemory reads the current heap allocation and raises
// PeakMemoryBytes if it exceeds the previous high-water mark. Restored
// from the original's SharedMetrics.update_memory_usage (src/metrics.py),
// which sampled via psutil's RSS; Go has no in-pack equivalent, so this
// uses runtime.ReadMemStats directly rather than leaving the surface
// permanently at zero.
func (m *Metrics) SampleMemory() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.Alloc > m.PeakMemoryBytes {
		m.PeakMemoryBytes = ms.Alloc
	}
}

// RecordValueChoice bumps the per-variable, per-value selection count.
func (m *Metrics) RecordValueChoice(variable string, value int) {
	if m.VarValueFrequency[variable] == nil {
		m.VarValueFrequency[variable] = make(map[int]int)
	}
	m.VarValueFrequency[variable][value]++
}

// ValueFrequency returns how many times variable=value has been chosen,
// 0 if never.
func (m *Metrics) ValueFrequency(variable string, value int) int {
	return m.VarValueFrequency[variable][value]
}

// String renders a human-readable summary, restored from the original
// Python's SolverMetrics.pretty_print (src/misc.py).
func (m *Metrics) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Solver Statistics ===\n")
	fmt.Fprintf(&sb, "Time elapsed: %.2f seconds\n", time.Since(m.StartTime).Seconds())
	fmt.Fprintf(&sb, "Number of branches: %d\n", m.Branches)
	fmt.Fprintf(&sb, "Maximum search depth: %d\n", m.GlobalMaxDepth)
	fmt.Fprintf(&sb, "# of restarts: %d\n", m.RestartCount)
	fmt.Fprintf(&sb, "Random choices made: %d\n", m.GlobalRandomChoices)
	fmt.Fprintf(&sb, "Cache hits: %d\n", m.CacheHits)
	fmt.Fprintf(&sb, "Skipped propagations: %d\n", m.SkippedPropagations)
	fmt.Fprintf(&sb, "Early failures: %d\n", m.EarlyFailureCount)
	fmt.Fprintf(&sb, "Solutions found: %d\n", m.SolutionsFound)
	fmt.Fprintf(&sb, "Peak memory: %.1f MB\n", float64(m.PeakMemoryBytes)/1e6)
	return sb.String()
}
