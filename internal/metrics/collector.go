package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector republishes six counters of a Metrics snapshot (branches,
// global max depth, restarts, cache hits, solutions, early failures) as
// Prometheus counters, with max depth as a gauge, for
// embedders that already run a /metrics endpoint (spec §1's "CLI,
// logging, performance metrics presentation: thin wrappers over
// counters the core exposes"). It reads the same Metrics struct it was
// built with; it never mutates solver state.
type Collector struct {
	m *Metrics

	branches   *prometheus.Desc
	maxDepth   *prometheus.Desc
	restarts   *prometheus.Desc
	cacheHits  *prometheus.Desc
	solutions  *prometheus.Desc
	earlyFails *prometheus.Desc
}

// NewCollector wraps m for Prometheus scraping.
func NewCollector(m *Metrics, namespace string) *Collector {
	return &Collector{
		m:          m,
		branches:   prometheus.NewDesc(namespace+"_branches_total", "Branches explored during search.", nil, nil),
		maxDepth:   prometheus.NewDesc(namespace+"_max_depth", "Deepest search depth reached (global, across restarts).", nil, nil),
		restarts:   prometheus.NewDesc(namespace+"_restarts_total", "Number of search restarts.", nil, nil),
		cacheHits:  prometheus.NewDesc(namespace+"_state_cache_hits_total", "State-cache hits.", nil, nil),
		solutions:  prometheus.NewDesc(namespace+"_solutions_found_total", "Solutions found.", nil, nil),
		earlyFails: prometheus.NewDesc(namespace+"_early_failures_total", "Branches pruned by the early-failure heuristic.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.branches
	ch <- c.maxDepth
	ch <- c.restarts
	ch <- c.cacheHits
	ch <- c.solutions
	ch <- c.earlyFails
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.branches, prometheus.CounterValue, float64(c.m.Branches))
	ch <- prometheus.MustNewConstMetric(c.maxDepth, prometheus.GaugeValue, float64(c.m.GlobalMaxDepth))
	ch <- prometheus.MustNewConstMetric(c.restarts, prometheus.CounterValue, float64(c.m.RestartCount))
	ch <- prometheus.MustNewConstMetric(c.cacheHits, prometheus.CounterValue, float64(c.m.CacheHits))
	ch <- prometheus.MustNewConstMetric(c.solutions, prometheus.CounterValue, float64(c.m.SolutionsFound))
	ch <- prometheus.MustNewConstMetric(c.earlyFails, prometheus.CounterValue, float64(c.m.EarlyFailureCount))
}
