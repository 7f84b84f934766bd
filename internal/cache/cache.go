// Package cache memoizes computed reports for callers. The engine itself
// never caches; recomputation triggers and cache ownership stay with the
// caller, keyed by the range selector and the snapshot revision it was
// computed from.
package cache

import (
	"sync"

	"github.com/aurumline/insights/internal/entity"
	"github.com/aurumline/insights/internal/timerange"
)

type key struct {
	rng      timerange.Range
	revision string
}

// ReportCache is a concurrency-safe memo of business reports.
type ReportCache struct {
	mu      sync.RWMutex
	reports map[key]*entity.BusinessMetrics
}

func NewReportCache() *ReportCache {
	return &ReportCache{reports: make(map[key]*entity.BusinessMetrics)}
}

// Get returns the memoized report for (range, revision) if present.
func (c *ReportCache) Get(rng timerange.Range, revision string) (*entity.BusinessMetrics, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.reports[key{rng: rng, revision: revision}]
	return m, ok
}

// Put stores a computed report. A new snapshot revision naturally misses all
// prior keys, which is the caller's recomputation trigger.
func (c *ReportCache) Put(rng timerange.Range, revision string, m *entity.BusinessMetrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports[key{rng: rng, revision: revision}] = m
}

// Invalidate drops every memoized report.
func (c *ReportCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = make(map[key]*entity.BusinessMetrics)
}
