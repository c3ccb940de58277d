// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for scheduler-level monitoring. Keeps the
// latest counter snapshot flushed by the scheduler at Free (or on
// demand through a debug probe).

package control

import (
	"sync"
	"time"

	"github.com/momentics/fibersched/api"
)

// Ensure compile-time interface compliance.
var _ api.MetricsSink = (*MetricsRegistry)(nil)

// MetricsRegistry holds the most recent scheduler counter snapshot.
type MetricsRegistry struct {
	mu      sync.RWMutex
	stats   api.SchedulerStats
	flushed bool
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{}
}

// Flush stores a counter snapshot.
func (mr *MetricsRegistry) Flush(stats api.SchedulerStats) {
	mr.mu.Lock()
	mr.stats = stats
	mr.flushed = true
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Snapshot returns the latest counters and whether any flush happened.
func (mr *MetricsRegistry) Snapshot() (api.SchedulerStats, bool) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.stats, mr.flushed
}

// UpdatedAt returns the time of the last flush.
func (mr *MetricsRegistry) UpdatedAt() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
