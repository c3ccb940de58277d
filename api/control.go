// File: api/control.go
// Package api defines the Control contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Control manages a running scheduler's sizing limits, metrics and
// debug introspection. SetLimits never resizes a live scheduler: it
// stores values for the embedder's next init cycle and notifies reload
// listeners.
type Control interface {
	// Limits returns the currently stored sizing limits.
	Limits() Limits

	// SetLimits stores new limits and fires reload listeners.
	SetLimits(limits Limits) error

	// Stats snapshots the scheduler counters.
	Stats() SchedulerStats

	// OnReload registers a hook called with the limits on every change.
	OnReload(fn func(limits Limits))

	// RegisterDebugProbe registers a named introspection hook.
	RegisterDebugProbe(name string, fn func() any)

	// DumpState snapshots every registered probe, the scheduler stats
	// probe included.
	DumpState() map[string]any
}

// MetricsSink receives scheduler counter snapshots. Implemented by
// control.MetricsRegistry; a nil sink disables metrics.
type MetricsSink interface {
	Flush(stats SchedulerStats)
}

// TraceSink receives low-frequency scheduler lifecycle events.
// Implemented by control.TraceJournal; a nil sink disables tracing.
type TraceSink interface {
	Record(event string, detail any)
}
