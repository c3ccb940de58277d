// File: facade/fibersched.go
// Unified facade layer for the fibersched library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Runtime struct, which aggregates the scheduler
// core with the control layer (config store, metrics registry, trace
// journal, debug probes) behind a single facade, and the one-call Run
// helper that inits a scheduler, invokes an entry function on the main
// fiber and frees the scheduler again.

package facade

import (
	"github.com/momentics/fibersched/api"
	"github.com/momentics/fibersched/control"
	"github.com/momentics/fibersched/sched"
)

// Ensure compile-time interface compliance.
var _ api.Control = (*Runtime)(nil)

// Config holds parameters immutable per run.
type Config struct {
	MaxThreads    int  // Worker cap; api.AllCores means one per logical CPU
	NumFibers     int  // Fiber pool size; bounds maximum await depth
	QueueCapacity int  // Bounded job queue size
	PinWorkers    bool // Lock worker goroutines to OS threads and pin CPUs
	EnableMetrics bool // Collect scheduler counters into a MetricsRegistry
	EnableTrace   bool // Journal lifecycle events
	TraceCapacity int  // Bounded trace journal size
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		MaxThreads:    api.AllCores,
		NumFibers:     api.NumFibers,
		QueueCapacity: api.JobQueueCapacity,
		PinWorkers:    false,
		EnableMetrics: true,
		EnableTrace:   false,
		TraceCapacity: 256,
	}
}

// Runtime aggregates a running scheduler with its control surfaces.
type Runtime struct {
	Scheduler *sched.Scheduler

	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	trace   *control.TraceJournal
	probes  *control.DebugProbes
}

// Init builds a scheduler from cfg and converts the calling goroutine
// into its main fiber; see sched.Init. A nil cfg selects DefaultConfig.
func Init(cfg *Config) (*Runtime, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &Runtime{
		config: control.NewConfigStore(api.Limits{
			MaxThreads:    cfg.MaxThreads,
			NumFibers:     cfg.NumFibers,
			QueueCapacity: cfg.QueueCapacity,
			PinWorkers:    cfg.PinWorkers,
		}),
		probes: control.NewDebugProbes(),
	}
	sc := &sched.Config{
		MaxThreads:    cfg.MaxThreads,
		NumFibers:     cfg.NumFibers,
		QueueCapacity: cfg.QueueCapacity,
		PinWorkers:    cfg.PinWorkers,
	}
	if cfg.EnableMetrics {
		r.metrics = control.NewMetricsRegistry()
		sc.Metrics = r.metrics
	}
	if cfg.EnableTrace {
		r.trace = control.NewTraceJournal(cfg.TraceCapacity)
		sc.Trace = r.trace
	}

	s, err := sched.Init(sc)
	if err != nil {
		return nil, err
	}
	r.Scheduler = s
	r.probes.RegisterProbe("scheduler", func() any { return s.Stats() })
	return r, nil
}

// Free shuts the scheduler down; must be called from the main fiber.
func (r *Runtime) Free() error {
	return r.Scheduler.Free()
}

// EntryFunc is the root of a Run invocation, executed on the main fiber.
type EntryFunc func(r *Runtime, user any)

// Run inits a scheduler, invokes entry on the main fiber and frees the
// scheduler. It is the one-call embedding form: everything entry does
// runs inside the scheduler, as if it were a job. A nil entry performs
// an init/free round trip.
func Run(entry EntryFunc, user any, cfg *Config) error {
	r, err := Init(cfg)
	if err != nil {
		return err
	}
	if entry != nil {
		entry(r, user)
	}
	return r.Free()
}

// Metrics returns the metrics registry, or nil when metrics are disabled.
func (r *Runtime) Metrics() *control.MetricsRegistry { return r.metrics }

// Trace returns the trace journal, or nil when tracing is disabled.
func (r *Runtime) Trace() *control.TraceJournal { return r.trace }

// Limits implements api.Control.
func (r *Runtime) Limits() api.Limits {
	return r.config.Snapshot()
}

// SetLimits implements api.Control. Scheduler sizing is immutable per
// run; the stored limits feed reload listeners and the next init cycle.
func (r *Runtime) SetLimits(limits api.Limits) error {
	r.config.Set(limits)
	return nil
}

// Stats implements api.Control.
func (r *Runtime) Stats() api.SchedulerStats {
	return r.Scheduler.Stats()
}

// OnReload implements api.Control.
func (r *Runtime) OnReload(fn func(api.Limits)) {
	r.config.OnReload(fn)
}

// RegisterDebugProbe implements api.Control.
func (r *Runtime) RegisterDebugProbe(name string, fn func() any) {
	r.probes.RegisterProbe(name, fn)
}

// DumpState returns the output of all registered debug probes.
func (r *Runtime) DumpState() map[string]any {
	return r.probes.DumpState()
}
