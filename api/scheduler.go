// File: api/scheduler.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scheduler contract: bounded job dispatch across a fixed fiber pool
// with structured join via wait handles.

package api

// JobFunc is the unit of work dispatched to fibers. A job is a plain
// function; it must not escape its body. Jobs are never preempted: a
// CPU-bound job monopolises its worker until it returns or awaits.
type JobFunc func(user any)

// Scheduler abstracts job submission and structured join. The concrete
// wait handle and job descriptor types live in the sched package; this
// contract exists so control and facade layers can hold a scheduler
// without importing its internals.
type Scheduler interface {
	// NumWorkers returns the number of worker loops hosting fibers.
	NumWorkers() int

	// Stats returns a snapshot of scheduler counters for diagnostics.
	Stats() SchedulerStats
}

// Shared configuration constants. Implementations may expose their own
// effective values via Stats.
const (
	// AllCores requests one worker per logical CPU.
	AllCores = 0
	// MaxThreads is the upper bound on worker count.
	MaxThreads = 256
	// NumFibers is the default fiber pool size. The main fiber adopted
	// at init is not counted in it.
	NumFibers = 1024
	// JobQueueCapacity is the default bounded job queue size.
	JobQueueCapacity = 64 * 1024
)
