// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and DTOs.

package api

// Limits are the per-run scheduler sizing knobs. Sizing is immutable
// once a scheduler is initialised; a stored update stages values for
// the embedder's next init cycle.
type Limits struct {
	MaxThreads    int  // worker cap; AllCores means one per logical CPU
	NumFibers     int  // fiber pool size; bounds maximum await depth
	QueueCapacity int  // bounded job queue size
	PinWorkers    bool // lock worker goroutines to OS threads and pin CPUs
}

// SchedulerStats is a point-in-time snapshot of scheduler counters for
// health and diagnostics reporting.
type SchedulerStats struct {
	Workers       int   // worker loops hosting fibers
	Fibers        int   // pool fibers created at init
	FibersIdle    int   // fibers currently resident in the pool
	QueueDepth    int   // job descriptors waiting in the queue
	JobsPending   int64 // submitted-but-not-yet-dispatched jobs
	JobsSubmitted int64 // jobs accepted by Submit/SubmitBatch
	JobsExecuted  int64 // job bodies that returned normally
	Parks         int64 // fibers parked in Await
	Wakes         int64 // direct hand-offs to parked awaiters
	PoolFatal     bool  // fiber pool exhaustion was hit
}
