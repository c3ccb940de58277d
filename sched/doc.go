// Package sched
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cooperative fiber job scheduler core.
//
// A Scheduler couples four pieces: a fixed pool of fibers that carry
// job execution, a fixed set of worker loops that host those fibers, a
// shared bounded ring of job descriptors, and wait handles implementing
// structured join with direct fiber-to-fiber hand-off on completion.
//
// Init adopts the calling goroutine as the "main fiber": control
// returns from Init with the caller hosted on worker 0, and everything
// the caller does until Free runs as if it were a job. Jobs may submit
// and await recursively; an awaiting fiber parks on its wait handle and
// the hosting worker picks up a fresh fiber, so the underlying worker
// never blocks on a join.
//
// Jobs are never preempted. A job that never returns wedges its fiber
// until process teardown; a CPU-bound job monopolises its worker until
// it returns or awaits.
package sched
