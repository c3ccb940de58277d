// File: sched/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker loops. Each worker goroutine (optionally locked to an OS
// thread and pinned) hosts one fiber at a time and returns to its own
// "worker fiber" stack whenever no fiber work is available.

package sched

import (
	"log"
	"runtime"
	"sync"

	"github.com/momentics/fibersched/affinity"
	"github.com/momentics/fibersched/fiber"
)

// fiberHandle is the scheduler's fiber instantiation: the hand-off
// token on every switch is the hosting worker.
type fiberHandle = *fiber.Fiber[*worker]

// worker carries the per-thread slots of the hand-off protocol. All
// fields below id are written only while this worker hosts the writing
// fiber, which makes them the thread-local state of the worker's
// (conceptual) OS thread.
type worker struct {
	id int

	// fiber is the stack this worker returns to when it has no fiber
	// work: the thread's native stack.
	fiber *fiber.Fiber[*worker]

	// finished is the most recently suspended fiber handle; the first
	// code running on this worker after a switch deposits it back into
	// the fiber pool.
	finished *fiber.Fiber[*worker]

	// pendingUnlock is the wait-handle lock an awaiter left for its
	// successor fiber to release. See Scheduler.Await.
	pendingUnlock *sync.Mutex
}

// workerMain is the body of every worker goroutine. Worker 0 is
// distinguished: it resumes the main fiber parked in Init, so the
// original caller continues executing inside the scheduler hosted on
// this worker. The distinction is not observable through the public
// surface.
func (s *Scheduler) workerMain(w *worker) {
	defer s.wg.Done()
	if s.cfg.PinWorkers {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		if err := affinity.Pin(w.id % runtime.NumCPU()); err != nil {
			log.Printf("fibersched: worker %d: affinity pin failed: %v", w.id, err)
		}
	}
	w.fiber = fiber.Adopt[*worker]()
	if s.trace != nil {
		s.trace.Record("worker-start", w.id)
	}
	if w.id == 0 {
		if _, alive := w.fiber.Switch(s.mainFiber, w); !alive {
			return
		}
		s.reclaim(w)
	}
	s.workerLoop(w)
}

// workerLoop hosts fibers until shutdown is signalled and no jobs
// remain pending.
func (s *Scheduler) workerLoop(w *worker) {
	for {
		s.mu.Lock()
		for !s.stopping && s.pending == 0 {
			s.cond.Wait()
		}
		if s.stopping && s.pending == 0 {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		f, ok := s.fiberPool.TryDequeue()
		if !ok {
			// Every fiber is parked on a wait handle while jobs are
			// still pending: the pool is sized too small for the
			// workload's await depth. Not recoverable at runtime.
			s.poolFatal.Store(true)
			log.Printf("fibersched: worker %d: fiber pool exhausted", w.id)
			return
		}
		if _, alive := w.fiber.Switch(f, w); !alive {
			return
		}
		s.reclaim(w)
	}
}

// reclaim deposits the finished-fiber slot back into the pool. Pool
// overflow means a fiber was enqueued twice; that breaks exclusive
// ownership, so it is fatal.
func (s *Scheduler) reclaim(w *worker) {
	if w.finished == nil {
		return
	}
	if !s.fiberPool.TryEnqueue(w.finished) {
		panic("fibersched: fiber pool overflow")
	}
	w.finished = nil
}
