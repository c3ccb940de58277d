// File: sched/mainloop.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The fiber main loop: the body every pool fiber runs, and the
// decrement-and-maybe-wake hand-off applied after each job.

package sched

import (
	"log"

	"github.com/petermattis/goid"

	"github.com/momentics/fibersched/fiber"
)

// fiberEntry registers the fiber's backing goroutine and runs the main
// loop until the fiber is deleted at Free.
func (s *Scheduler) fiberEntry(self *fiber.Fiber[*worker]) {
	gid := goid.Get()
	s.reg.add(gid, self)
	defer s.reg.remove(gid)
	s.fiberMain(self)
}

// fiberMain dequeues jobs, runs them and applies wait-handle
// bookkeeping. The loop's contract with Await: its first action after
// every resume is to discharge a lock a parking awaiter left in the
// hosting worker's pendingUnlock slot. The awaiter cannot release that
// lock itself before switching away, because a concurrent decrementer
// could then observe counter == 0 with the parked slot still empty.
func (s *Scheduler) fiberMain(self fiberHandle) {
	w := self.Host()
	for {
		if w.pendingUnlock != nil {
			w.pendingUnlock.Unlock()
			w.pendingUnlock = nil
		}

		var jb JobDeclaration
		var ok bool
		if !s.stopFlag.Load() {
			jb, ok = s.jobQueue.TryDequeue()
		}
		if !ok {
			// Shutdown or no work: hand this fiber to the worker loop,
			// which returns it to the pool.
			w.finished = self
			h, alive := self.Switch(w.fiber, w)
			if !alive {
				return
			}
			w = h
			continue
		}

		s.mu.Lock()
		s.pending--
		s.mu.Unlock()

		s.runJob(&jb)

		// Publish self before any hand-off so whoever runs next on this
		// worker can return this fiber to circulation.
		w.finished = self
		if jb.WaitHandle != nil {
			h, alive := s.decrementAndMaybeWake(jb.WaitHandle, self, w)
			if !alive {
				return
			}
			w = h
		}
	}
}

// runJob invokes the job body. A panicking job is contained and logged;
// the wait-handle decrement still happens in the caller.
func (s *Scheduler) runJob(jb *JobDeclaration) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("fibersched: job panicked: %v", r)
		}
	}()
	jb.Fn(jb.UserData)
	s.jobsExecuted.Add(1)
}

// decrementAndMaybeWake decrements the handle's counter under its lock.
// When the counter reaches zero and an awaiter is parked, the slot is
// cleared, the lock released, and execution handed directly to the
// parked fiber; self resumes later on whatever worker dequeues it from
// the pool. The lock is released strictly before the control transfer
// because the successor cannot be depended on to return here.
func (s *Scheduler) decrementAndMaybeWake(h *WaitHandle, self fiberHandle, w *worker) (*worker, bool) {
	h.mu.Lock()
	if h.counter.Add(-1) == 0 {
		if parked := h.parked; parked != nil {
			h.parked = nil
			h.mu.Unlock()
			s.wakes.Add(1)
			return self.Switch(parked, w)
		}
	}
	h.mu.Unlock()
	return w, true
}
