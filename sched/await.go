// File: sched/await.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Await: park the calling fiber on a wait handle until every job
// referencing the handle has completed.

package sched

import "github.com/momentics/fibersched/api"

// Await blocks the calling fiber, not its worker, until the handle's
// counter reaches zero. With a zero counter it returns immediately and
// no fiber switch occurs. Otherwise the current fiber parks on the
// handle and the worker continues on a fresh fiber from the pool;
// the last-completing job hands control straight back.
//
// Await must be called from a fiber managed by this scheduler (the main
// fiber included). At most one fiber may await a given handle at a
// time. Every write performed by a referenced job before it returned is
// visible to the caller after Await returns.
func (s *Scheduler) Await(h *WaitHandle) error {
	if s == nil || h == nil {
		return api.ErrInvalidArgument
	}
	self := s.reg.current()
	if self == nil {
		return api.ErrNotOnFiber
	}
	if h.counter.Load() >= maxWaitCount {
		return api.ErrCounterOverflow
	}

	// The lock closes the race between parking here and a worker
	// completing the last job: the decrementer's lock acquisition
	// linearises after the parked slot becomes visible.
	h.mu.Lock()
	if h.counter.Load() == 0 {
		h.mu.Unlock()
		return nil
	}
	if h.parked != nil {
		h.mu.Unlock()
		return api.ErrInvalidArgument
	}

	w := self.Host()
	next, ok := s.fiberPool.TryDequeue()
	if !ok {
		// Scheduler exhausted: a configuration-sizing bug, not a
		// recoverable runtime condition. Do not park, do not switch.
		h.mu.Unlock()
		return api.ErrPoolExhausted
	}

	// Park with the handle lock held. The successor fiber releases it
	// as the first action of its main loop via the worker's
	// pendingUnlock slot; releasing it here would open a window where a
	// decrementer sees counter == 0 with no parked fiber.
	h.parked = self
	w.pendingUnlock = &h.mu
	s.parks.Add(1)

	nw, alive := self.Switch(next, w)
	if !alive {
		return api.ErrSchedulerShutdown
	}

	// Resumed by the last-decrementing fiber; its handle is in the
	// hosting worker's finished slot. Return it to circulation.
	s.reclaim(nw)
	return nil
}
