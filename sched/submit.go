// File: sched/submit.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Job submission: single and all-or-nothing batch.

package sched

import "github.com/momentics/fibersched/api"

// Submit enqueues one job. The job's wait handle, if any, is
// incremented before the enqueue; a full queue restores the counter and
// returns api.ErrQueueFull, leaving the handle unchanged. A nil Fn is a
// no-op returning nil. Submission order is preserved per producer only.
func (s *Scheduler) Submit(jb *JobDeclaration) error {
	if s == nil || jb == nil {
		return api.ErrInvalidArgument
	}
	if jb.Fn == nil {
		return nil
	}
	if s.stopFlag.Load() {
		return api.ErrSchedulerShutdown
	}
	if jb.WaitHandle != nil {
		jb.WaitHandle.counter.Add(1)
	}
	if !s.jobQueue.TryEnqueue(*jb) {
		if jb.WaitHandle != nil {
			jb.WaitHandle.counter.Add(-1)
		}
		return api.ErrQueueFull
	}
	s.mu.Lock()
	if s.stopping {
		// Lost the race against Free: the descriptor stays in the dying
		// queue and will never run. Restore the handle so no awaiter
		// waits for it.
		s.mu.Unlock()
		if jb.WaitHandle != nil {
			jb.WaitHandle.counter.Add(-1)
		}
		return api.ErrSchedulerShutdown
	}
	s.pending++
	s.mu.Unlock()
	s.jobsSubmitted.Add(1)
	// Liveness hint: one idle worker is enough for one job.
	s.cond.Signal()
	return nil
}

// SubmitBatch enqueues all jobs or none. Every job in the batch must
// share the same WaitHandle field; the counter is raised by the batch
// size up front and restored if the batch does not fit. All idle
// workers are notified on success.
func (s *Scheduler) SubmitBatch(jobs []JobDeclaration) error {
	if s == nil {
		return api.ErrInvalidArgument
	}
	if len(jobs) == 0 {
		return nil
	}
	if s.stopFlag.Load() {
		return api.ErrSchedulerShutdown
	}
	h := jobs[0].WaitHandle
	for i := range jobs {
		if jobs[i].Fn == nil {
			return api.ErrInvalidArgument
		}
		if jobs[i].WaitHandle != h {
			return api.ErrMixedWaitHandles
		}
	}
	if h != nil {
		h.counter.Add(int64(len(jobs)))
	}
	if !s.jobQueue.TryEnqueueBatch(jobs) {
		if h != nil {
			h.counter.Add(-int64(len(jobs)))
		}
		return api.ErrQueueFull
	}
	s.mu.Lock()
	if s.stopping {
		s.mu.Unlock()
		if h != nil {
			h.counter.Add(-int64(len(jobs)))
		}
		return api.ErrSchedulerShutdown
	}
	s.pending += int64(len(jobs))
	s.mu.Unlock()
	s.jobsSubmitted.Add(int64(len(jobs)))
	s.cond.Broadcast()
	return nil
}
