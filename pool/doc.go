// Package pool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded MPMC ring buffers backing the scheduler's job queue and fiber
// pool. Ring (the job queue) runs every operation under a short mutex
// critical section; LockFreeQueue (the fiber pool) takes no lock and
// uses per-cell sequence numbers. No ordering is promised between
// concurrent producers.
package pool
