// File: sched/waithandle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Wait handle: the structured join primitive. A counter of outstanding
// jobs plus a slot for one parked awaiter fiber.

package sched

import (
	"sync"
	"sync/atomic"
)

// maxWaitCount bounds the outstanding-job counter; beyond it the caller
// has overflowed the handle and Await refuses to park.
const maxWaitCount = int64(1) << 62

// WaitHandle tracks a batch of outstanding jobs. The zero value is
// valid and idle; it is safe to stack-allocate inside a job. A handle
// may be reused for a new batch once the previous Await returned.
//
// The mutex scope covers counter inspection, the parked-fiber slot and
// the hand-off decision. It is deliberately held across the awaiter's
// fiber switch and released by the successor fiber; see Scheduler.Await.
type WaitHandle struct {
	mu      sync.Mutex
	counter atomic.Int64
	// parked is a non-owning reference: the fiber is owned by the
	// scheduler's pool, and the slot is valid only while the awaiter is
	// actually suspended on this handle.
	parked fiberHandle
}
