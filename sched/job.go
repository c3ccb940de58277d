// File: sched/job.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Job descriptor: the unit of work dispatched to fibers.

package sched

import "github.com/momentics/fibersched/api"

// JobDeclaration describes one job. It is an immutable value once
// enqueued. UserData storage is caller-owned and must outlive the job.
type JobDeclaration struct {
	// Fn is the job body. A nil Fn makes Submit a no-op.
	Fn api.JobFunc
	// UserData is passed to Fn verbatim.
	UserData any
	// WaitHandle, when non-nil, is incremented at submit time and
	// decremented when Fn returns. The handle must live until every job
	// referencing it has completed and any awaiter has returned.
	WaitHandle *WaitHandle
}
