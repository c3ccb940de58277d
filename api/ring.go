// File: api/ring.go
// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded MPMC ring buffer contract of the job queue (pool.Ring). The
// fiber pool uses pool.LockFreeQueue, which does not implement it.

package api

// Ring is a fixed-capacity FIFO. All operations are thread-safe and
// linearisable with respect to one another; FIFO order is only observed
// per producer when producers are serialised externally.
type Ring[T any] interface {
	// TryEnqueue adds an item, returns false if full.
	TryEnqueue(item T) bool
	// TryEnqueueBatch adds all items or none, returns false if the
	// batch does not fit.
	TryEnqueueBatch(items []T) bool
	// TryDequeue removes the oldest item, returns false if empty.
	TryDequeue() (T, bool)
	// TryDequeueBatch fills dst with up to len(dst) items and returns
	// the number actually dequeued.
	TryDequeueBatch(dst []T) int
	// Len returns the current number of items.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
	// Empty reports whether the ring holds no items.
	Empty() bool
}
