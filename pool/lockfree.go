// File: pool/lockfree.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded MPMC queue using per-cell sequence numbers, based on the
// pattern by Dmitry Vyukov. Backs the fiber pool, where single-item
// transfers dominate and the hand-off path should not share a lock with
// the job queue.

package pool

import "sync/atomic"

const cacheLinePad = 64

type cell[T any] struct {
	sequence atomic.Uint64
	data     T
}

// LockFreeQueue is a bounded MPMC FIFO with capacity rounded to a power
// of two. Len is exact only when the queue is externally quiesced.
type LockFreeQueue[T any] struct {
	head  uint64
	_     [cacheLinePad]byte
	tail  uint64
	_     [cacheLinePad]byte
	mask  uint64
	cells []cell[T]
}

// NewLockFreeQueue creates a new queue with capacity rounded to power of two.
func NewLockFreeQueue[T any](capacity int) *LockFreeQueue[T] {
	size := 2
	for size < capacity {
		size <<= 1
	}
	q := &LockFreeQueue[T]{
		mask:  uint64(size - 1),
		cells: make([]cell[T], size),
	}
	for i := range q.cells {
		q.cells[i].sequence.Store(uint64(i))
	}
	return q
}

// TryEnqueue adds val; returns false if full.
func (q *LockFreeQueue[T]) TryEnqueue(val T) bool {
	for {
		tail := atomic.LoadUint64(&q.tail)
		c := &q.cells[tail&q.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)

		switch {
		case dif == 0:
			if atomic.CompareAndSwapUint64(&q.tail, tail, tail+1) {
				c.data = val
				c.sequence.Store(tail + 1)
				return true
			}
		case dif < 0:
			return false // full
		default:
			// tail moved, retry
		}
	}
}

// TryDequeue removes and returns an item; ok false if empty.
func (q *LockFreeQueue[T]) TryDequeue() (item T, ok bool) {
	for {
		head := atomic.LoadUint64(&q.head)
		c := &q.cells[head&q.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)

		switch {
		case dif == 0:
			if atomic.CompareAndSwapUint64(&q.head, head, head+1) {
				item = c.data
				var zero T
				c.data = zero
				c.sequence.Store(head + q.mask + 1)
				return item, true
			}
		case dif < 0:
			var zero T
			return zero, false // empty
		default:
			// head moved, retry
		}
	}
}

// Len returns the number of items currently in the queue.
func (q *LockFreeQueue[T]) Len() int {
	head := atomic.LoadUint64(&q.head)
	tail := atomic.LoadUint64(&q.tail)
	return int(tail - head)
}

// Cap returns the fixed queue capacity.
func (q *LockFreeQueue[T]) Cap() int {
	return len(q.cells)
}
