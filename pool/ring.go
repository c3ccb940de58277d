// File: pool/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity FIFO with all-or-nothing batch enqueue and partial
// batch dequeue. Capacity is rounded up to a power of two so index
// wrapping is a mask.

package pool

import (
	"sync"

	"github.com/momentics/fibersched/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Ring[any])(nil)

// Ring is a bounded MPMC FIFO guarded by a mutex. The critical sections
// are O(1) for single operations and O(n) for a batch of n.
type Ring[T any] struct {
	mu   sync.Mutex
	data []T
	mask uint64
	head uint64 // next dequeue position
	tail uint64 // next enqueue position
}

// NewRing allocates a ring with at least the requested capacity,
// rounded up to a power of two.
func NewRing[T any](capacity int) *Ring[T] {
	size := uint64(2)
	for size < uint64(capacity) {
		size <<= 1
	}
	return &Ring[T]{
		data: make([]T, size),
		mask: size - 1,
	}
}

// TryEnqueue adds an item; returns false if full.
func (r *Ring[T]) TryEnqueue(item T) bool {
	r.mu.Lock()
	if r.tail-r.head == uint64(len(r.data)) {
		r.mu.Unlock()
		return false
	}
	r.data[r.tail&r.mask] = item
	r.tail++
	r.mu.Unlock()
	return true
}

// TryEnqueueBatch adds all items or none; returns false if the batch
// does not fit.
func (r *Ring[T]) TryEnqueueBatch(items []T) bool {
	r.mu.Lock()
	if r.tail-r.head+uint64(len(items)) > uint64(len(r.data)) {
		r.mu.Unlock()
		return false
	}
	for _, item := range items {
		r.data[r.tail&r.mask] = item
		r.tail++
	}
	r.mu.Unlock()
	return true
}

// TryDequeue removes and returns the oldest item; ok is false if empty.
func (r *Ring[T]) TryDequeue() (item T, ok bool) {
	var zero T
	r.mu.Lock()
	if r.head == r.tail {
		r.mu.Unlock()
		return zero, false
	}
	idx := r.head & r.mask
	item = r.data[idx]
	r.data[idx] = zero // drop the reference so pooled handles don't pin memory
	r.head++
	r.mu.Unlock()
	return item, true
}

// TryDequeueBatch fills dst with up to len(dst) items and returns the
// number actually dequeued; partial results are allowed.
func (r *Ring[T]) TryDequeueBatch(dst []T) int {
	var zero T
	r.mu.Lock()
	n := int(r.tail - r.head)
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		idx := r.head & r.mask
		dst[i] = r.data[idx]
		r.data[idx] = zero
		r.head++
	}
	r.mu.Unlock()
	return n
}

// Len returns the number of items currently in the ring.
func (r *Ring[T]) Len() int {
	r.mu.Lock()
	n := int(r.tail - r.head)
	r.mu.Unlock()
	return n
}

// Cap returns the fixed ring capacity.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

// Empty reports whether the ring holds no items.
func (r *Ring[T]) Empty() bool {
	return r.Len() == 0
}
