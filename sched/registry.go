// File: sched/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Goroutine-id to fiber routing. Await and Free resolve "the fiber I am
// running on" through this table instead of threading a handle through
// every job signature. Each fiber registers the id of its backing
// goroutine, which never changes for the fiber's lifetime.

package sched

import (
	"sync"

	"github.com/petermattis/goid"
)

type registry struct {
	mu sync.RWMutex
	m  map[int64]fiberHandle
}

func newRegistry() *registry {
	return &registry{m: make(map[int64]fiberHandle)}
}

func (r *registry) add(gid int64, f fiberHandle) {
	r.mu.Lock()
	r.m[gid] = f
	r.mu.Unlock()
}

func (r *registry) remove(gid int64) {
	r.mu.Lock()
	delete(r.m, gid)
	r.mu.Unlock()
}

// current returns the fiber hosting the calling goroutine, or nil when
// the caller is not running on a scheduler fiber.
func (r *registry) current() fiberHandle {
	gid := goid.Get()
	r.mu.RLock()
	f := r.m[gid]
	r.mu.RUnlock()
	return f
}

func (r *registry) size() int {
	r.mu.RLock()
	n := len(r.m)
	r.mu.RUnlock()
	return n
}
