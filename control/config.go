// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe store of the scheduler's sizing limits with reload
// listener propagation.

package control

import (
	"sync"

	"github.com/momentics/fibersched/api"
)

// ConfigStore holds the scheduler's Limits with atomic snapshot and
// listener support. Sizing is immutable per run; an update stages the
// limits for the embedder's next init cycle and notifies listeners, it
// never resizes a live scheduler.
type ConfigStore struct {
	mu        sync.RWMutex
	limits    api.Limits
	listeners []func(api.Limits)
}

// NewConfigStore initializes a store with the given starting limits.
func NewConfigStore(initial api.Limits) *ConfigStore {
	return &ConfigStore{limits: initial}
}

// Snapshot returns the currently stored limits.
func (cs *ConfigStore) Snapshot() api.Limits {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.limits
}

// Set replaces the stored limits and dispatches reload listeners.
func (cs *ConfigStore) Set(limits api.Limits) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.limits = limits
	cs.dispatchReload()
}

// OnReload registers a listener called with the new limits on every change.
func (cs *ConfigStore) OnReload(fn func(api.Limits)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// dispatchReload invokes all listeners with the current limits.
func (cs *ConfigStore) dispatchReload() {
	limits := cs.limits
	for _, fn := range cs.listeners {
		go fn(limits)
	}
}
