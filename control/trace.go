// control/trace.go
// Author: momentics <momentics@gmail.com>
//
// Bounded journal of scheduler lifecycle events (init, worker start,
// shutdown). Oldest entries are dropped once capacity is reached.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"

	"github.com/momentics/fibersched/api"
)

// Ensure compile-time interface compliance.
var _ api.TraceSink = (*TraceJournal)(nil)

// TraceEvent is one journal entry.
type TraceEvent struct {
	At     time.Time
	Event  string
	Detail any
}

// TraceJournal records scheduler events into a bounded FIFO.
type TraceJournal struct {
	mu  sync.Mutex
	q   *queue.Queue
	cap int
}

// NewTraceJournal creates a journal keeping at most capacity events.
func NewTraceJournal(capacity int) *TraceJournal {
	if capacity <= 0 {
		capacity = 256
	}
	return &TraceJournal{
		q:   queue.New(),
		cap: capacity,
	}
}

// Record appends an event, evicting the oldest beyond capacity.
func (tj *TraceJournal) Record(event string, detail any) {
	tj.mu.Lock()
	tj.q.Add(TraceEvent{At: time.Now(), Event: event, Detail: detail})
	for tj.q.Length() > tj.cap {
		tj.q.Remove()
	}
	tj.mu.Unlock()
}

// Len returns the number of journalled events.
func (tj *TraceJournal) Len() int {
	tj.mu.Lock()
	defer tj.mu.Unlock()
	return tj.q.Length()
}

// Drain removes and returns all journalled events in order.
func (tj *TraceJournal) Drain() []TraceEvent {
	tj.mu.Lock()
	defer tj.mu.Unlock()
	out := make([]TraceEvent, 0, tj.q.Length())
	for tj.q.Length() > 0 {
		out = append(out, tj.q.Remove().(TraceEvent))
	}
	return out
}
