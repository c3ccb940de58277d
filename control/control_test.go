// File: control/control_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import (
	"testing"

	"github.com/momentics/fibersched/api"
)

func TestConfigStoreSnapshot(t *testing.T) {
	cs := NewConfigStore(api.Limits{NumFibers: 1024, QueueCapacity: 4096})
	got := cs.Snapshot()
	if got.NumFibers != 1024 || got.QueueCapacity != 4096 {
		t.Fatalf("snapshot = %+v", got)
	}
	cs.Set(api.Limits{NumFibers: 256, MaxThreads: 2})
	if got := cs.Snapshot(); got.NumFibers != 256 || got.MaxThreads != 2 {
		t.Fatalf("snapshot after set = %+v", got)
	}
}

func TestConfigStoreReloadListener(t *testing.T) {
	cs := NewConfigStore(api.Limits{NumFibers: 64})
	fired := make(chan api.Limits, 1)
	cs.OnReload(func(l api.Limits) {
		fired <- l
	})
	cs.Set(api.Limits{NumFibers: 64, PinWorkers: true})
	got := <-fired
	if !got.PinWorkers || got.NumFibers != 64 {
		t.Fatalf("listener saw %+v", got)
	}
}

func TestMetricsRegistry(t *testing.T) {
	mr := NewMetricsRegistry()
	if _, ok := mr.Snapshot(); ok {
		t.Fatal("fresh registry reports a flush")
	}
	mr.Flush(api.SchedulerStats{JobsExecuted: 7, Wakes: 3})
	snap, ok := mr.Snapshot()
	if !ok || snap.JobsExecuted != 7 || snap.Wakes != 3 {
		t.Fatalf("snapshot = %+v, ok = %v", snap, ok)
	}
	if mr.UpdatedAt().IsZero() {
		t.Fatal("updated timestamp not set")
	}
}

func TestDebugProbes(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterProbe("scheduler", func() any {
		return api.SchedulerStats{Workers: 2}
	})
	dp.RegisterProbe("queue_depth", func() any { return 5 })
	out := dp.DumpState()
	if out["queue_depth"] != 5 {
		t.Fatalf("probe output: %v", out)
	}
	if st, ok := out["scheduler"].(api.SchedulerStats); !ok || st.Workers != 2 {
		t.Fatalf("scheduler probe output: %v", out["scheduler"])
	}
	names := dp.Names()
	if len(names) != 2 || names[0] != "scheduler" || names[1] != "queue_depth" {
		t.Fatalf("names = %v", names)
	}
	// Re-registration replaces in place, keeping order.
	dp.RegisterProbe("scheduler", func() any { return nil })
	if names := dp.Names(); len(names) != 2 || names[0] != "scheduler" {
		t.Fatalf("names after re-register = %v", names)
	}
}

func TestTraceJournalBounded(t *testing.T) {
	tj := NewTraceJournal(4)
	for i := 0; i < 10; i++ {
		tj.Record("event", i)
	}
	if got := tj.Len(); got != 4 {
		t.Fatalf("journal length %d, want 4", got)
	}
	events := tj.Drain()
	if len(events) != 4 {
		t.Fatalf("drained %d events, want 4", len(events))
	}
	// The four newest survive.
	for i, ev := range events {
		if ev.Detail != 6+i {
			t.Fatalf("event %d detail = %v, want %d", i, ev.Detail, 6+i)
		}
	}
	if tj.Len() != 0 {
		t.Fatal("journal not empty after drain")
	}
}
