// File: facade/fibersched_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"sync/atomic"
	"testing"

	"github.com/momentics/fibersched/api"
	"github.com/momentics/fibersched/sched"
)

func testConfig() *Config {
	return &Config{
		MaxThreads:    2,
		NumFibers:     64,
		QueueCapacity: 1024,
		EnableMetrics: true,
		EnableTrace:   true,
		TraceCapacity: 32,
	}
}

func TestRunRoundTrip(t *testing.T) {
	var entered atomic.Bool
	err := Run(func(r *Runtime, user any) {
		entered.Store(true)
		if user != "payload" {
			t.Errorf("user = %v", user)
		}
	}, "payload", testConfig())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !entered.Load() {
		t.Fatal("entry did not run")
	}
}

func TestRunNilEntry(t *testing.T) {
	if err := Run(nil, nil, testConfig()); err != nil {
		t.Fatalf("nil-entry run: %v", err)
	}
}

func TestRunSubmitAwait(t *testing.T) {
	var total atomic.Int64
	err := Run(func(r *Runtime, user any) {
		s := r.Scheduler
		var h sched.WaitHandle
		jobs := make([]sched.JobDeclaration, 32)
		for i := range jobs {
			jobs[i] = sched.JobDeclaration{
				Fn:         func(any) { total.Add(1) },
				WaitHandle: &h,
			}
		}
		if err := s.SubmitBatch(jobs); err != nil {
			t.Errorf("submit batch: %v", err)
			return
		}
		if err := s.Await(&h); err != nil {
			t.Errorf("await: %v", err)
		}
	}, nil, testConfig())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := total.Load(); got != 32 {
		t.Fatalf("ran %d jobs, want 32", got)
	}
}

func TestMetricsAndTraceFlushedAtFree(t *testing.T) {
	r, err := Init(testConfig())
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := r.Free(); err != nil {
		t.Fatalf("free: %v", err)
	}
	snap, flushed := r.Metrics().Snapshot()
	if !flushed {
		t.Fatal("metrics not flushed at free")
	}
	if snap.Workers != r.Scheduler.NumWorkers() || snap.Fibers != 64 {
		t.Fatalf("flushed snapshot = %+v", snap)
	}
	events := r.Trace().Drain()
	var sawInit, sawShutdown bool
	for _, ev := range events {
		switch ev.Event {
		case "init":
			sawInit = true
		case "shutdown":
			sawShutdown = true
		}
	}
	if !sawInit || !sawShutdown {
		t.Fatalf("lifecycle events missing from trace: %v", events)
	}
}

func TestControlSurface(t *testing.T) {
	r, err := Init(testConfig())
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	defer r.Free()

	if got := r.Limits().NumFibers; got != 64 {
		t.Fatalf("limits num fibers = %d", got)
	}
	reloaded := make(chan api.Limits, 1)
	r.OnReload(func(l api.Limits) { reloaded <- l })
	if err := r.SetLimits(api.Limits{NumFibers: 128}); err != nil {
		t.Fatalf("set limits: %v", err)
	}
	if got := <-reloaded; got.NumFibers != 128 {
		t.Fatalf("reload saw %+v", got)
	}
	r.RegisterDebugProbe("custom", func() any { return "ok" })
	state := r.DumpState()
	if state["custom"] != "ok" {
		t.Fatalf("custom probe missing: %v", state)
	}
	if st, ok := state["scheduler"].(api.SchedulerStats); !ok || st.Workers == 0 {
		t.Fatalf("scheduler probe missing: %v", state)
	}
	if r.Stats().Workers != r.Scheduler.NumWorkers() {
		t.Fatal("stats disagree with scheduler")
	}
}
