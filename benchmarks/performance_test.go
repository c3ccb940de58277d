// Package benchmarks
// Author: momentics <momentics@gmail.com>
//
// Performance benchmarks for fibersched components.

package benchmarks

import (
	"testing"

	"github.com/momentics/fibersched/pool"
	"github.com/momentics/fibersched/sched"
)

// BenchmarkRingThroughput measures the bounded ring under contention.
func BenchmarkRingThroughput(b *testing.B) {
	ring := pool.NewRing[int](1024)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if !ring.TryEnqueue(i) {
				ring.TryDequeue()
				continue
			}
			ring.TryDequeue()
			i++
		}
	})
}

// BenchmarkSubmitAwaitFanOut measures a submit-batch/await round trip
// of 64 empty jobs per iteration.
func BenchmarkSubmitAwaitFanOut(b *testing.B) {
	s, err := sched.Init(&sched.Config{
		NumFibers:     1024,
		QueueCapacity: 4096,
	})
	if err != nil {
		b.Fatalf("init: %v", err)
	}

	noop := func(any) {}
	jobs := make([]sched.JobDeclaration, 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var h sched.WaitHandle
		for j := range jobs {
			jobs[j] = sched.JobDeclaration{Fn: noop, WaitHandle: &h}
		}
		if err := s.SubmitBatch(jobs); err != nil {
			b.Fatalf("submit batch: %v", err)
		}
		if err := s.Await(&h); err != nil {
			b.Fatalf("await: %v", err)
		}
	}
	b.StopTimer()
	if err := s.Free(); err != nil {
		b.Fatalf("free: %v", err)
	}
}

// BenchmarkSubmitSingle measures single-job submit/await latency on one
// worker.
func BenchmarkSubmitSingle(b *testing.B) {
	s, err := sched.Init(&sched.Config{
		MaxThreads:    1,
		NumFibers:     64,
		QueueCapacity: 1024,
	})
	if err != nil {
		b.Fatalf("init: %v", err)
	}

	noop := func(any) {}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var h sched.WaitHandle
		jb := sched.JobDeclaration{Fn: noop, WaitHandle: &h}
		if err := s.Submit(&jb); err != nil {
			b.Fatalf("submit: %v", err)
		}
		if err := s.Await(&h); err != nil {
			b.Fatalf("await: %v", err)
		}
	}
	b.StopTimer()
	if err := s.Free(); err != nil {
		b.Fatalf("free: %v", err)
	}
}
