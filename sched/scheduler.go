// File: sched/scheduler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scheduler context and lifecycle: Init adopts the calling goroutine as
// the main fiber and starts the workers; Free signals shutdown, rejoins
// them and reclaims every fiber.

package sched

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"

	"github.com/momentics/fibersched/api"
	"github.com/momentics/fibersched/fiber"
	"github.com/momentics/fibersched/pool"
)

// Ensure compile-time interface compliance.
var _ api.Scheduler = (*Scheduler)(nil)

// Config holds parameters immutable per run. The zero value of a field
// selects its default.
type Config struct {
	// MaxThreads caps the worker count; api.AllCores means one worker
	// per logical CPU (bounded by api.MaxThreads).
	MaxThreads int
	// NumFibers is the fiber pool size. It bounds the maximum await
	// depth: every await in flight parks one fiber.
	NumFibers int
	// QueueCapacity bounds the job queue.
	QueueCapacity int
	// PinWorkers locks each worker goroutine to an OS thread and pins
	// it to a CPU. Pin failures are logged, never fatal.
	PinWorkers bool
	// Metrics, when non-nil, receives final counters at Free.
	Metrics api.MetricsSink
	// Trace, when non-nil, receives lifecycle events.
	Trace api.TraceSink
}

// DefaultConfig returns the default scheduler configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxThreads:    api.AllCores,
		NumFibers:     api.NumFibers,
		QueueCapacity: api.JobQueueCapacity,
	}
}

// Scheduler is the instance-scoped state tying together the job queue,
// the fiber pool, the worker table and the lifecycle fibers. Create
// with Init, dispose with Free. No process-wide state is kept.
type Scheduler struct {
	cfg Config

	jobQueue  *pool.Ring[JobDeclaration]
	fiberPool *pool.LockFreeQueue[fiberHandle]

	// mu guards pending and stopping and pairs with cond to block idle
	// workers. The pending counter only keeps workers from spinning on
	// an empty queue; job execution does not depend on it.
	mu       sync.Mutex
	cond     *sync.Cond
	pending  int64
	stopping bool
	stopFlag atomic.Bool // lock-free mirror of stopping for hot paths

	workers   []*worker
	wg        sync.WaitGroup
	mainFiber fiberHandle
	bootstrap fiberHandle
	mainGID   int64

	reg *registry

	metrics api.MetricsSink
	trace   api.TraceSink

	jobsSubmitted atomic.Int64
	jobsExecuted  atomic.Int64
	parks         atomic.Int64
	wakes         atomic.Int64
	poolFatal     atomic.Bool
}

// Init creates a scheduler and converts the calling goroutine into its
// main fiber. When Init returns, the caller is hosted on worker 0 and
// everything it does until Free runs inside the scheduler. A nil cfg
// selects DefaultConfig.
func Init(cfg *Config) (*Scheduler, error) {
	c := DefaultConfig()
	if cfg != nil {
		if cfg.MaxThreads < 0 || cfg.NumFibers < 0 || cfg.QueueCapacity < 0 {
			return nil, api.ErrInvalidArgument
		}
		c.MaxThreads = cfg.MaxThreads
		if cfg.NumFibers != 0 {
			c.NumFibers = cfg.NumFibers
		}
		if cfg.QueueCapacity != 0 {
			c.QueueCapacity = cfg.QueueCapacity
		}
		c.PinWorkers = cfg.PinWorkers
		c.Metrics = cfg.Metrics
		c.Trace = cfg.Trace
	}

	s := &Scheduler{
		cfg:     *c,
		reg:     newRegistry(),
		metrics: c.Metrics,
		trace:   c.Trace,
	}
	s.cond = sync.NewCond(&s.mu)
	s.jobQueue = pool.NewRing[JobDeclaration](c.QueueCapacity)
	s.fiberPool = pool.NewLockFreeQueue[fiberHandle](c.NumFibers)

	for i := 0; i < c.NumFibers; i++ {
		f := fiber.New(s.fiberEntry)
		if !s.fiberPool.TryEnqueue(f) {
			panic("fibersched: fiber pool overflow at init")
		}
	}

	n := runtime.NumCPU()
	if n > api.MaxThreads {
		n = api.MaxThreads
	}
	if c.MaxThreads != api.AllCores && c.MaxThreads < n {
		n = c.MaxThreads
	}
	if n < 1 {
		n = 1
	}
	s.workers = make([]*worker, n)

	if s.trace != nil {
		s.trace.Record("init", map[string]any{"workers": n, "fibers": c.NumFibers})
	}

	s.mainGID = goid.Get()
	s.mainFiber = fiber.Adopt[*worker]()
	s.reg.add(s.mainGID, s.mainFiber)

	// The bootstrap fiber spawns the workers and later, at Free time,
	// rejoins them and hands control back to the main fiber. Parking
	// here is what lets worker 0 pick the caller up as its first fiber.
	s.bootstrap = fiber.New(s.bootstrapMain)
	if _, alive := s.mainFiber.Switch(s.bootstrap, nil); !alive {
		return nil, api.ErrSchedulerShutdown
	}
	return s, nil
}

// bootstrapMain spawns the worker goroutines, waits for all of them to
// exit and then returns control to the main fiber, whose Free call is
// parked on the final hand-off.
func (s *Scheduler) bootstrapMain(self *fiber.Fiber[*worker]) {
	for i := range s.workers {
		w := &worker{id: i}
		s.workers[i] = w
		s.wg.Add(1)
		go s.workerMain(w)
	}
	s.wg.Wait()
	s.mainFiber.Wake(nil)
}

// Free shuts the scheduler down. It must be called from the main fiber
// (the context Init returned into) with no jobs in flight; it does not
// cancel jobs. After Free the scheduler cannot be reused, but a new
// Init is independent.
func (s *Scheduler) Free() error {
	if s == nil {
		return api.ErrInvalidArgument
	}
	if s.reg.current() != s.mainFiber {
		return api.ErrNotMainFiber
	}
	s.mu.Lock()
	if s.stopping {
		s.mu.Unlock()
		return api.ErrSchedulerShutdown
	}
	s.stopping = true
	s.stopFlag.Store(true)
	s.cond.Broadcast()
	s.mu.Unlock()

	if s.trace != nil {
		s.trace.Record("shutdown", nil)
	}

	// Yield to the hosting worker: its loop observes shutdown and
	// exits; the bootstrap fiber's join completes and wakes us back.
	w := s.mainFiber.Host()
	if _, alive := s.mainFiber.Switch(w.fiber, w); !alive {
		return api.ErrSchedulerShutdown
	}

	// The caller's goroutine is an ordinary goroutine again.
	s.reg.remove(s.mainGID)
	s.bootstrap.Delete()
	for {
		f, ok := s.fiberPool.TryDequeue()
		if !ok {
			break
		}
		f.Delete()
	}
	if s.metrics != nil {
		s.metrics.Flush(s.Stats())
	}
	if s.trace != nil {
		s.trace.Record("freed", nil)
	}
	return nil
}

// NumWorkers returns the number of worker loops hosting fibers.
func (s *Scheduler) NumWorkers() int {
	return len(s.workers)
}

// Stats returns a snapshot of scheduler counters for diagnostics.
func (s *Scheduler) Stats() api.SchedulerStats {
	s.mu.Lock()
	pending := s.pending
	s.mu.Unlock()
	return api.SchedulerStats{
		Workers:       len(s.workers),
		Fibers:        s.cfg.NumFibers,
		FibersIdle:    s.fiberPool.Len(),
		QueueDepth:    s.jobQueue.Len(),
		JobsPending:   pending,
		JobsSubmitted: s.jobsSubmitted.Load(),
		JobsExecuted:  s.jobsExecuted.Load(),
		Parks:         s.parks.Load(),
		Wakes:         s.wakes.Load(),
		PoolFatal:     s.poolFatal.Load(),
	}
}
