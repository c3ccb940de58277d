// File: fiber/fiber.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Goroutine-backed fiber primitive: create, adopt, switch, delete.

package fiber

// Fiber is a cooperatively scheduled execution context. H is the
// hand-off token type delivered on every wake; the scheduler passes the
// hosting worker so a resumed fiber learns which worker it now runs on.
type Fiber[H any] struct {
	// resume is buffered so a wake never blocks: the target is either
	// parked already or about to park.
	resume chan H
	quit   chan struct{}
	done   chan struct{} // nil for adopted fibers
	host   H             // last received token; touched only by the owning goroutine
}

// Entry is a fiber body. It is invoked on the first wake; the first
// hand-off token is available via self.Host(). Returning terminates the
// fiber's goroutine.
type Entry[H any] func(self *Fiber[H])

// New creates a fiber whose goroutine stays parked until the first wake.
func New[H any](entry Entry[H]) *Fiber[H] {
	f := &Fiber[H]{
		resume: make(chan H, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(f.done)
		if !f.park() {
			return
		}
		entry(f)
	}()
	return f
}

// Adopt wraps the calling goroutine in a fiber handle so it can park
// and be resumed like a created fiber. The goroutine keeps running; no
// entry is invoked. Dropping the handle converts the goroutine back to
// an ordinary one.
func Adopt[H any]() *Fiber[H] {
	return &Fiber[H]{
		resume: make(chan H, 1),
		quit:   make(chan struct{}),
	}
}

// park blocks until the next wake or deletion. It returns false when
// the fiber was deleted instead of woken.
func (f *Fiber[H]) park() bool {
	select {
	case h := <-f.resume:
		f.host = h
		return true
	case <-f.quit:
		return false
	}
}

// Wake delivers a token to f and unparks it without parking the caller.
// Used where the handing-over context terminates or keeps running.
func (f *Fiber[H]) Wake(h H) {
	f.resume <- h
}

// Switch hands control to next and parks the calling fiber, which must
// be running on f. The returned token is the one delivered by whichever
// fiber eventually wakes f; ok is false when f was deleted while
// parked, in which case the body must unwind.
func (f *Fiber[H]) Switch(next *Fiber[H], h H) (H, bool) {
	next.Wake(h)
	if !f.park() {
		var zero H
		return zero, false
	}
	return f.host, true
}

// Host returns the token delivered by the most recent wake. Only the
// fiber's own goroutine may call it.
func (f *Fiber[H]) Host() H {
	return f.host
}

// Delete terminates a parked fiber and waits for its goroutine to
// unwind. Deleting a fiber that is currently running or owned by a wait
// handle violates the hand-off discipline. Safe to call more than once.
func (f *Fiber[H]) Delete() {
	select {
	case <-f.quit:
	default:
		close(f.quit)
	}
	if f.done != nil {
		<-f.done
	}
}
