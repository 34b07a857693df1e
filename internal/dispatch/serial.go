package dispatch

import (
	"context"
	"runtime/debug"
	"sync"
)

// PanicHandler is called when a submitted job panics.
type PanicHandler func(recovered any, stack []byte)

// Serial is an unbounded FIFO work queue drained by exactly one worker
// goroutine. Jobs submitted from any goroutine run one at a time in
// submission order, so state touched only from jobs needs no locking.
//
// The queue is unbounded so producers never block and never drop: ordering
// is the whole point of serializing, and a cascading job may enqueue
// arbitrarily many follow-ups.
type Serial struct {
	mu     sync.Mutex
	jobs   []func()
	closed bool
	signal chan struct{} // coalesced availability signal, buffered size 1
	done   chan struct{} // closed when the worker exits

	panicHandler PanicHandler
}

// Option configures a Serial queue.
type Option func(*Serial)

// WithPanicHandler sets the handler invoked when a job panics.
func WithPanicHandler(h PanicHandler) Option {
	return func(s *Serial) {
		s.panicHandler = h
	}
}

// NewSerial creates a queue and starts its worker goroutine.
func NewSerial(opts ...Option) *Serial {
	s := &Serial{
		jobs:   make([]func(), 0, 64),
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

// Submit appends a job to the back of the queue.
// Safe to call from any goroutine, including from within a running job.
func (s *Serial) Submit(job func()) error {
	if job == nil {
		return ErrNilJob
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrQueueClosed
	}
	s.jobs = append(s.jobs, job)
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
	return nil
}

// Len returns the number of jobs waiting to run.
func (s *Serial) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Close stops intake and waits until the worker has drained all pending
// jobs, or until the context is cancelled. Jobs submitted before Close are
// still executed; later Submit calls return ErrQueueClosed.
func (s *Serial) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrQueueClosed
	}
	s.closed = true
	s.mu.Unlock()

	// Wake the worker in case it is idle.
	select {
	case s.signal <- struct{}{}:
	default:
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the worker loop.
func (s *Serial) run() {
	defer close(s.done)

	for {
		if job, ok := s.next(); ok {
			s.runJob(job)
			continue
		}

		s.mu.Lock()
		drained := s.closed && len(s.jobs) == 0
		s.mu.Unlock()
		if drained {
			return
		}

		<-s.signal
	}
}

// next pops the front job without blocking.
func (s *Serial) next() (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.jobs) == 0 {
		return nil, false
	}

	job := s.jobs[0]
	// Nil out the slot so the backing array does not retain the closure.
	s.jobs[0] = nil
	if len(s.jobs) == 1 {
		s.jobs = s.jobs[:0]
	} else {
		s.jobs = s.jobs[1:]
	}
	return job, true
}

// runJob executes one job, keeping the worker alive across panics.
func (s *Serial) runJob(job func()) {
	defer func() {
		if r := recover(); r != nil {
			if s.panicHandler != nil {
				stack := debug.Stack()
				func() {
					defer func() { _ = recover() }()
					s.panicHandler(r, stack)
				}()
			}
		}
	}()
	job()
}
