package dispatch

import "errors"

// Sentinel errors for the dispatch package.
var (
	// ErrQueueClosed is returned when submitting to or closing an
	// already-closed queue.
	ErrQueueClosed = errors.New("dispatch queue is closed")

	// ErrNilJob is returned when a nil job is submitted.
	ErrNilJob = errors.New("job cannot be nil")
)
