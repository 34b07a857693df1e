// Package dispatch provides the single-consumer work queue that serializes
// all hub mutations and adapter fan-out.
//
// A Serial queue owns exactly one worker goroutine. Jobs submitted from any
// goroutine execute strictly in submission order, which gives the hub its
// core ordering guarantee without per-call locking: no two dispatch
// operations ever run concurrently against the adapter registry.
//
// The queue is unbounded; Submit never blocks and never drops. Close stops
// intake and drains what was already accepted, so tests get deterministic
// teardown.
package dispatch
