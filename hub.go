package beacon

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/dkelly-dev/beacon/internal/dispatch"
)

// State is the hub's configure lifecycle state.
type State int32

const (
	// StateUnconfigured means ConfigureAdapters has not run yet; tracked
	// events and updated properties are postponed.
	StateUnconfigured State = iota

	// StateConfiguring means adapter Configure calls are in progress.
	StateConfiguring

	// StateConfigured means the configure phase and the postponement flush
	// have completed. The hub never leaves this state.
	StateConfigured
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfiguring:
		return "configuring"
	case StateConfigured:
		return "configured"
	default:
		return "unknown"
	}
}

// Stats contains hub counters.
type Stats struct {
	// EventsTracked is the total number of Track calls accepted.
	EventsTracked uint64

	// PropertiesUpdated is the total number of Update calls accepted.
	PropertiesUpdated uint64

	// EventsDelivered counts per-adapter event deliveries.
	EventsDelivered uint64

	// PropertiesDelivered counts per-adapter property deliveries.
	PropertiesDelivered uint64

	// EventsPostponed counts events buffered before configuration.
	EventsPostponed uint64

	// PropertiesPostponed counts properties buffered before configuration.
	PropertiesPostponed uint64

	// UpdateEventsDispatched counts events generated by property updates.
	UpdateEventsDispatched uint64

	// AdapterPanics counts recovered panics from adapter calls.
	AdapterPanics uint64

	// QueueDepth is the current number of pending dispatch jobs.
	QueueDepth int
}

// Hub fans tracked events and updated properties out to registered
// adapters, applying per-adapter rules and postponing delivery until the
// adapters have been configured.
//
// All mutating work runs on one internal dispatch goroutine, so calls
// issued from a single goroutine reach adapters in program order, and each
// call's full adapter fan-out is atomic with respect to any other call.
//
// Create hubs with New. A process-wide shared instance is available via
// Default for use at the application's composition root.
type Hub struct {
	queue    *dispatch.Serial
	registry *adapterRegistry

	state  atomic.Int32
	closed atomic.Bool

	logLevel  atomic.Int32
	sinkMu    sync.RWMutex
	sink      LogSink
	panicHook PanicHook

	// Touched only on the dispatch goroutine.
	postponedEvents []Event
	postponedProps  []Property

	eventsTracked          atomic.Uint64
	propertiesUpdated      atomic.Uint64
	eventsDelivered        atomic.Uint64
	propertiesDelivered    atomic.Uint64
	eventsPostponed        atomic.Uint64
	propertiesPostponed    atomic.Uint64
	updateEventsDispatched atomic.Uint64
	adapterPanics          atomic.Uint64
}

// New creates a hub and starts its dispatch goroutine.
func New(opts ...HubOption) *Hub {
	config := defaultHubConfig()
	for _, opt := range opts {
		opt(&config)
	}

	h := &Hub{
		queue:     dispatch.NewSerial(),
		registry:  newAdapterRegistry(),
		sink:      config.logSink,
		panicHook: config.panicHook,
	}
	h.logLevel.Store(int32(config.logLevel))
	return h
}

var (
	defaultHub     *Hub
	defaultHubOnce sync.Once
)

// Default returns the process-wide shared hub, creating it on first use.
func Default() *Hub {
	defaultHubOnce.Do(func() {
		defaultHub = New()
	})
	return defaultHub
}

// StartTracking registers the given adapters and synchronously runs the
// configure phase, including the postponement flush. It is equivalent to
// Set followed by ConfigureAdapters, executed as a single atomic step.
func (h *Hub) StartTracking(adapters ...Adapter) error {
	if err := validateAdapters(adapters); err != nil {
		return err
	}
	return h.submitWait(func() error {
		if h.State() != StateUnconfigured {
			return ErrAlreadyConfigured
		}
		h.registry.Replace(adapters)
		return h.configure()
	})
}

// Set replaces the entire adapter registry. The previous list is discarded
// wholesale; there is no incremental add or remove, and no de-duplication.
func (h *Hub) Set(adapters ...Adapter) error {
	if err := validateAdapters(adapters); err != nil {
		return err
	}
	return h.submitWait(func() error {
		h.registry.Replace(adapters)
		return nil
	})
}

// ConfigureAdapters invokes Configure on every registered adapter in
// registration order, marks the hub configured, then replays all postponed
// events and properties exactly once in submission order. It blocks until
// the flush has completed.
//
// The configure phase is guarded: a second call returns
// ErrAlreadyConfigured without re-running any adapter's Configure.
func (h *Hub) ConfigureAdapters() error {
	return h.submitWait(h.configure)
}

// ResetAdapters invokes Reset on every registered adapter in registration
// order. It does not change the lifecycle state or the registry.
func (h *Hub) ResetAdapters() error {
	return h.submitWait(func() error {
		for _, a := range h.registry.Snapshot() {
			h.safeAdapterCall(adapterName(a), a.Reset)
		}
		return nil
	})
}

// Track dispatches an event to every eligible adapter. Before the hub is
// configured the event is postponed instead. The call is fire-and-forget:
// it returns as soon as the event is accepted, and adapter failures are
// never observed by the caller. The only error is ErrHubClosed.
func (h *Hub) Track(e Event) error {
	err := h.queue.Submit(func() {
		h.eventsTracked.Add(1)
		if !h.IsConfigured() {
			h.postponedEvents = append(h.postponedEvents, e)
			h.eventsPostponed.Add(1)
			return
		}
		h.dispatchEvent(e)
	})
	if err != nil {
		return ErrHubClosed
	}
	return nil
}

// Update dispatches a property to every eligible adapter, then dispatches
// the property's update events regardless of whether any adapter accepted
// the property itself. Before the hub is configured the property is
// postponed instead. Fire-and-forget like Track.
func (h *Hub) Update(p Property) error {
	err := h.queue.Submit(func() {
		h.propertiesUpdated.Add(1)
		if !h.IsConfigured() {
			h.postponedProps = append(h.postponedProps, p)
			h.propertiesPostponed.Add(1)
			return
		}
		h.dispatchProperty(p)
	})
	if err != nil {
		return ErrHubClosed
	}
	return nil
}

// LogLevel returns the current delivery log level.
func (h *Hub) LogLevel() LogLevel {
	return LogLevel(h.logLevel.Load())
}

// SetLogLevel sets the delivery log level.
func (h *Hub) SetLogLevel(level LogLevel) {
	h.logLevel.Store(int32(level))
}

// SetLogSink replaces the delivery log sink. Passing nil restores the
// default console sink.
func (h *Hub) SetLogSink(sink LogSink) {
	if sink == nil {
		sink = defaultLogSink()
	}
	h.sinkMu.Lock()
	h.sink = sink
	h.sinkMu.Unlock()
}

// State returns the current lifecycle state.
func (h *Hub) State() State {
	return State(h.state.Load())
}

// IsConfigured reports whether the configure phase has completed.
func (h *Hub) IsConfigured() bool {
	return h.State() == StateConfigured
}

// AdapterNames returns the display names of the registered adapters in
// registration order.
func (h *Hub) AdapterNames() []string {
	return h.registry.Names()
}

// Stats returns current hub counters.
func (h *Hub) Stats() Stats {
	return Stats{
		EventsTracked:          h.eventsTracked.Load(),
		PropertiesUpdated:      h.propertiesUpdated.Load(),
		EventsDelivered:        h.eventsDelivered.Load(),
		PropertiesDelivered:    h.propertiesDelivered.Load(),
		EventsPostponed:        h.eventsPostponed.Load(),
		PropertiesPostponed:    h.propertiesPostponed.Load(),
		UpdateEventsDispatched: h.updateEventsDispatched.Load(),
		AdapterPanics:          h.adapterPanics.Load(),
		QueueDepth:             h.queue.Len(),
	}
}

// Drain blocks until every dispatch job accepted before the call has run,
// or until the context is cancelled. Useful as a barrier in tests.
func (h *Hub) Drain(ctx context.Context) error {
	done := make(chan struct{})
	if err := h.queue.Submit(func() { close(done) }); err != nil {
		return ErrHubClosed
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work and waits until already-accepted jobs have
// drained, or until the context is cancelled. After Close, Track and
// Update return ErrHubClosed.
func (h *Hub) Close(ctx context.Context) error {
	if h.closed.Swap(true) {
		return ErrHubClosed
	}
	if err := h.queue.Close(ctx); err != nil && !errors.Is(err, dispatch.ErrQueueClosed) {
		return err
	}
	return nil
}

// configure runs the configure phase. Dispatch goroutine only.
func (h *Hub) configure() error {
	if h.State() != StateUnconfigured {
		return ErrAlreadyConfigured
	}
	h.state.Store(int32(StateConfiguring))

	for _, a := range h.registry.Snapshot() {
		h.safeAdapterCall(adapterName(a), a.Configure)
	}

	h.state.Store(int32(StateConfigured))
	h.replayPostponed()
	return nil
}

// replayPostponed flushes the postponement queues exactly once: all events
// in submission order, then all properties in submission order. The lists
// are cleared only after replay completes. New submissions cannot
// interleave because they are queued behind the configure job.
func (h *Hub) replayPostponed() {
	for _, e := range h.postponedEvents {
		h.dispatchEvent(e)
	}
	for _, p := range h.postponedProps {
		h.dispatchProperty(p)
	}
	h.postponedEvents = nil
	h.postponedProps = nil
}

// dispatchEvent fans one event out to eligible adapters. Dispatch
// goroutine only; re-entered directly for property update events.
func (h *Hub) dispatchEvent(e Event) {
	for _, a := range h.registry.Snapshot() {
		if !a.EventRule().Allows(e.Kind) {
			continue
		}
		name := adapterName(a)
		h.logDelivery(func(level LogLevel) string {
			return formatEventLine(name, e, level)
		})
		h.safeAdapterCall(name, func() { a.TrackEvent(e) })
		h.eventsDelivered.Add(1)
	}
}

// dispatchProperty fans one property out to eligible adapters, then
// dispatches its update events unconditionally: the "what changed" signal
// is decoupled from per-adapter property filtering.
func (h *Hub) dispatchProperty(p Property) {
	for _, a := range h.registry.Snapshot() {
		if !a.PropertyRule().Allows(p.Kind) {
			continue
		}
		name := adapterName(a)
		h.logDelivery(func(level LogLevel) string {
			return formatPropertyLine(name, p, level)
		})
		h.safeAdapterCall(name, func() { a.TrackProperty(p) })
		h.propertiesDelivered.Add(1)
	}

	for _, e := range p.UpdateEvents() {
		h.updateEventsDispatched.Add(1)
		h.dispatchEvent(e)
	}
}

// logDelivery emits one delivery log line. Logging never blocks delivery
// and never propagates panics from the sink.
func (h *Hub) logDelivery(format func(level LogLevel) string) {
	level := h.LogLevel()
	if level == LogNone {
		return
	}

	h.sinkMu.RLock()
	sink := h.sink
	h.sinkMu.RUnlock()
	if sink == nil {
		return
	}

	defer func() { _ = recover() }()
	sink(format(level))
}

// safeAdapterCall isolates one adapter invocation so a panicking adapter
// cannot block delivery to the rest or reach Track/Update callers.
func (h *Hub) safeAdapterCall(adapter string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			h.adapterPanics.Add(1)
			if hook := h.panicHook; hook != nil {
				stack := debug.Stack()
				func() {
					defer func() { _ = recover() }()
					hook(adapter, r, stack)
				}()
			}
		}
	}()
	fn()
}

// submitWait runs fn on the dispatch goroutine and blocks until it
// returns, propagating its error.
func (h *Hub) submitWait(fn func() error) error {
	done := make(chan struct{})
	var err error
	if submitErr := h.queue.Submit(func() {
		defer close(done)
		err = fn()
	}); submitErr != nil {
		return ErrHubClosed
	}
	<-done
	return err
}

// validateAdapters rejects nil entries before any job is queued.
func validateAdapters(adapters []Adapter) error {
	for _, a := range adapters {
		if a == nil {
			return ErrNilAdapter
		}
	}
	return nil
}
