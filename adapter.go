package beacon

import "fmt"

// Adapter is implemented by analytics backends that receive filtered events
// and properties from a Hub, typically wrapping a third-party vendor SDK.
//
// The hub treats every adapter call as fire-and-forget: adapters must not
// propagate failures, and panics are isolated so one misbehaving adapter
// cannot block delivery to the rest.
//
// Embed AdapterDefaults to get default implementations for everything
// except TrackEvent and TrackProperty.
type Adapter interface {
	// Name identifies the adapter in delivery logs. Returning "" lets the
	// hub fall back to the adapter's concrete type name.
	Name() string

	// EventRule filters tracked events. Nil delivers every event.
	EventRule() *Rule

	// PropertyRule filters updated properties. Nil delivers every property.
	PropertyRule() *Rule

	// Configure is invoked exactly once during the hub's configure phase,
	// in registration order, on the hub's dispatch goroutine. It may
	// perform blocking I/O; while it runs, all dispatch is stalled.
	Configure()

	// Reset is invoked on demand via Hub.ResetAdapters, e.g. on user
	// logout. It does not unregister the adapter.
	Reset()

	// TrackEvent receives one delivered event.
	TrackEvent(e Event)

	// TrackProperty receives one delivered property update.
	TrackProperty(p Property)
}

// AdapterDefaults supplies default implementations for the optional parts
// of the Adapter interface: rules and name are plain fields defaulting to
// "deliver everything" and the concrete type name, Configure and Reset are
// no-ops. TrackEvent and TrackProperty are deliberately not provided, so
// embedders must implement them.
//
//	type mixpanelAdapter struct {
//	    beacon.AdapterDefaults
//	    client *mixpanel.Client
//	}
type AdapterDefaults struct {
	// AdapterName overrides the name reported in delivery logs.
	AdapterName string

	// Events filters which event kinds this adapter receives.
	Events *Rule

	// Properties filters which property kinds this adapter receives.
	Properties *Rule
}

// Name returns the configured adapter name, possibly empty.
func (d AdapterDefaults) Name() string { return d.AdapterName }

// EventRule returns the configured event rule, possibly nil.
func (d AdapterDefaults) EventRule() *Rule { return d.Events }

// PropertyRule returns the configured property rule, possibly nil.
func (d AdapterDefaults) PropertyRule() *Rule { return d.Properties }

// Configure is a no-op.
func (d AdapterDefaults) Configure() {}

// Reset is a no-op.
func (d AdapterDefaults) Reset() {}

// adapterName resolves the display name for an adapter, falling back to the
// concrete type name when none is set.
func adapterName(a Adapter) string {
	if name := a.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%T", a)
}
