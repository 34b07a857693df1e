package beacon

import (
	"time"

	"github.com/google/uuid"
)

// Kind is the type tag attached to every event and property kind at
// definition time. Tracking rules match against kinds, never against
// individual instances: two kinds with identical payload shapes are still
// distinct as long as their tags differ.
//
// Applications typically declare kinds as package-level constants:
//
//	const (
//	    KindSignup   beacon.Kind = "signup"
//	    KindCheckout beacon.Kind = "checkout"
//	)
type Kind string

// Name is the structured identifier of an event. It renders as
// "Object: Action - Label", or "Object: Action" when Label is empty.
type Name struct {
	Object string
	Action string
	Label  string
}

// String renders the name in its canonical form.
func (n Name) String() string {
	if n.Label == "" {
		return n.Object + ": " + n.Action
	}
	return n.Object + ": " + n.Action + " - " + n.Label
}

// Event is a discrete, timestamped occurrence delivered to adapters.
// Events are immutable once created: the Meta map is copied on construction
// and must not be mutated afterwards.
type Event struct {
	// Kind is the event's type tag, evaluated by adapter event rules.
	Kind Kind

	// Name is the structured identifier rendered in delivery logs.
	Name Name

	// Meta carries arbitrary key/value payload data. May be empty.
	Meta map[string]any

	// ID uniquely identifies this event instance.
	ID string

	// Time is when the event was created.
	Time time.Time
}

// NewEvent creates an event with no metadata.
func NewEvent(kind Kind, name Name) Event {
	return NewEventWithMeta(kind, name, nil)
}

// NewEventWithMeta creates an event carrying the given metadata.
// The map is copied so later mutation by the caller does not leak into
// already-tracked events.
func NewEventWithMeta(kind Kind, name Name, meta map[string]any) Event {
	var copied map[string]any
	if len(meta) > 0 {
		copied = make(map[string]any, len(meta))
		for k, v := range meta {
			copied[k] = v
		}
	}
	return Event{
		Kind: kind,
		Name: name,
		Meta: copied,
		ID:   uuid.NewString(),
		Time: time.Now(),
	}
}
