package beacon

import "strconv"

// ValueKind discriminates the payload of a Value.
type ValueKind int

const (
	// ValueNone marks a property with no trackable value.
	ValueNone ValueKind = iota

	// ValueString marks a string value.
	ValueString

	// ValueInt marks an integer value.
	ValueInt

	// ValueBool marks a boolean value.
	ValueBool

	// ValueFloat marks a floating-point value.
	ValueFloat
)

// String returns a human-readable kind name.
func (k ValueKind) String() string {
	switch k {
	case ValueNone:
		return "none"
	case ValueString:
		return "string"
	case ValueInt:
		return "int"
	case ValueBool:
		return "bool"
	case ValueFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Value is the typed trackable value carried by a property. The zero Value
// has kind ValueNone.
type Value struct {
	kind ValueKind
	str  string
	num  int64
	flag bool
	real float64
}

// NoValue returns a value of kind ValueNone.
func NoValue() Value { return Value{} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: ValueString, str: s} }

// IntValue wraps an integer.
func IntValue(i int64) Value { return Value{kind: ValueInt, num: i} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: ValueBool, flag: b} }

// FloatValue wraps a float.
func FloatValue(f float64) Value { return Value{kind: ValueFloat, real: f} }

// Kind returns the value's discriminant.
func (v Value) Kind() ValueKind { return v.kind }

// IsNone reports whether the value carries no payload.
func (v Value) IsNone() bool { return v.kind == ValueNone }

// Any returns the payload as an untyped value, or nil for ValueNone.
func (v Value) Any() any {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueInt:
		return v.num
	case ValueBool:
		return v.flag
	case ValueFloat:
		return v.real
	default:
		return nil
	}
}

// String renders the value for logs. Strings are quoted to keep empty
// strings distinguishable from ValueNone.
func (v Value) String() string {
	switch v.kind {
	case ValueString:
		return strconv.Quote(v.str)
	case ValueInt:
		return strconv.FormatInt(v.num, 10)
	case ValueBool:
		return strconv.FormatBool(v.flag)
	case ValueFloat:
		return strconv.FormatFloat(v.real, 'g', -1, 64)
	default:
		return "none"
	}
}

// Property is a named attribute value associated with the current user or
// session. A property may carry an ordered list of update events which the
// hub dispatches as a side effect of every Update call, independent of
// which adapters accepted the property itself.
//
// Properties are immutable once created.
type Property struct {
	// Kind is the property's type tag, evaluated by adapter property rules.
	Kind Kind

	// Key is the property's plain string identifier.
	Key string

	// Value is the typed trackable value.
	Value Value

	updates []Event
}

// NewProperty creates a property. The update events, if any, are emitted in
// the given order on every Update of this property.
func NewProperty(kind Kind, key string, value Value, updateEvents ...Event) Property {
	var updates []Event
	if len(updateEvents) > 0 {
		updates = make([]Event, len(updateEvents))
		copy(updates, updateEvents)
	}
	return Property{
		Kind:    kind,
		Key:     key,
		Value:   value,
		updates: updates,
	}
}

// UpdateEvents returns a copy of the property's update events in the order
// they will be dispatched.
func (p Property) UpdateEvents() []Event {
	if len(p.updates) == 0 {
		return nil
	}
	out := make([]Event, len(p.updates))
	copy(out, p.updates)
	return out
}
