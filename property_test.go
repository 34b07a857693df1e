package beacon

import "testing"

func TestValue_Constructors(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		wantKind ValueKind
		wantAny  any
		wantStr  string
	}{
		{"none", NoValue(), ValueNone, nil, "none"},
		{"string", StringValue("pro"), ValueString, "pro", `"pro"`},
		{"empty string", StringValue(""), ValueString, "", `""`},
		{"int", IntValue(42), ValueInt, int64(42), "42"},
		{"bool", BoolValue(true), ValueBool, true, "true"},
		{"float", FloatValue(3.5), ValueFloat, 3.5, "3.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got, tt.wantKind)
			}
			if got := tt.value.Any(); got != tt.wantAny {
				t.Errorf("Any() = %v, want %v", got, tt.wantAny)
			}
			if got := tt.value.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestValue_ZeroIsNone(t *testing.T) {
	var v Value
	if !v.IsNone() {
		t.Error("zero Value should be none")
	}
	if StringValue("x").IsNone() {
		t.Error("string Value should not be none")
	}
}

func TestValueKind_String(t *testing.T) {
	tests := []struct {
		kind ValueKind
		want string
	}{
		{ValueNone, "none"},
		{ValueString, "string"},
		{ValueInt, "int"},
		{ValueBool, "bool"},
		{ValueFloat, "float"},
		{ValueKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ValueKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNewProperty(t *testing.T) {
	p := NewProperty("plan", "plan", StringValue("pro"))

	if p.Kind != "plan" {
		t.Errorf("Kind = %q, want plan", p.Kind)
	}
	if p.Key != "plan" {
		t.Errorf("Key = %q, want plan", p.Key)
	}
	if p.UpdateEvents() != nil {
		t.Errorf("UpdateEvents() = %v, want nil", p.UpdateEvents())
	}
}

func TestProperty_UpdateEventsOrderAndCopy(t *testing.T) {
	first := NewEvent("a", Name{Object: "O", Action: "First"})
	second := NewEvent("b", Name{Object: "O", Action: "Second"})

	p := NewProperty("plan", "plan", StringValue("pro"), first, second)

	got := p.UpdateEvents()
	if len(got) != 2 {
		t.Fatalf("len(UpdateEvents()) = %d, want 2", len(got))
	}
	if got[0].Kind != "a" || got[1].Kind != "b" {
		t.Errorf("update events out of order: %v, %v", got[0].Kind, got[1].Kind)
	}

	// Mutating the returned slice must not affect the property.
	got[0] = got[1]
	again := p.UpdateEvents()
	if again[0].Kind != "a" {
		t.Error("mutation of returned slice leaked into property")
	}
}

func TestNewProperty_CopiesInputSlice(t *testing.T) {
	events := []Event{NewEvent("a", Name{Object: "O", Action: "A"})}
	p := NewProperty("k", "key", NoValue(), events...)

	events[0] = NewEvent("b", Name{Object: "O", Action: "B"})
	if p.UpdateEvents()[0].Kind != "a" {
		t.Error("caller mutation leaked into property")
	}
}
