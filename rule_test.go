package beacon

import "testing"

func TestRule_Allows(t *testing.T) {
	tests := []struct {
		name string
		rule *Rule
		kind Kind
		want bool
	}{
		{
			name: "nil rule delivers everything",
			rule: nil,
			kind: "anything",
			want: true,
		},
		{
			name: "allow includes member",
			rule: NewAllowRule("signup", "checkout"),
			kind: "signup",
			want: true,
		},
		{
			name: "allow excludes non-member",
			rule: NewAllowRule("signup", "checkout"),
			kind: "pageview",
			want: false,
		},
		{
			name: "prohibit excludes member",
			rule: NewProhibitRule("signup"),
			kind: "signup",
			want: false,
		},
		{
			name: "prohibit includes non-member",
			rule: NewProhibitRule("signup"),
			kind: "checkout",
			want: true,
		},
		{
			name: "empty allow delivers nothing",
			rule: NewAllowRule(),
			kind: "signup",
			want: false,
		},
		{
			name: "empty prohibit delivers everything",
			rule: NewProhibitRule(),
			kind: "signup",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Allows(tt.kind); got != tt.want {
				t.Errorf("Allows(%q) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestRule_MatchesByTagNotShape(t *testing.T) {
	// Two kinds with identical payload shapes are still distinct tags.
	rule := NewAllowRule("test_event")

	if !rule.Allows("test_event") {
		t.Error("expected tagged kind to be allowed")
	}
	if rule.Allows("test_event_2") {
		t.Error("expected different tag to be excluded despite identical shape")
	}
}

func TestRule_Accessors(t *testing.T) {
	rule := NewProhibitRule("b", "a")

	if rule.Polarity() != Prohibit {
		t.Errorf("Polarity() = %v, want Prohibit", rule.Polarity())
	}
	if !rule.Contains("a") {
		t.Error("expected Contains(a) to be true")
	}
	if rule.Contains("c") {
		t.Error("expected Contains(c) to be false")
	}

	kinds := rule.Kinds()
	if len(kinds) != 2 || kinds[0] != "a" || kinds[1] != "b" {
		t.Errorf("Kinds() = %v, want [a b]", kinds)
	}
}

func TestRule_NilAccessors(t *testing.T) {
	var rule *Rule

	if rule.Polarity() != Allow {
		t.Errorf("nil Polarity() = %v, want Allow", rule.Polarity())
	}
	if rule.Contains("a") {
		t.Error("nil Contains should be false")
	}
	if rule.Kinds() != nil {
		t.Errorf("nil Kinds() = %v, want nil", rule.Kinds())
	}
}

func TestPolarity_String(t *testing.T) {
	if Allow.String() != "allow" {
		t.Errorf("Allow.String() = %q", Allow.String())
	}
	if Prohibit.String() != "prohibit" {
		t.Errorf("Prohibit.String() = %q", Prohibit.String())
	}
	if Polarity(99).String() != "unknown" {
		t.Errorf("Polarity(99).String() = %q", Polarity(99).String())
	}
}
