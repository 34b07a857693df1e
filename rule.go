package beacon

import "sort"

// Polarity determines how a rule's kind set is interpreted.
type Polarity int

const (
	// Allow delivers only the kinds contained in the rule's set.
	Allow Polarity = iota

	// Prohibit delivers every kind except those in the rule's set.
	Prohibit
)

// String returns a human-readable polarity name.
func (p Polarity) String() string {
	switch p {
	case Allow:
		return "allow"
	case Prohibit:
		return "prohibit"
	default:
		return "unknown"
	}
}

// Rule restricts which event or property kinds an adapter receives.
// A nil *Rule delivers everything; adapters without filtering needs simply
// leave their rules unset.
//
// The edge cases are intentional: an Allow rule with an empty set delivers
// nothing, a Prohibit rule with an empty set delivers everything.
type Rule struct {
	polarity Polarity
	kinds    map[Kind]struct{}
}

// NewAllowRule creates a rule that delivers only the given kinds.
func NewAllowRule(kinds ...Kind) *Rule {
	return newRule(Allow, kinds)
}

// NewProhibitRule creates a rule that delivers everything except the given kinds.
func NewProhibitRule(kinds ...Kind) *Rule {
	return newRule(Prohibit, kinds)
}

func newRule(polarity Polarity, kinds []Kind) *Rule {
	set := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return &Rule{polarity: polarity, kinds: set}
}

// Polarity returns the rule's polarity.
func (r *Rule) Polarity() Polarity {
	if r == nil {
		return Allow
	}
	return r.polarity
}

// Contains reports whether the kind is a member of the rule's set.
func (r *Rule) Contains(kind Kind) bool {
	if r == nil {
		return false
	}
	_, ok := r.kinds[kind]
	return ok
}

// Kinds returns the rule's kind set in sorted order.
func (r *Rule) Kinds() []Kind {
	if r == nil || len(r.kinds) == 0 {
		return nil
	}
	out := make([]Kind, 0, len(r.kinds))
	for k := range r.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Allows reports whether an item with the given kind should be delivered.
// A nil rule allows everything. An unknown kind falls through to the
// non-matching branch: excluded under Allow, included under Prohibit.
func (r *Rule) Allows(kind Kind) bool {
	if r == nil {
		return true
	}
	_, included := r.kinds[kind]
	return included == (r.polarity == Allow)
}
