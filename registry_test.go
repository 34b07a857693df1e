package beacon

import "testing"

func TestAdapterRegistry_Replace(t *testing.T) {
	r := newAdapterRegistry()
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}

	a := &namedAdapter{AdapterDefaults: AdapterDefaults{AdapterName: "a"}}
	b := &namedAdapter{AdapterDefaults: AdapterDefaults{AdapterName: "b"}}

	r.Replace([]Adapter{a, b})
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	// Wholesale replacement discards the previous list.
	c := &namedAdapter{AdapterDefaults: AdapterDefaults{AdapterName: "c"}}
	r.Replace([]Adapter{c})

	names := r.Names()
	if len(names) != 1 || names[0] != "c" {
		t.Errorf("Names() = %v, want [c]", names)
	}
}

func TestAdapterRegistry_PreservesOrderAndDuplicates(t *testing.T) {
	r := newAdapterRegistry()
	a := &namedAdapter{AdapterDefaults: AdapterDefaults{AdapterName: "a"}}
	b := &namedAdapter{AdapterDefaults: AdapterDefaults{AdapterName: "b"}}

	// No de-duplication: the same adapter may appear twice.
	r.Replace([]Adapter{b, a, b})

	names := r.Names()
	want := []string{"b", "a", "b"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestAdapterRegistry_SnapshotIsolation(t *testing.T) {
	r := newAdapterRegistry()
	a := &namedAdapter{AdapterDefaults: AdapterDefaults{AdapterName: "a"}}
	r.Replace([]Adapter{a})

	snap := r.Snapshot()
	r.Replace(nil)

	if len(snap) != 1 {
		t.Errorf("snapshot changed after Replace: %v", snap)
	}
	if r.Snapshot() != nil {
		t.Errorf("Snapshot() = %v, want nil after clearing", r.Snapshot())
	}
}
