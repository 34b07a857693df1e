package beacon

import "sync"

// adapterRegistry holds the current ordered list of registered adapters.
// The list is replaced wholesale, never mutated incrementally, and no
// de-duplication is performed: registering an adapter twice yields
// duplicate delivery.
//
// The registry holds non-owning references; adapter instances belong to the
// caller that registered them.
type adapterRegistry struct {
	mu       sync.RWMutex
	adapters []Adapter
}

func newAdapterRegistry() *adapterRegistry {
	return &adapterRegistry{}
}

// Replace swaps the entire adapter list atomically.
func (r *adapterRegistry) Replace(adapters []Adapter) {
	copied := make([]Adapter, len(adapters))
	copy(copied, adapters)

	r.mu.Lock()
	r.adapters = copied
	r.mu.Unlock()
}

// Snapshot returns the registered adapters in registration order.
// The returned slice is a copy and safe to iterate while the registry is
// being replaced.
func (r *adapterRegistry) Snapshot() []Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.adapters) == 0 {
		return nil
	}
	out := make([]Adapter, len(r.adapters))
	copy(out, r.adapters)
	return out
}

// Len returns the number of registered adapters.
func (r *adapterRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.adapters)
}

// Names returns the display names of the registered adapters in
// registration order.
func (r *adapterRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.adapters) == 0 {
		return nil
	}
	names := make([]string, len(r.adapters))
	for i, a := range r.adapters {
		names[i] = adapterName(a)
	}
	return names
}
