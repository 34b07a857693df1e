// Package beacon is an analytics-forwarding hub: application code emits
// strongly-typed events and properties once, and the hub fans each out to
// zero or more registered analytics adapters.
//
// # Architecture
//
//	caller ──► Hub ──► lifecycle check ──► postponement queue (unconfigured)
//	                        │
//	                        ▼ (configured)
//	                 per-adapter rule match ──► adapter.TrackEvent /
//	                        │                   adapter.TrackProperty
//	                        ▼
//	            property update events re-enter event dispatch
//
// Adapters wrap concrete analytics backends (vendor SDKs, logs, metrics).
// Each adapter may carry an allow or prohibit rule over event kinds and a
// second one over property kinds; adapters without rules receive
// everything. See the adapters subpackage for shipped reference adapters.
//
// # Lifecycle
//
// A hub starts unconfigured. Events tracked and properties updated before
// ConfigureAdapters runs are postponed, then replayed exactly once in
// submission order after every adapter's Configure has returned:
//
//	hub := beacon.New(beacon.WithLogLevel(beacon.LogInfo))
//	defer hub.Close(context.Background())
//
//	hub.Track(beacon.NewEvent(KindSignup, beacon.Name{Object: "Account", Action: "Created"}))
//
//	// Nothing delivered yet; StartTracking configures and flushes.
//	if err := hub.StartTracking(consoleAdapter, mixpanelAdapter); err != nil {
//	    log.Fatal(err)
//	}
//
// # Properties and update events
//
// A property models a named attribute of the current user or session. It
// may carry update events that fire on every Update, independent of which
// adapters accepted the property itself:
//
//	p := beacon.NewProperty(KindEmail, "email", beacon.StringValue(addr),
//	    beacon.NewEvent(KindEmailChanged, beacon.Name{Object: "User", Action: "Email Changed"}))
//	hub.Update(p)
//
// # Concurrency
//
// Track and Update may be called from any goroutine. The hub serializes
// all dispatch onto one internal goroutine: calls from a single goroutine
// reach adapters in program order, and one call's full adapter fan-out
// never interleaves with another's. Adapter methods therefore need no
// internal locking against the hub, but a blocking adapter stalls all
// subsequent dispatch.
//
// Dispatch is fire-and-forget: Track and Update return once the work is
// accepted, adapter failures are invisible to callers, and panicking
// adapters are isolated so the remaining adapters still receive delivery.
package beacon
