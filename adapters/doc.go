// Package adapters ships first-party reference adapters for the beacon hub.
//
// Console writes structured delivery lines through zerolog; Prometheus
// exports per-kind counters through a prometheus registry. Both double as
// working examples of the beacon.Adapter contract: embed
// beacon.AdapterDefaults, set the optional rule fields, implement
// TrackEvent and TrackProperty.
package adapters
