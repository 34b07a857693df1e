package beacon

import "errors"

// Sentinel errors for the hub.
var (
	// ErrHubClosed is returned when operations are attempted on a closed hub.
	ErrHubClosed = errors.New("hub is closed")

	// ErrAlreadyConfigured is returned when ConfigureAdapters is called on
	// a hub whose configure phase has already run.
	ErrAlreadyConfigured = errors.New("adapters are already configured")

	// ErrNilAdapter is returned when a nil adapter is registered.
	ErrNilAdapter = errors.New("adapter cannot be nil")
)
