package beacon

// PanicHook is called when an adapter call panics. The panic has already
// been recovered; the hook is informational only.
type PanicHook func(adapter string, recovered any, stack []byte)

// HubOption configures a Hub.
type HubOption func(*hubConfig)

// hubConfig contains configuration for a hub.
type hubConfig struct {
	// logLevel is the initial delivery log level.
	logLevel LogLevel

	// logSink receives formatted delivery log lines.
	logSink LogSink

	// panicHook observes recovered adapter panics.
	panicHook PanicHook
}

// defaultHubConfig returns the default hub configuration.
func defaultHubConfig() hubConfig {
	return hubConfig{
		logLevel: LogNone,
		logSink:  defaultLogSink(),
	}
}

// WithLogLevel sets the initial delivery log level.
func WithLogLevel(level LogLevel) HubOption {
	return func(c *hubConfig) {
		c.logLevel = level
	}
}

// WithLogSink replaces the delivery log sink.
func WithLogSink(sink LogSink) HubOption {
	return func(c *hubConfig) {
		if sink != nil {
			c.logSink = sink
		}
	}
}

// WithPanicHook sets the hook invoked after a recovered adapter panic.
func WithPanicHook(hook PanicHook) HubOption {
	return func(c *hubConfig) {
		c.panicHook = hook
	}
}
