package beacon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// LogLevel controls the hub's delivery log.
type LogLevel int32

const (
	// LogNone disables delivery logging. This is the default.
	LogNone LogLevel = iota

	// LogInfo emits one line per delivered event or property.
	LogInfo

	// LogVerbose additionally dumps event metadata and property values.
	LogVerbose
)

// String returns a human-readable level name.
func (l LogLevel) String() string {
	switch l {
	case LogNone:
		return "none"
	case LogInfo:
		return "info"
	case LogVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a string into a LogLevel. Unrecognized input falls
// back to LogNone.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "info", "INFO":
		return LogInfo
	case "verbose", "VERBOSE":
		return LogVerbose
	default:
		return LogNone
	}
}

// LogSink receives one formatted delivery log line per call. Sinks run on
// the hub's dispatch goroutine and should return quickly.
type LogSink func(msg string)

// defaultLogSink writes delivery lines through a zerolog console logger on
// stderr.
func defaultLogSink() LogSink {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	return func(msg string) {
		logger.Info().Msg(msg)
	}
}

// formatEventLine renders one delivery log line for an event.
func formatEventLine(adapter string, e Event, level LogLevel) string {
	line := "[" + adapter + "] " + e.Name.String()
	if level >= LogVerbose {
		line += " " + formatMeta(e.Meta)
	}
	return line
}

// formatPropertyLine renders one delivery log line for a property.
func formatPropertyLine(adapter string, p Property, level LogLevel) string {
	line := "[" + adapter + "] " + p.Key
	if level >= LogVerbose {
		line += " = " + p.Value.String()
	}
	return line
}

// formatMeta renders event metadata as "{k=v, ...}" with sorted keys, or
// "(no meta)" when empty.
func formatMeta(meta map[string]any) string {
	if len(meta) == 0 {
		return "(no meta)"
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, meta[k])
	}
	b.WriteByte('}')
	return b.String()
}
