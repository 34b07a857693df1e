package adapters

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/dkelly-dev/beacon"
)

// Console is an adapter that writes every delivered event and property as
// a structured zerolog line. Useful during development and as the smallest
// complete example of the adapter contract.
//
// Set the embedded AdapterDefaults fields to attach rules or override the
// name before registering the adapter.
type Console struct {
	beacon.AdapterDefaults
	logger zerolog.Logger
}

// NewConsole creates a console adapter writing to w. A nil writer defaults
// to stdout.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stdout
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().Timestamp().Logger()
	return &Console{
		AdapterDefaults: beacon.AdapterDefaults{AdapterName: "console"},
		logger:          logger,
	}
}

// TrackEvent implements beacon.Adapter.
func (c *Console) TrackEvent(e beacon.Event) {
	ev := c.logger.Info().
		Str("kind", string(e.Kind)).
		Str("object", e.Name.Object).
		Str("action", e.Name.Action)
	if e.Name.Label != "" {
		ev = ev.Str("label", e.Name.Label)
	}
	if len(e.Meta) > 0 {
		ev = ev.Fields(e.Meta)
	}
	ev.Msg("event")
}

// TrackProperty implements beacon.Adapter.
func (c *Console) TrackProperty(p beacon.Property) {
	c.logger.Info().
		Str("kind", string(p.Kind)).
		Str("key", p.Key).
		Str("value", p.Value.String()).
		Msg("property")
}
