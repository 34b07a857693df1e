package adapters

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dkelly-dev/beacon"
)

// Prometheus is an adapter that counts delivered events and properties in
// a prometheus registry. Collector registration happens in Configure, on
// the hub's dispatch goroutine, matching the adapter lifecycle.
type Prometheus struct {
	beacon.AdapterDefaults

	registerer prometheus.Registerer
	events     *prometheus.CounterVec
	properties *prometheus.CounterVec
}

// NewPrometheus creates a prometheus adapter registering its collectors
// with reg. A nil registerer defaults to prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Prometheus{
		AdapterDefaults: beacon.AdapterDefaults{AdapterName: "prometheus"},
		registerer:      reg,
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "beacon",
				Name:      "events_total",
				Help:      "Total number of events delivered to the prometheus adapter",
			},
			[]string{"kind", "object", "action"},
		),
		properties: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "beacon",
				Name:      "properties_total",
				Help:      "Total number of property updates delivered to the prometheus adapter",
			},
			[]string{"kind", "key"},
		),
	}
}

// Configure registers the collectors. Duplicate registration is tolerated
// so a hub restart in tests does not panic; other registration errors are
// swallowed because adapter failures must not reach the hub.
func (p *Prometheus) Configure() {
	for _, c := range []prometheus.Collector{p.events, p.properties} {
		if err := p.registerer.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				continue
			}
		}
	}
}

// Reset zeroes all counters, e.g. on user logout.
func (p *Prometheus) Reset() {
	p.events.Reset()
	p.properties.Reset()
}

// TrackEvent implements beacon.Adapter.
func (p *Prometheus) TrackEvent(e beacon.Event) {
	p.events.WithLabelValues(string(e.Kind), e.Name.Object, e.Name.Action).Inc()
}

// TrackProperty implements beacon.Adapter.
func (p *Prometheus) TrackProperty(pr beacon.Property) {
	p.properties.WithLabelValues(string(pr.Kind), pr.Key).Inc()
}
