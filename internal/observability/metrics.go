package observability

import (
	"sync"
	"time"

	"github.com/hedisam/cachedactor/lookup"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var (
	registerOnce sync.Once

	lookupEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cachedactor",
			Subsystem: "lookup",
			Name:      "events_total",
			Help:      "Lookup cache events by registry name and event.",
		},
		[]string{"name", "event"},
	)
	registryCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cachedactor",
			Subsystem: "registry",
			Name:      "calls_total",
			Help:      "Registry round trips by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)
	registryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cachedactor",
			Subsystem: "registry",
			Name:      "call_duration_seconds",
			Help:      "Registry round trip duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(lookupEvents, registryCalls, registryDuration)
	})
}

// RecordLookup is a lookup.Observer.
func RecordLookup(name string, ev lookup.Event) {
	RegisterMetrics()
	lookupEvents.WithLabelValues(name, ev.String()).Inc()
	log.Debug().Str("name", name).Str("event", ev.String()).Msg("lookup cache")
}

func RecordRegistryCall(op, outcome string, duration time.Duration) {
	RegisterMetrics()
	registryCalls.WithLabelValues(op, outcome).Inc()
	registryDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// LookupEvents returns the counter for name and ev.
func LookupEvents(name string, ev lookup.Event) prometheus.Counter {
	return lookupEvents.WithLabelValues(name, ev.String())
}

// RegistryCalls returns the counter for op and outcome.
func RegistryCalls(op, outcome string) prometheus.Counter {
	return registryCalls.WithLabelValues(op, outcome)
}
