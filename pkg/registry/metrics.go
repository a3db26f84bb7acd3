package registry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes registry validation counters. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Validations    *prometheus.CounterVec
	LookupDuration *prometheus.HistogramVec
	CacheEvents    *prometheus.CounterVec
}

// NewMetrics registers the registry metrics with reg. A nil reg uses the
// default Prometheus registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rutkit_registry_validations_total",
			Help: "Registry validations by validator name and outcome",
		}, []string{"validator", "outcome"}), // outcome: accepted, rejected, error

		LookupDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rutkit_registry_lookup_duration_seconds",
			Help:    "Duration of registry lookups by validator name",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"validator"}),

		CacheEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rutkit_registry_cache_events_total",
			Help: "Registry cache hits, misses and errors",
		}, []string{"result"}), // result: hit, negative_hit, miss, error
	}
}

// ObserveValidation records one Validate call.
func (m *Metrics) ObserveValidation(validator, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Validations.WithLabelValues(validator, outcome).Inc()
	m.LookupDuration.WithLabelValues(validator).Observe(d.Seconds())
}

// IncCache records a cache event.
func (m *Metrics) IncCache(result string) {
	if m != nil {
		m.CacheEvents.WithLabelValues(result).Inc()
	}
}
