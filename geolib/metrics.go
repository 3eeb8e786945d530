package geolib

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "geolocator"

// Metrics holds Prometheus collectors updated by Resolver. A nil
// *Metrics is valid and simply does nothing.
type Metrics struct {
	Lookups   *prometheus.CounterVec // labels: database={city,asn}, outcome={found,not_found,error}
	Cache     *prometheus.CounterVec // labels: result={hit,miss}
	BatchSize prometheus.Histogram
}

func (m *Metrics) observeLookup(database string, err error) {
	if m == nil {
		return
	}

	outcome := "found"

	switch {
	case errors.Is(err, ErrAddressNotFound):
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	}

	m.Lookups.WithLabelValues(database, outcome).Inc()
}

func (m *Metrics) observeCache(hit bool) {
	if m == nil {
		return
	}

	if hit {
		m.Cache.WithLabelValues("hit").Inc()
	} else {
		m.Cache.WithLabelValues("miss").Inc()
	}
}

func (m *Metrics) observeBatch(size int) {
	if m == nil {
		return
	}

	m.BatchSize.Observe(float64(size))
}

// NewMetrics creates collectors and registers them with a given
// registerer. Pass prometheus.DefaultRegisterer to expose them with
// promhttp.Handler.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lookups_total",
			Help:      "Database lookups by database and outcome.",
		}, []string{"database", "outcome"}),
		Cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_total",
			Help:      "Resolver cache lookups by result.",
		}, []string{"result"}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "batch_size",
			Help:      "Number of identifiers per batch lookup.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}

	registerer.MustRegister(m.Lookups, m.Cache, m.BatchSize)

	return m
}
