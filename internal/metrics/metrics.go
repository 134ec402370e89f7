// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors used by the HTTP middleware and the recipe
// service.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// ViewPersistFailures counts view increments that were returned to the
	// caller but could not be committed, labelled by error kind.
	ViewPersistFailures *prometheus.CounterVec
	RecipesCreated      prometheus.Counter
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipes_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "recipes_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "recipes_http_requests_in_flight",
				Help: "Current number of HTTP requests being processed",
			},
		),
		ViewPersistFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipes_view_persist_failures_total",
				Help: "Total number of recipe view increments that failed to commit",
			},
			[]string{"kind"},
		),
		RecipesCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "recipes_created_total",
				Help: "Total number of recipes created through the API",
			},
		),
	}
}
