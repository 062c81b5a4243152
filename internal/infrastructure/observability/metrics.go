package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the back office.
//
// Every method is safe on a nil *Metrics so tests and tools can skip them.
type Metrics struct {
	// Registry owns these metrics and is served on /metrics.
	Registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	externalErrors  *prometheus.CounterVec
	distanceQuotes  *prometheus.CounterVec
	conversions     *prometheus.CounterVec
}

// NewMetrics registers all metrics in a private registry, so calling it more
// than once (tests) does not panic with duplicate collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_http_requests_total",
				Help: "Total HTTP requests by route and status.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backoffice_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_external_errors_total",
				Help: "Total errors from external providers.",
			},
			[]string{"service"},
		),
		distanceQuotes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_distance_quotes_total",
				Help: "Travel quotes computed, by outcome.",
			},
			[]string{"outcome"},
		),
		conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backoffice_budget_conversions_total",
				Help: "Budget to job conversions, by outcome.",
			},
			[]string{"outcome"},
		),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

func (m *Metrics) IncrExternalError(service string) {
	if m == nil {
		return
	}
	m.externalErrors.WithLabelValues(service).Inc()
}

func (m *Metrics) IncrDistanceQuote(outcome string) {
	if m == nil {
		return
	}
	m.distanceQuotes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrConversion(outcome string) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(outcome).Inc()
}
