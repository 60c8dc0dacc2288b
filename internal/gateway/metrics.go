package gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus collectors for backend calls.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	breakerOpens    prometheus.Counter
}

// NewMetrics creates and registers backend-call metrics.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "vitrine"
	}

	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "backend_requests_total",
				Help:      "Total number of requests issued to the commerce backend",
			},
			[]string{"op", "method", "outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "backend_request_duration_seconds",
				Help:      "Commerce backend request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"op", "method", "outcome"},
		),
		breakerOpens: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "backend_breaker_opens_total",
				Help:      "Number of times the backend circuit breaker opened",
			},
		),
	}

	prometheus.MustRegister(m.requestsTotal, m.requestDuration, m.breakerOpens)
	return m
}

// observe records one backend call. Outcome is the HTTP status class or
// "network" when no response was received.
func (m *Metrics) observe(op, method, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(op, method, outcome).Inc()
	m.requestDuration.WithLabelValues(op, method, outcome).Observe(duration.Seconds())
}

func (m *Metrics) breakerOpened() {
	if m == nil {
		return
	}
	m.breakerOpens.Inc()
}
