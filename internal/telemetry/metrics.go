package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	CarrierErrors   *prometheus.CounterVec
	QuotesByTier    *prometheus.CounterVec
	Fallbacks       *prometheus.CounterVec
}

// NewMetrics creates metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on /metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "allura_shipping_requests_total",
				Help: "Total number of requests by operation, carrier, and status",
			},
			[]string{"operation", "carrier", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "allura_shipping_request_duration_seconds",
				Help:    "Request duration in seconds by operation and carrier",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "carrier"},
		),
		CarrierErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "allura_shipping_carrier_errors_total",
				Help: "Total carrier errors by carrier and error code",
			},
			[]string{"carrier", "error_type"},
		),
		QuotesByTier: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "allura_shipping_quotes_total",
				Help: "Estimates served by distance tier",
			},
			[]string{"tier"},
		),
		Fallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "allura_shipping_fallbacks_total",
				Help: "Estimates answered with the generic fallback quotes",
			},
			[]string{"carrier"},
		),
	}
}

// RecordRequest records a request metric.
func (m *Metrics) RecordRequest(operation, carrier, status string, duration float64) {
	m.RequestsTotal.WithLabelValues(operation, carrier, status).Inc()
	m.RequestDuration.WithLabelValues(operation, carrier).Observe(duration)
}

// RecordError records a carrier error metric.
func (m *Metrics) RecordError(carrier, errorType string) {
	m.CarrierErrors.WithLabelValues(carrier, errorType).Inc()
}

// RecordTier counts one estimate for a destination tier.
func (m *Metrics) RecordTier(tier string) {
	m.QuotesByTier.WithLabelValues(tier).Inc()
}

// RecordFallback counts one degraded estimate.
func (m *Metrics) RecordFallback(carrier string) {
	m.Fallbacks.WithLabelValues(carrier).Inc()
}
