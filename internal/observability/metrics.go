// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// HTTP metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Rejection metrics
	RejectionsTotal *prometheus.CounterVec

	// Builder and signing metrics
	InstructionsBuilt  *prometheus.CounterVec
	KeypairsGenerated  prometheus.Counter
	MessagesSigned     prometheus.Counter
	VerificationsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates a new Metrics instance registered on its own registry,
// together with the Go runtime and process collectors.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "solana_instruction_api"
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route and status code",
		}, []string{"route", "code"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		}, []string{"route"}),
		RequestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		}),

		RejectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "rejections_total",
			Help:      "Total number of rejected requests by route and rejection kind",
		}, []string{"route", "kind"}),

		InstructionsBuilt: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "builder",
			Name:      "instructions_built_total",
			Help:      "Total number of instruction descriptors built by kind",
		}, []string{"kind"}),
		KeypairsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signing",
			Name:      "keypairs_generated_total",
			Help:      "Total number of keypairs generated",
		}),
		MessagesSigned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signing",
			Name:      "messages_signed_total",
			Help:      "Total number of messages signed",
		}),
		VerificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signing",
			Name:      "verifications_total",
			Help:      "Total number of signature verifications by result",
		}, []string{"result"}),

		registry: reg,
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest records a served HTTP request.
func (m *Metrics) RecordRequest(route, code string, seconds float64) {
	m.RequestsTotal.WithLabelValues(route, code).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(seconds)
}

// RecordRejection records a request rejected with the given kind.
func (m *Metrics) RecordRejection(route, kind string) {
	m.RejectionsTotal.WithLabelValues(route, kind).Inc()
}

// RecordInstruction records a built instruction descriptor.
func (m *Metrics) RecordInstruction(kind string) {
	m.InstructionsBuilt.WithLabelValues(kind).Inc()
}

// RecordKeypair increments the keypairs generated counter.
func (m *Metrics) RecordKeypair() {
	m.KeypairsGenerated.Inc()
}

// RecordSignature increments the messages signed counter.
func (m *Metrics) RecordSignature() {
	m.MessagesSigned.Inc()
}

// RecordVerification records a verification outcome.
func (m *Metrics) RecordVerification(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	m.VerificationsTotal.WithLabelValues(result).Inc()
}
