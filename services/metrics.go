package services

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService owns the Prometheus registry and the domain metrics for
// the site backend. HTTP-level metrics are registered into the same
// registry by the server middleware.
type MetricsService struct {
	registry *prometheus.Registry

	filterQueries *prometheus.CounterVec
	chatTurns     *prometheus.CounterVec
	escalations   prometheus.Counter
	inquiries     prometheus.Counter
	typingDelay   prometheus.Histogram
}

// NewMetricsService creates the registry and registers all domain metrics
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &MetricsService{
		registry: registry,
		filterQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_filter_queries_total",
			Help: "Catalog filter evaluations by collection.",
		}, []string{"collection"}),
		chatTurns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "chat_turns_total",
			Help: "Chat user turns by the responder rule that answered them.",
		}, []string{"rule"}),
		escalations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chat_escalations_total",
			Help: "Chat sessions handed off to human support.",
		}),
		inquiries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inquiries_submitted_total",
			Help: "Contact-form inquiries accepted.",
		}),
		typingDelay: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "chat_typing_delay_seconds",
			Help:    "Simulated typing delay chosen per bot reply.",
			Buckets: []float64{0.4, 0.8, 1.0, 1.2, 1.4, 1.6, 2.0},
		}),
	}

	registry.MustRegister(m.filterQueries, m.chatTurns, m.escalations, m.inquiries, m.typingDelay)
	return m
}

// Registry exposes the registry for middleware recorders
func (m *MetricsService) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the exposition endpoint handler
func (m *MetricsService) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordFilterQuery counts one catalog filter evaluation
func (m *MetricsService) RecordFilterQuery(collection string) {
	m.filterQueries.WithLabelValues(collection).Inc()
}

// RecordChatTurn counts one answered user turn
func (m *MetricsService) RecordChatTurn(rule string) {
	m.chatTurns.WithLabelValues(rule).Inc()
}

// RecordEscalation counts one handoff to human support
func (m *MetricsService) RecordEscalation() {
	m.escalations.Inc()
}

// RecordInquiry counts one accepted inquiry
func (m *MetricsService) RecordInquiry() {
	m.inquiries.Inc()
}

// RecordTypingDelay observes the delay chosen for a bot reply
func (m *MetricsService) RecordTypingDelay(d time.Duration) {
	m.typingDelay.Observe(d.Seconds())
}
