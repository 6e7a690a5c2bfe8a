package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/codes"
)

const namespace = "bankstream"

// Metrics holds every collector the service exports. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	gateRejections *prometheus.CounterVec
	sessionsOpen   *prometheus.GaugeVec
	sessionsTotal  *prometheus.CounterVec
	eventsAppended prometheus.Counter
	eventsSent     prometheus.Counter
	publishErrors  prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		gateRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gate_rejections_total",
				Help:      "Calls or messages rejected by an interceptor gate",
			},
			[]string{"gate", "method", "code"},
		),
		sessionsOpen: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sessions_open",
				Help:      "Streaming sessions currently open",
			},
			[]string{"method"},
		),
		sessionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_total",
				Help:      "Streaming sessions by terminal outcome",
			},
			[]string{"method", "outcome"},
		),
		eventsAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_events_appended_total",
			Help:      "Ledger events written to the outbox",
		}),
		eventsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_events_published_total",
			Help:      "Ledger events published to the broker",
		}),
		publishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_publish_errors_total",
			Help:      "Failed ledger event publish attempts",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.gateRejections,
		m.sessionsOpen,
		m.sessionsTotal,
		m.eventsAppended,
		m.eventsSent,
		m.publishErrors,
	)
	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) GateRejected(gate, method string, code codes.Code) {
	if m == nil {
		return
	}
	m.gateRejections.WithLabelValues(gate, method, code.String()).Inc()
}

func (m *Metrics) SessionOpened(method string) {
	if m == nil {
		return
	}
	m.sessionsOpen.WithLabelValues(method).Inc()
}

func (m *Metrics) SessionClosed(method, outcome string) {
	if m == nil {
		return
	}
	m.sessionsOpen.WithLabelValues(method).Dec()
	m.sessionsTotal.WithLabelValues(method, outcome).Inc()
}

func (m *Metrics) EventAppended() {
	if m == nil {
		return
	}
	m.eventsAppended.Inc()
}

func (m *Metrics) EventPublished(n int) {
	if m == nil {
		return
	}
	m.eventsSent.Add(float64(n))
}

func (m *Metrics) PublishFailed() {
	if m == nil {
		return
	}
	m.publishErrors.Inc()
}
