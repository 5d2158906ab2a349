// Package prometheus registers and serves the engine's operational metrics.
package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "genapp"

// Metrics bundles every metric the engine emits.  A nil *Metrics is a valid
// no-op handle so offline tooling can skip metrics wiring entirely.
type Metrics struct {
	registry *prometheus.Registry

	decisionsTotal     *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
	planDuration       prometheus.Histogram
	holidayFeedErrors  prometheus.Counter
	httpRequestsTotal  *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// NewMetrics builds a Metrics set on a private registry, including the
// standard process and Go runtime collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		decisionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decisions_total",
			Help:      "Judicial decisions processed, by decision option.",
		}, []string{"option"}),
		notificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification dispatch attempts, by target role and outcome.",
		}, []string{"role", "outcome"}),
		planDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_duration_seconds",
			Help:      "Time spent planning notifications for one decision.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
		holidayFeedErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holiday_feed_errors_total",
			Help:      "Failed bank-holiday feed fetches.",
		}),
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, path, and status code.",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and path.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "path"}),
	}
}

// Handler serves the metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveDecision counts one processed judicial decision.
func (m *Metrics) ObserveDecision(option string) {
	if m == nil {
		return
	}
	m.decisionsTotal.WithLabelValues(option).Inc()
}

// ObserveNotification counts one dispatch attempt.
func (m *Metrics) ObserveNotification(role, outcome string) {
	if m == nil {
		return
	}
	m.notificationsTotal.WithLabelValues(role, outcome).Inc()
}

// ObservePlanDuration records the wall time of one planner run.
func (m *Metrics) ObservePlanDuration(seconds float64) {
	if m == nil {
		return
	}
	m.planDuration.Observe(seconds)
}

// ObserveHolidayFeedError counts one failed holiday-feed fetch.
func (m *Metrics) ObserveHolidayFeedError() {
	if m == nil {
		return
	}
	m.holidayFeedErrors.Inc()
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(seconds)
}
