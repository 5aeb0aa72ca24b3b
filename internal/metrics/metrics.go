package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics exposes counters for origin decisions and served requests.
type HTTPMetrics struct {
	originDecisions *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestLatency  *prometheus.HistogramVec
	gatherer        prometheus.Gatherer
}

// NewHTTPMetrics registers the collectors on reg. A nil reg uses a fresh
// registry with the Go and process collectors.
func NewHTTPMetrics(reg *prometheus.Registry) *HTTPMetrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	m := &HTTPMetrics{
		originDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashfi",
			Subsystem: "cors",
			Name:      "decisions_total",
			Help:      "Origin access decisions by outcome and matching rule",
		}, []string{"decision", "reason"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dashfi",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method and status",
		}, []string{"method", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dashfi",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		gatherer: reg,
	}
	reg.MustRegister(m.originDecisions, m.requestsTotal, m.requestLatency)
	return m
}

func (m *HTTPMetrics) ObserveOrigin(decision, reason string) {
	if m == nil {
		return
	}
	m.originDecisions.WithLabelValues(decision, reason).Inc()
}

func (m *HTTPMetrics) ObserveRequest(method, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, status).Inc()
	m.requestLatency.WithLabelValues(method).Observe(seconds)
}

// Handler serves the registry in the Prometheus text format.
func (m *HTTPMetrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
