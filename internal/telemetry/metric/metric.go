// Package metric provides Prometheus metrics for the task service.
//
// It exposes request counters and latency histograms plus gauges for
// registered users and stored tasks. Metrics are served at /metrics in
// Prometheus exposition format.
package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics on a private Prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	// RequestsTotal counts HTTP requests by method, route and status.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration tracks HTTP request latency by method and route.
	RequestDuration *prometheus.HistogramVec
}

// NewRegistry creates a metrics registry with all collectors registered.
//
// usersTotal and tasksTotal are sampled at scrape time; pass nil to
// skip the corresponding gauge.
func NewRegistry(usersTotal, tasksTotal func() float64) *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tms",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tms",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(r.RequestsTotal, r.RequestDuration)
	reg.MustRegister(collectors.NewGoCollector())

	if usersTotal != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "tms",
			Name:      "users_total",
			Help:      "Number of registered users.",
		}, usersTotal))
	}
	if tasksTotal != nil {
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "tms",
			Name:      "tasks_total",
			Help:      "Number of stored tasks.",
		}, tasksTotal))
	}

	return r
}

// ObserveRequest records one completed HTTP request.
func (r *Registry) ObserveRequest(method, route, status string, duration time.Duration) {
	r.RequestsTotal.WithLabelValues(method, route, status).Inc()
	r.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
