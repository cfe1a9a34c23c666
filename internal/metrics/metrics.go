// Package metrics registers and exposes Prometheus metrics for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records request-level metrics for the HTTP middleware
type Collector struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	issuesCreated   prometheus.Counter
	activityWrites  prometheus.Counter
}

// NewCollector creates a Collector with its own registry
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kig_http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kig_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		issuesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kig_issues_created_total",
			Help: "Total issues reported",
		}),
		activityWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kig_activity_entries_total",
			Help: "Total activity log entries appended",
		}),
	}
	c.registry.MustRegister(c.requestsTotal, c.requestDuration, c.issuesCreated, c.activityWrites)
	return c
}

// RecordRequest records one finished HTTP request
func (c *Collector) RecordRequest(method, route string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordIssueCreated increments the reported-issue counter
func (c *Collector) RecordIssueCreated() {
	c.issuesCreated.Inc()
}

// RecordActivityWrite increments the audit-entry counter
func (c *Collector) RecordActivityWrite() {
	c.activityWrites.Inc()
}

// Handler exposes the registry for GET /metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
