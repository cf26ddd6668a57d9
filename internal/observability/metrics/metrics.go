package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes application-level prometheus instruments.
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	billsRendered  *prometheus.CounterVec
	renderDuration prometheus.Histogram
}

// New registers the application instruments on the given registry.
func New(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taxsarthi_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "taxsarthi_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		billsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taxsarthi_gst_bills_rendered_total",
			Help: "GST bill exports by outcome.",
		}, []string{"outcome"}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "taxsarthi_gst_bill_render_duration_seconds",
			Help:    "Time spent rendering a GST bill PDF.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}

	for _, c := range []prometheus.Collector{m.httpRequests, m.httpDuration, m.billsRendered, m.renderDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordBillRender records one export attempt.
func (m *Metrics) RecordBillRender(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.billsRendered.WithLabelValues(strings.TrimSpace(outcome)).Inc()
	m.renderDuration.Observe(elapsed.Seconds())
}

// GinMiddleware records request counts and latency per route.
func GinMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}
