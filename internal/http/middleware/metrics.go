// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file exposes Prometheus instrumentation for HTTP traffic. Label
// cardinality is bounded:
//
//   - method: HTTP method verb
//   - path:   the registered Gin route (e.g. /api/v1/rides/:id/insights), or
//     "unmatched" when no route matched
//   - status: numeric status code as a string
//   - result: the query outcome reported by the handler (success, empty,
//     failure), or "none" for responses that carry no query result
//
// Query failures are served as HTTP 200, so the result label is the only
// place an upstream outage shows up in request metrics.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ctxResultKey = "query_result"

	// UnmatchedPath is the path label used when no route matched.
	UnmatchedPath = "unmatched"
	// ResultNone is the result label for responses without a query result.
	ResultNone = "none"
)

var (
	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status", "result"},
	)

	// Status and result are omitted to keep histogram cardinality low.
	httpLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)

	httpRespSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_size_bytes",
			Help: "Size of HTTP responses in bytes.",
			Buckets: []float64{
				200, 500, 1 << 10, 2 << 10, 5 << 10, // 200B..5KiB
				10 << 10, 25 << 10, 50 << 10, // 10..50KiB
				100 << 10, 250 << 10, 500 << 10, // 100..500KiB
				1 << 20, 2 << 20, 5 << 20, // 1..5MiB
			},
		},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(httpReqs, httpLat, httpInflight, httpRespSize)
}

// SetResult records the query outcome of the current request for the
// result label. The last call wins.
func SetResult(c *gin.Context, result string) {
	c.Set(ctxResultKey, result)
}

// Metrics returns a Gin middleware that instruments requests with Prometheus:
// http_requests_total(method, path, status, result),
// http_request_duration_seconds(method, path), http_requests_inflight and
// http_response_size_bytes(method, path). Responses that report no size
// (hijacked connections) are not observed in the size histogram.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInflight.Inc()
		defer httpInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = UnmatchedPath
		}
		method := c.Request.Method
		result := c.GetString(ctxResultKey)
		if result == "" {
			result = ResultNone
		}

		httpReqs.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status()), result).Inc()
		httpLat.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		if size := c.Writer.Size(); size >= 0 {
			httpRespSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}
