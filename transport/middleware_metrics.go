package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics collects request counts and latencies for one service.
type HTTPMetrics struct {
	serviceName     string
	gatherer        prometheus.Gatherer
	requestCounter  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the collectors on reg. Each service owns its own registry.
func NewHTTPMetrics(serviceName string, reg *prometheus.Registry) *HTTPMetrics {
	m := &HTTPMetrics{
		serviceName: serviceName,
		gatherer:    reg,
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
	}
	reg.MustRegister(m.requestCounter, m.requestDuration)
	return m
}

// Middleware labels requests with the route template so ids do not explode cardinality.
func (m *HTTPMetrics) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := wrapResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					path = tpl
				}
			}
			status := strconv.Itoa(wrapped.statusCode)

			m.requestCounter.WithLabelValues(m.serviceName, r.Method, path, status).Inc()
			m.requestDuration.WithLabelValues(m.serviceName, r.Method, path, status).Observe(time.Since(start).Seconds())
		})
	}
}

// Handler serves the Prometheus exposition format.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
