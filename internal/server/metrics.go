package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP metrics are package-level so that several servers in one process
// share a single registration.
var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fftmul_active_requests",
		Help: "Number of HTTP requests currently being served.",
	})
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fftmul_requests_total",
		Help: "Total HTTP requests by path and status code.",
	}, []string{"path", "code"})
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fftmul_request_duration_seconds",
		Help:    "HTTP request latency by path.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
	}, []string{"path"})
)

// Metrics exposes the server's Prometheus collectors.
type Metrics struct {
	handler http.Handler
}

// NewMetrics returns a Metrics serving the default Prometheus registry.
func NewMetrics() *Metrics {
	// Touch the vector so the family is listed before the first request.
	requestsTotal.WithLabelValues("/metrics", "200").Add(0)
	return &Metrics{handler: promhttp.Handler()}
}

// IncrementActiveRequests marks a request as started.
func (m *Metrics) IncrementActiveRequests() { activeRequests.Inc() }

// DecrementActiveRequests marks a request as finished.
func (m *Metrics) DecrementActiveRequests() { activeRequests.Dec() }

// ObserveRequest records one completed request.
func (m *Metrics) ObserveRequest(path string, code int, seconds float64) {
	requestsTotal.WithLabelValues(path, strconv.Itoa(code)).Inc()
	requestDuration.WithLabelValues(path).Observe(seconds)
}

// WritePrometheus writes the metrics in the Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
