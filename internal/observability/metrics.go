package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the service. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry          *prometheus.Registry
	requests          *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	errors            *prometheus.CounterVec
	tokensIssued      prometheus.Counter
	authRejections    *prometheus.CounterVec
	purchases         *prometheus.CounterVec
	counterIncFailure prometheus.Counter
}

// PurchaseOutcome describes what happened to the food purchase counter after
// a purchase was inserted.
type PurchaseOutcome string

const (
	PurchaseCounterUpdated PurchaseOutcome = "updated"
	// PurchaseCounterSkipped covers purchases without a foodId or naming an unknown food.
	PurchaseCounterSkipped PurchaseOutcome = "skipped"
	PurchaseCounterFailed  PurchaseOutcome = "failed"
)

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restaurant_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"path", "method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "restaurant_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restaurant_http_errors_total",
			Help: "Failed HTTP requests by route, method and error code.",
		}, []string{"path", "method", "code"}),
		tokensIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "restaurant_auth_tokens_issued_total",
			Help: "Access tokens issued.",
		}),
		authRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restaurant_auth_rejections_total",
			Help: "Requests rejected by the auth middleware or ownership guard.",
		}, []string{"reason"}),
		purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "restaurant_purchases_recorded_total",
			Help: "Purchase documents inserted, by purchase counter outcome.",
		}, []string{"counter"}),
		counterIncFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "restaurant_purchase_counter_failures_total",
			Help: "Purchases recorded whose food purchase counter could not be incremented.",
		}),
	}
	reg.MustRegister(m.requests, m.requestDuration, m.errors, m.tokensIssued, m.authRejections, m.purchases, m.counterIncFailure)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(path, method, code).Inc()
}

func (m *Metrics) RecordTokenIssued() {
	if m == nil {
		return
	}
	m.tokensIssued.Inc()
}

// RecordAuthRejection counts a refused request; reason is "missing_token",
// "invalid_token" or "forbidden".
func (m *Metrics) RecordAuthRejection(reason string) {
	if m == nil {
		return
	}
	m.authRejections.WithLabelValues(reason).Inc()
}

// RecordPurchase counts an inserted purchase. Only PurchaseCounterFailed
// counts as a counter failure.
func (m *Metrics) RecordPurchase(outcome PurchaseOutcome) {
	if m == nil {
		return
	}
	m.purchases.WithLabelValues(string(outcome)).Inc()
	if outcome == PurchaseCounterFailed {
		m.counterIncFailure.Inc()
	}
}
