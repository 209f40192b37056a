package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	UserMutations   *prometheus.CounterVec
	AuditLogQueries prometheus.Counter
	RequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates and registers all metrics on the default registry
func New() *Metrics {
	return newMetrics(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewWithRegistry registers all metrics on reg, which is also served by Handler
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	return newMetrics(reg, reg)
}

func newMetrics(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		UserMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "usermanagement_user_mutations_total",
			Help: "Total number of committed user mutations by action",
		}, []string{"action"}),
		AuditLogQueries: factory.NewCounter(prometheus.CounterOpts{
			Name: "usermanagement_audit_log_queries_total",
			Help: "Total number of audit trail page queries",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "usermanagement_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route", "status"}),
		gatherer: gatherer,
	}
}

// IncrementUserMutation records a committed Create, Update or Delete
func (m *Metrics) IncrementUserMutation(action string) {
	if m == nil {
		return
	}
	m.UserMutations.WithLabelValues(action).Inc()
}

// IncrementAuditLogQueries records one audit trail page query
func (m *Metrics) IncrementAuditLogQueries() {
	if m == nil {
		return
	}
	m.AuditLogQueries.Inc()
}

// ObserveRequest records the duration of a request.
// Call with time.Now() at the start of the request.
func (m *Metrics) ObserveRequest(method, route string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}

// Handler serves the registry the metrics were registered on
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
