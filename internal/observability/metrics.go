package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the portal. A nil *Metrics is a no-op.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Errors          *prometheus.CounterVec
	StoreMutations  *prometheus.CounterVec
	Employees       prometheus.Gauge
	FormSessions    prometheus.Gauge
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "HTTP requests handled, by route, method and status.",
		}, []string{"path", "method", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_http_errors_total",
			Help: "Requests that ended with a domain error, by code.",
		}, []string{"path", "method", "code"}),
		StoreMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_store_mutations_total",
			Help: "Employee store mutations by operation and result.",
		}, []string{"operation", "result"}),
		Employees: factory.NewGauge(prometheus.GaugeOpts{
			Name: "portal_store_employees",
			Help: "Employees currently held by the store.",
		}),
		FormSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "portal_form_sessions",
			Help: "Open employee form sessions.",
		}),
	}

	for _, op := range []string{"add", "update", "delete"} {
		m.StoreMutations.WithLabelValues(op, "success")
		m.StoreMutations.WithLabelValues(op, "rejected")
	}

	return m
}

// RecordRequest counts a finished request.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError counts a request that failed with the given code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.Errors.WithLabelValues(path, method, code).Inc()
}

// ObserveMutation counts a store mutation.
func (m *Metrics) ObserveMutation(operation, result string) {
	if m == nil {
		return
	}
	m.StoreMutations.WithLabelValues(operation, result).Inc()
}

// SetEmployees records the current collection size.
func (m *Metrics) SetEmployees(n int) {
	if m == nil {
		return
	}
	m.Employees.Set(float64(n))
}

// SetFormSessions records the number of open form sessions.
func (m *Metrics) SetFormSessions(n int) {
	if m == nil {
		return
	}
	m.FormSessions.Set(float64(n))
}
