package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
// Каждый экземпляр держит собственный registry, поэтому New можно вызывать повторно (например, в тестах)
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	backendRequestsTotal   *prometheus.CounterVec
	backendRequestDuration *prometheus.HistogramVec

	sweepActionsTotal *prometheus.CounterVec
	windowEntries     *prometheus.GaugeVec
}

// New создает и регистрирует метрики с префиксом serviceName
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests handled",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		backendRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "backend_requests_total",
			Help:        "Total number of calls to the working hours backend",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		backendRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "backend_request_duration_seconds",
			Help:        "Working hours backend call latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		sweepActionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "schedule_sweep_actions_total",
			Help:        "Create/delete actions issued by the schedule window maintainer",
			ConstLabels: constLabels,
		}, []string{"policy", "action", "outcome"}),
		windowEntries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "schedule_window_entries",
			Help:        "Number of working hours entries in the current window",
			ConstLabels: constLabels,
		}, []string{"tenant"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.backendRequestsTotal,
		m.backendRequestDuration,
		m.sweepActionsTotal,
		m.windowEntries,
	)

	return m
}

// Handler http.Handler для endpoint-а /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry нужен тестам для чтения значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBackendCall учитывает вызов бэкенда рабочих часов
func (m *Metrics) ObserveBackendCall(operation, status string, duration time.Duration) {
	m.backendRequestsTotal.WithLabelValues(operation, status).Inc()
	m.backendRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordSweepAction учитывает действие сопровождения окна (create/delete/copy_forward)
func (m *Metrics) RecordSweepAction(policy, action, outcome string) {
	m.sweepActionsTotal.WithLabelValues(policy, action, outcome).Inc()
}

// SetWindowEntries фиксирует размер окна для тенанта после обновления
func (m *Metrics) SetWindowEntries(tenantID string, count int) {
	m.windowEntries.WithLabelValues(tenantID).Set(float64(count))
}
