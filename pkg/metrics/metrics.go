package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Метки исхода отправленных бронирований
const (
	OutcomeConfirmed = "confirmed"
	OutcomeRejected  = "rejected"
)

// Metrics хранит Prometheus-коллекторы сервиса.
// Все методы можно вызывать на nil-получателе.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	availabilityQueries *prometheus.CounterVec
	slotChecks          *prometheus.CounterVec
	bookingsSubmitted   *prometheus.CounterVec
	activeSessions      prometheus.Gauge
}

// New регистрирует коллекторы в реестре Prometheus по умолчанию
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует коллекторы в reg
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "route"}),
		availabilityQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_queries_total",
			Help:        "Availability queries by day kind",
			ConstLabels: constLabels,
		}, []string{"day_kind"}),
		slotChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_checks_total",
			Help:        "Single slot availability checks by result",
			ConstLabels: constLabels,
		}, []string{"available"}),
		bookingsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_submitted_total",
			Help:        "Submitted bookings by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "form_sessions_active",
			Help:        "Booking form sessions currently held in memory",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.availabilityQueries,
		m.slotChecks,
		m.bookingsSubmitted,
		m.activeSessions,
	)

	return m
}

// ObserveHTTPRequest учитывает завершённый HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveAvailability считает запрос доступности по типу дня (weekday, weekend, special)
func (m *Metrics) ObserveAvailability(dayKind string) {
	if m == nil {
		return
	}
	m.availabilityQueries.WithLabelValues(dayKind).Inc()
}

// ObserveSlotCheck считает проверку одного слота
func (m *Metrics) ObserveSlotCheck(available bool) {
	if m == nil {
		return
	}
	m.slotChecks.WithLabelValues(strconv.FormatBool(available)).Inc()
}

// ObserveSubmission считает отправленное бронирование по исходу
func (m *Metrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.bookingsSubmitted.WithLabelValues(outcome).Inc()
}

// SessionOpened увеличивает gauge активных сессий
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.activeSessions.Inc()
}

// SessionClosed уменьшает gauge активных сессий
func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.activeSessions.Dec()
}
