package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBQueryErrors      *prometheus.CounterVec
	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge

	AppointmentsCreated   *prometheus.CounterVec
	AppointmentsCancelled *prometheus.CounterVec
	AssistantReplies      *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в reg
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections to the database",
			ConstLabels: constLabels,
		}),

		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),

		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}),

		AppointmentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_created_total",
			Help:        "Total number of persisted appointments",
			ConstLabels: constLabels,
		}, []string{"service_id"}),

		AppointmentsCancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_cancelled_total",
			Help:        "Total number of cancelled appointments",
			ConstLabels: constLabels,
		}, []string{"actor"}),

		AssistantReplies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "assistant_replies_total",
			Help:        "Total number of assistant replies by intent",
			ConstLabels: constLabels,
		}, []string{"intent"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.AppointmentsCreated,
		m.AppointmentsCancelled,
		m.AssistantReplies,
	)

	return m
}

// IncAppointmentCreated nil-safe счетчик созданных записей
func (m *Metrics) IncAppointmentCreated(serviceID string) {
	if m == nil {
		return
	}
	m.AppointmentsCreated.WithLabelValues(serviceID).Inc()
}

// IncAppointmentCancelled nil-safe счетчик отмен (actor: customer, admin)
func (m *Metrics) IncAppointmentCancelled(actor string) {
	if m == nil {
		return
	}
	m.AppointmentsCancelled.WithLabelValues(actor).Inc()
}

// IncAssistantReply nil-safe счетчик ответов ассистента
func (m *Metrics) IncAssistantReply(intent string) {
	if m == nil {
		return
	}
	m.AssistantReplies.WithLabelValues(intent).Inc()
}
