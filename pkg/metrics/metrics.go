package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics контейнер prometheus-метрик сервиса
type Metrics struct {
	service string

	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbPoolOpenConns  prometheus.Gauge
	dbPoolInUseConns prometheus.Gauge
	dbPoolIdleConns  prometheus.Gauge
}

// New создает и регистрирует метрики сервиса
func New(service string) *Metrics {
	m := &Metrics{
		service: service,

		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: prometheus.Labels{"service": service},
		}, []string{"method", "path", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: prometheus.Labels{"service": service},
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		httpRequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Current number of in-flight HTTP requests",
			ConstLabels: prometheus.Labels{"service": service},
		}),

		dbQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: prometheus.Labels{"service": service},
		}, []string{"operation", "status"}),

		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: prometheus.Labels{"service": service},
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		dbPoolOpenConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Number of open connections in the pool",
			ConstLabels: prometheus.Labels{"service": service},
		}),

		dbPoolInUseConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: prometheus.Labels{"service": service},
		}),

		dbPoolIdleConns: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Number of idle connections in the pool",
			ConstLabels: prometheus.Labels{"service": service},
		}),
	}

	prometheus.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.httpRequestsInFlight,
		m.dbQueriesTotal,
		m.dbQueryDuration,
		m.dbPoolOpenConns,
		m.dbPoolInUseConns,
		m.dbPoolIdleConns,
	)

	return m
}

// IncHTTPRequest инкрементирует счетчик HTTP запросов
func (m *Metrics) IncHTTPRequest(method, path, status string) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// ObserveHTTPRequest записывает длительность HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, seconds float64) {
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// IncHTTPInFlight инкрементирует счетчик запросов в обработке
func (m *Metrics) IncHTTPInFlight() {
	m.httpRequestsInFlight.Inc()
}

// DecHTTPInFlight декрементирует счетчик запросов в обработке
func (m *Metrics) DecHTTPInFlight() {
	m.httpRequestsInFlight.Dec()
}

// ObserveDBQuery записывает метрики выполненного SQL запроса
func (m *Metrics) ObserveDBQuery(operation string, seconds float64, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// SetDBPoolStats записывает статистику connection pool
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbPoolOpenConns.Set(float64(stats.OpenConnections))
	m.dbPoolInUseConns.Set(float64(stats.InUse))
	m.dbPoolIdleConns.Set(float64(stats.Idle))
}
