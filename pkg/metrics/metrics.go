package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса.
// Регистрируется в DefaultRegisterer, отдается через promhttp.Handler().
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbPoolOpen  *prometheus.GaugeVec
	dbPoolInUse *prometheus.GaugeVec
	dbPoolIdle  *prometheus.GaugeVec

	bookingsCreatedTotal   *prometheus.CounterVec
	bookingsMovedTotal     *prometheus.CounterVec
	bookingStatusTotal     *prometheus.CounterVec
	paymentsRecordedTotal  *prometheus.CounterVec
	dailyClosesTotal       *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			ConstLabels: constLabels,
		}, []string{"operation"}),

		dbPoolOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{}),

		dbPoolInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Number of in-use database connections",
			ConstLabels: constLabels,
		}, []string{}),

		dbPoolIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{}),

		bookingsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of bookings created",
			ConstLabels: constLabels,
		}, []string{}),

		bookingsMovedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_moved_total",
			Help:        "Total number of room reassignments",
			ConstLabels: constLabels,
		}, []string{}),

		bookingStatusTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_status_transitions_total",
			Help:        "Total number of booking status transitions",
			ConstLabels: constLabels,
		}, []string{"to_status"}),

		paymentsRecordedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "payments_recorded_total",
			Help:        "Total number of payments recorded",
			ConstLabels: constLabels,
		}, []string{"method"}),

		dailyClosesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "daily_closes_total",
			Help:        "Total number of daily close snapshots created",
			ConstLabels: constLabels,
		}, []string{}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueriesTotal.WithLabelValues(operation).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	m.dbPoolOpen.WithLabelValues().Set(float64(open))
	m.dbPoolInUse.WithLabelValues().Set(float64(inUse))
	m.dbPoolIdle.WithLabelValues().Set(float64(idle))
}

// IncBookingCreated инкрементирует счетчик созданных бронирований
func (m *Metrics) IncBookingCreated() {
	m.bookingsCreatedTotal.WithLabelValues().Inc()
}

// IncBookingMoved инкрементирует счетчик переселений
func (m *Metrics) IncBookingMoved() {
	m.bookingsMovedTotal.WithLabelValues().Inc()
}

// IncBookingStatusTransition инкрементирует счетчик переходов статусов
func (m *Metrics) IncBookingStatusTransition(toStatus string) {
	m.bookingStatusTotal.WithLabelValues(toStatus).Inc()
}

// IncPaymentRecorded инкрементирует счетчик платежей
func (m *Metrics) IncPaymentRecorded(method string) {
	m.paymentsRecordedTotal.WithLabelValues(method).Inc()
}

// IncDailyClose инкрементирует счетчик дневных закрытий
func (m *Metrics) IncDailyClose() {
	m.dailyClosesTotal.WithLabelValues().Inc()
}
