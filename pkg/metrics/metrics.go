package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	// HTTP-слой
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Движок занятости аудиторий
	RoomsLoaded      prometheus.Gauge
	BookingsOccupied prometheus.Gauge
	RequestsAccepted prometheus.Counter
	RequestsRejected *prometheus.CounterVec
}

// New регистрирует коллекторы в default registry и возвращает их
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		RoomsLoaded: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "rooms_loaded",
			Help:        "Number of rooms loaded from the source data",
			ConstLabels: constLabels,
		}),

		BookingsOccupied: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "bookings_occupied_total",
			Help:        "Number of bookings currently held in the occupancy stores",
			ConstLabels: constLabels,
		}),

		RequestsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "booking_requests_accepted_total",
			Help:        "Number of ad-hoc booking requests accepted",
			ConstLabels: constLabels,
		}),

		RequestsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_requests_rejected_total",
			Help:        "Number of ad-hoc booking requests rejected, by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),
	}
}

// RecordRequestAccepted учитывает принятую заявку
func (m *Metrics) RecordRequestAccepted() {
	m.RequestsAccepted.Inc()
}

// RecordRequestRejected учитывает отклоненную заявку с причиной
func (m *Metrics) RecordRequestRejected(reason string) {
	m.RequestsRejected.WithLabelValues(reason).Inc()
}
