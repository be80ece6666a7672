// Package metrics собирает Prometheus метрики отправок.
package metrics

import (
	"time"

	"github.com/avc-dev/shortener-frontend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shortener_frontend"

// Metrics регистрирует счетчики и гистограммы в переданном реестре
type Metrics struct {
	submissions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	copies      *prometheus.CounterVec
}

// New создает метрики и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// исход каждой отправки: success, business_error, transport_error
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Количество отправок по исходу",
		}, []string{"outcome"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Время ответа API сокращения",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		}, []string{"outcome"}),

		copies: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clipboard_copies_total",
			Help:      "Количество копирований короткой ссылки в буфер обмена",
		}, []string{"result"}),
	}
}

// ObserveSubmission учитывает завершенную отправку
func (m *Metrics) ObserveSubmission(kind model.OutcomeKind, d time.Duration) {
	m.submissions.WithLabelValues(kind.String()).Inc()
	m.duration.WithLabelValues(kind.String()).Observe(d.Seconds())
}

// ObserveCopy учитывает попытку копирования в буфер обмена
func (m *Metrics) ObserveCopy(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.copies.WithLabelValues(result).Inc()
}
