// Package metrics объявляет Prometheus-метрики доски активностей.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы вызова API записи.
const (
	OutcomeOK        = "ok"
	OutcomeStatus    = "status_error"
	OutcomeTransport = "transport_error"
)

var (
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_api_requests_total",
			Help: "Total number of calls to the sign-up API",
		},
		[]string{"operation", "outcome"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "board_api_request_duration_seconds",
			Help:    "Duration of calls to the sign-up API in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	BannerMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_banner_messages_total",
			Help: "Total number of banner messages shown to visitors",
		},
		[]string{"kind"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "board_active_sessions",
			Help: "Number of visitor sessions held in memory",
		},
	)
)

// ObserveAPI фиксирует один вызов API: счётчик по исходу и длительность.
func ObserveAPI(operation, outcome string, started time.Time) {
	APIRequests.WithLabelValues(operation, outcome).Inc()
	APIRequestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
