// Package observability регистрирует метрики Prometheus сервиса реестра.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Значения лейбла result для счётчиков операций.
const (
	ResultOK                  = "ok"
	ResultNotFound            = "not_found"
	ResultAlreadySignedUp     = "already_signed_up"
	ResultFull                = "full"
	ResultParticipantNotFound = "participant_not_found"
)

var (
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster_service",
		Name:      "signups_total",
		Help:      "Signup attempts partitioned by outcome.",
	}, []string{"result"})

	unregistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster_service",
		Name:      "unregistrations_total",
		Help:      "Unregistration attempts partitioned by outcome.",
	}, []string{"result"})

	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "roster_service",
		Name:      "participants",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "roster_service",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method, route pattern and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(signupsTotal, unregistrationsTotal, participantsGauge, httpRequestDuration)
}

// RecordSignup увеличивает счётчик попыток записи.
func RecordSignup(result string) {
	signupsTotal.WithLabelValues(result).Inc()
}

// RecordUnregistration увеличивает счётчик попыток отписки.
func RecordUnregistration(result string) {
	unregistrationsTotal.WithLabelValues(result).Inc()
}

// SetParticipants выставляет текущее число участников занятия.
func SetParticipants(activity string, n int) {
	participantsGauge.WithLabelValues(activity).Set(float64(n))
}

// ObserveHTTPRequest фиксирует длительность обработанного запроса.
func ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
