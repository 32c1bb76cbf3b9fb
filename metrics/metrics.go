// Package metrics records Prometheus metrics for HTTP traffic and quote activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Daily quote sources.
const (
	SourcePreference = "preference"
	SourceFallback   = "fallback"
	SourceSession    = "session"
)

// Recorder owns every collector the service exports.
type Recorder struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	dailyQuotesTotal *prometheus.CounterVec
	pinsTotal        prometheus.Counter
	remindersTotal   *prometheus.CounterVec
	sessionsSwept    prometheus.Counter
}

// NewRecorder registers the collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route pattern and status",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		dailyQuotesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wisdom_daily_quotes_total",
				Help: "Daily quotes served, by how they were selected",
			},
			[]string{"source"},
		),
		pinsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "wisdom_quote_pins_total",
			Help: "Quotes pinned by users",
		}),
		remindersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wisdom_reminders_created_total",
				Help: "Reminders created, by reminder type",
			},
			[]string{"type"},
		),
		sessionsSwept: factory.NewCounter(prometheus.CounterOpts{
			Name: "wisdom_sessions_swept_total",
			Help: "Expired sessions removed by the sweeper",
		}),
	}
}

// ObserveRequest records a finished HTTP request.
func (r *Recorder) ObserveRequest(method, route, status string, duration time.Duration) {
	r.requestsTotal.WithLabelValues(method, route, status).Inc()
	r.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (r *Recorder) IncDailyQuote(source string) {
	r.dailyQuotesTotal.WithLabelValues(source).Inc()
}

func (r *Recorder) IncPin() {
	r.pinsTotal.Inc()
}

func (r *Recorder) IncReminder(reminderType string) {
	r.remindersTotal.WithLabelValues(reminderType).Inc()
}

func (r *Recorder) AddSessionsSwept(n int64) {
	r.sessionsSwept.Add(float64(n))
}

