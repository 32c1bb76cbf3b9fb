package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveRequest("GET", "/api/quotes/daily", "200", 15*time.Millisecond)
	r.ObserveRequest("GET", "/api/quotes/daily", "200", 5*time.Millisecond)
	r.IncDailyQuote(SourcePreference)
	r.IncDailyQuote(SourceSession)
	r.IncDailyQuote(SourceSession)
	r.IncPin()
	r.IncReminder("goal")
	r.AddSessionsSwept(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.requestsTotal.WithLabelValues("GET", "/api/quotes/daily", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.dailyQuotesTotal.WithLabelValues(SourcePreference)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.dailyQuotesTotal.WithLabelValues(SourceSession)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.pinsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.remindersTotal.WithLabelValues("goal")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.sessionsSwept))

	count, err := testutil.GatherAndCount(reg, "http_request_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewRecorderSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewRecorder(prometheus.NewRegistry())
		NewRecorder(prometheus.NewRegistry())
	})
}
