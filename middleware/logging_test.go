package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/andrewpaige1/wisdom-compass-api/metrics"
)

func TestRequestLoggerAndMetrics(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	reg := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(RequestLogger(zap.New(core)))
	r.Use(Metrics(metrics.NewRecorder(reg)))
	r.Get("/api/journal/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/plain", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/api/journal/1", "/api/journal/2", "/plain"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.FilterMessage("request").All()
	assert.Len(t, entries, 3)
	assert.Equal(t, int64(http.StatusTeapot), entries[0].ContextMap()["status"])
	assert.Equal(t, int64(2), entries[2].ContextMap()["bytes"])

	count, err := testutil.GatherAndCount(reg, "http_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}
