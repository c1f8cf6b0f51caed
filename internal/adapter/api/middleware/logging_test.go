package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/openlot/leadhub/internal/adapter/metrics"
)

func TestLogging_CountsRequests(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewAPIMetrics()

	handler := Logging(logger, m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("OK"))
	}))

	do := func(method, path string) {
		req := httptest.NewRequest(method, path, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
	}

	do(http.MethodGet, "/health")
	do(http.MethodGet, "/health")
	do(http.MethodPost, "/missing")

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "200")); got != 2 {
		t.Errorf("expected 2 GET 200 requests counted, got %v", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodPost, "404")); got != 1 {
		t.Errorf("expected 1 POST 404 request counted, got %v", got)
	}
}

func TestLogging_NilMetrics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := Logging(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected status 204 to pass through, got %d", rr.Code)
	}
}
