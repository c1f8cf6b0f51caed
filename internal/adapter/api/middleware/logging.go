package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/openlot/leadhub/internal/adapter/metrics"
)

// statusRecorder captures the status code and response size so the access
// log and the request counter see what was actually sent.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

// Logging writes one access log line per request and counts the request
// in m by method and status. m may be nil.
func Logging(logger *slog.Logger, m *metrics.APIMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sr, r)

			if m != nil {
				m.RequestsTotal.WithLabelValues(r.Method, strconv.Itoa(sr.status)).Inc()
			}

			logger.Info("handled request",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"status", sr.status,
				"bytes", sr.bytes,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
