package middleware

import (
	"net/http"
	"time"

	"github.com/skillsenselab/fintrust/logger"
	"github.com/skillsenselab/fintrust/observability"
)

// RequestLogger returns middleware that logs every request with method,
// path, status code, and duration, and records the request metrics.
// Health-check paths are silently skipped. Bodies and query strings of
// credential-bearing routes never reach the log.
func RequestLogger(log *logger.Logger, metrics *observability.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)
			duration := time.Since(start)

			metrics.RecordRequest(r.Context(), r.Method, r.URL.Path, sw.status, duration)

			fields := map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      sw.status,
				"duration_ms": duration.Milliseconds(),
			}
			if id := r.Header.Get(requestIDHeader); id != "" {
				fields[logger.FieldRequestID] = id
			}

			switch {
			case sw.status >= 500:
				log.Error("Request completed", fields)
			case sw.status >= 400:
				log.Warn("Request completed", fields)
			default:
				log.Info("Request completed", fields)
			}
		})
	}
}
