package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-inbox-pilot/internal/logger"
)

// withLogging emits one access-log line per request. The entry goes through
// the request-scoped logger, so it carries the trace ID attached by
// withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method
		remoteAddr := r.RemoteAddr

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Str("remote_addr", remoteAddr).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
