package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-account-service/internal/logger"
)

// withLogging emits one access-log entry per account request. Together with
// the trace_id and remote_addr fields carried by the request-scoped logger
// this gives an audit trail of who touched which account endpoint.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Str("user_agent", r.UserAgent()).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
