package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-account-sync/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// withLogging writes one access log line per request with the outcome status
// and the number of bytes sent.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Int("size", ww.BytesWritten()).
			Send()
	})
}
