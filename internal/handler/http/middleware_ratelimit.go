package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// withRateLimit rejects requests beyond the configured rate with 429. It
// passes everything through when no limiter is configured.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			logger.FromRequest(r).Warn().Str("func", "*Handler.withRateLimit").
				Str("uri", r.RequestURI).
				Msg("request rate limited")
			utils.WriteError(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
