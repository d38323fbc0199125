package http

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// limiter is nil when rate limiting is disabled.
	limiter        *rate.Limiter
	requestTimeout time.Duration
	hashKey        string

	logger *logger.Logger
}

// NewHandler creates the HTTP bridge handler. A positive cfg.RateLimit
// enables the token-bucket limiter. A non-empty hashKey makes save
// requests carry a valid HMAC.
func NewHandler(services *service.Services, cfg config.Server, hashKey string, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		validator:      validators.NewNotesValidator(),
		requestTimeout: cfg.RequestTimeout,
		hashKey:        hashKey,
		logger:         logger,
	}

	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = max(1, int(cfg.RateLimit))
		}
		h.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	logger.Info().Msg("http handler created")
	return h
}
