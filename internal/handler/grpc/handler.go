// Package grpc exposes the notes bridge as the gRPC service
// "notes.v1.Bridge". Messages are the plain models types carried by the JSON
// codec in [utils.JSONCodec], so no generated protobuf code is involved.
package grpc

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// BridgeServer is the server API of the notes.v1.Bridge service.
type BridgeServer interface {
	GetNotes(ctx context.Context, req *models.GetNotesRequest) (*models.GetNotesResponse, error)
	SaveNotes(ctx context.Context, req *models.SaveNotesRequest) (*models.SaveNotesResponse, error)
}

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	// services provides access to all application business operations.
	services  *service.Services
	validator validators.Validator

	limiter *rate.Limiter
	hashKey string

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. cfg carries the rate limit shared with
// the HTTP transport; a non-empty hashKey makes save requests carry a
// valid HMAC.
func NewHandler(services *service.Services, cfg config.Server, hashKey string, logger *logger.Logger) *Handler {
	h := &Handler{
		services:  services,
		validator: validators.NewNotesValidator(),
		hashKey:   hashKey,
		logger:    logger,
	}

	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = max(1, int(cfg.RateLimit))
		}
		h.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	logger.Debug().Msg("gRPC handler created")
	return h
}
