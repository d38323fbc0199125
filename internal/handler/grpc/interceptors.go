package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

const traceIDMetadataKey = "x-trace-id"

// Interceptors returns the unary interceptor chain of the bridge server:
// trace id and access logging first, then the rate limiter.
func (h *Handler) Interceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{h.withTraceID, h.withLogging, h.withRateLimit}
}

func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	ctx = l.WithContext(utils.WithTraceID(ctx, traceID))
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDMetadataKey, traceID))

	return handler(ctx, req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) withRateLimit(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if h.limiter != nil && !h.limiter.Allow() {
		return nil, status.Error(codes.ResourceExhausted, app.MsgTooManyRequests)
	}
	return handler(ctx, req)
}
