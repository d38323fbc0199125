package adapter

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// GRPCBridge is the gRPC implementation of [Bridge]. Messages travel as
// JSON through [utils.JSONCodec].
type GRPCBridge struct {
	conn *grpc.ClientConn

	hashKey string
	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCBridge opens a client connection to adapterCfg.GRPCAddress. The
// host listens on loopback only, so the channel uses insecure credentials.
func NewGRPCBridge(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (*GRPCBridge, error) {
	if adapterCfg.GRPCAddress == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: empty address")
	}

	conn, err := grpc.NewClient(adapterCfg.GRPCAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(utils.JSONCodec{})),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating grpc client: %w", err)
	}

	return &GRPCBridge{
		conn:    conn,
		hashKey: appCfg.HashKey,
		timeout: adapterCfg.RequestTimeout,
		logger:  logger,
	}, nil
}

// GetNotes implements [Bridge].
func (g *GRPCBridge) GetNotes(ctx context.Context) ([]models.Note, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	var resp models.GetNotesResponse
	if err := g.conn.Invoke(ctx, models.BridgeMethodPath(models.BridgeGetNotesMethod), &models.GetNotesRequest{}, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingNotes, mapGRPCError(err))
	}

	if resp.Notes == nil {
		resp.Notes = []models.Note{}
	}
	return resp.Notes, nil
}

// SaveNotes implements [Bridge].
func (g *GRPCBridge) SaveNotes(ctx context.Context, notes []models.Note) (bool, error) {
	req, err := newSaveNotesRequest(notes, g.hashKey)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrSavingNotes, err)
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	var resp models.SaveNotesResponse
	if err = g.conn.Invoke(ctx, models.BridgeMethodPath(models.BridgeSaveNotesMethod), &req, &resp); err != nil {
		return false, fmt.Errorf("%w: %w", ErrSavingNotes, mapGRPCError(err))
	}
	if !resp.Saved {
		return false, fmt.Errorf("%w: %w", ErrSavingNotes, ErrSaveNotConfirmed)
	}

	return true, nil
}

// Close tears down the client connection.
func (g *GRPCBridge) Close() error {
	return g.conn.Close()
}

func (g *GRPCBridge) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}
