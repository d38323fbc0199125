package grpc

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// GetNotes implements [BridgeServer].
func (h *Handler) GetNotes(ctx context.Context, _ *models.GetNotesRequest) (*models.GetNotesResponse, error) {
	notes, err := h.services.NotesService.LoadNotes(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Handler.GetNotes").Msg("error loading notes")
		return nil, statusFromError(err)
	}

	if notes == nil {
		notes = []models.Note{}
	}
	return &models.GetNotesResponse{Notes: notes}, nil
}

// SaveNotes implements [BridgeServer].
func (h *Handler) SaveNotes(ctx context.Context, req *models.SaveNotesRequest) (*models.SaveNotesResponse, error) {
	log := logger.FromContext(ctx)

	if err := h.validator.Validate(ctx, req, validators.FieldLength); err != nil {
		log.Err(err).Str("func", "*Handler.SaveNotes").Msg("invalid save request")
		return nil, statusFromError(err)
	}

	if err := h.checkHash(req); err != nil {
		log.Err(err).Str("func", "*Handler.SaveNotes").Msg("hashes are not equal")
		return nil, err
	}

	notes := req.Notes
	if notes == nil {
		notes = []models.Note{}
	}

	saved, err := h.services.NotesService.SaveNotes(ctx, notes)
	if err != nil {
		log.Err(err).Str("func", "*Handler.SaveNotes").Msg("error saving notes")
		return nil, statusFromError(err)
	}

	return &models.SaveNotesResponse{Saved: saved}, nil
}

func (h *Handler) checkHash(req *models.SaveNotesRequest) error {
	if h.hashKey == "" {
		return nil
	}

	payload, err := json.Marshal(req.Notes)
	if err != nil {
		return status.Error(codes.Internal, app.MsgInternalServerError)
	}
	if !utils.HashEqual(payload, req.Hash) {
		return status.Error(codes.InvalidArgument, app.MsgIntegrityCheckFailed)
	}
	return nil
}
