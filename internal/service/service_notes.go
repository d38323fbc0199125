package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type notesService struct {
	gateway store.NotesGateway

	logger *logger.Logger
}

// NewNotesService returns the host NotesService backed by gateway. Every
// operation first ensures the notes file exists with an empty collection.
func NewNotesService(gateway store.NotesGateway, logger *logger.Logger) NotesService {
	return &notesService{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *notesService) LoadNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.gateway.EnsureFile(ctx, []models.Note{}); err != nil {
		log.Err(err).Str("func", "notesService.LoadNotes").Msg("error ensuring notes file")
		return nil, fmt.Errorf("error ensuring notes file: %w", err)
	}

	notes, err := s.gateway.ReadAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "notesService.LoadNotes").Msg("error reading notes")
		return nil, fmt.Errorf("error reading notes: %w", err)
	}

	log.Debug().Str("func", "notesService.LoadNotes").Int("count", len(notes)).Msg("notes loaded")
	return notes, nil
}

func (s *notesService) SaveNotes(ctx context.Context, notes []models.Note) (bool, error) {
	log := logger.FromContext(ctx)

	if err := s.gateway.EnsureFile(ctx, []models.Note{}); err != nil {
		log.Err(err).Str("func", "notesService.SaveNotes").Msg("error ensuring notes file")
		return false, fmt.Errorf("error ensuring notes file: %w", err)
	}

	if err := s.gateway.WriteAll(ctx, notes); err != nil {
		log.Err(err).Str("func", "notesService.SaveNotes").Msg("error writing notes")
		return false, fmt.Errorf("error writing notes: %w", err)
	}

	log.Debug().Str("func", "notesService.SaveNotes").Int("count", len(notes)).Msg("notes saved")
	return true, nil
}
