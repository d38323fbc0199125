package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type NotesValidationService struct {
	inner     NotesService
	validator validators.Validator
	logger    *logger.Logger
}

// NewNotesValidationService returns a wrapper that checks notes on save and
// logs over-long titles or duplicate ids. The collection is written either
// way: a file holding such notes must stay saveable.
func NewNotesValidationService(logger *logger.Logger) NotesServiceWrapper {
	return &NotesValidationService{
		validator: validators.NewNotesValidator(),
		logger:    logger,
	}
}

func (v *NotesValidationService) LoadNotes(ctx context.Context) ([]models.Note, error) {
	return v.inner.LoadNotes(ctx)
}

func (v *NotesValidationService) SaveNotes(ctx context.Context, notes []models.Note) (bool, error) {
	if err := v.validator.Validate(ctx, notes); err != nil {
		v.logger.Warn().Err(err).Str("func", "*NotesValidationService.SaveNotes").
			Int("notes", len(notes)).Msg("saving notes that fail validation")
	}

	return v.inner.SaveNotes(ctx, notes)
}

func (v *NotesValidationService) Wrap(wrapper NotesService) NotesService {
	v.inner = wrapper
	return v
}
