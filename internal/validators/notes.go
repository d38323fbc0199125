package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTitle targets the note title length limit.
	FieldTitle = "title"

	// FieldNotes targets every note of a collection plus id uniqueness.
	FieldNotes = "notes"

	// FieldLength targets the declared length of a save request.
	FieldLength = "length"
)

// NotesValidator implements [Validator] for notes, note collections and
// save requests. Both value and pointer forms are accepted.
type NotesValidator struct {
}

func NewNotesValidator() Validator {
	return &NotesValidator{}
}

func (v *NotesValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case []models.Note:
		return v.validateNotes(ctx, value)

	case models.SaveNotesRequest:
		return v.validateSaveRequest(ctx, value, fields...)
	case *models.SaveNotesRequest:
		return v.validateSaveRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NotesValidator) validateNote(ctx context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if utf8.RuneCountInString(note.Title) > models.MaxTitleLength {
				return ErrTitleTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NotesValidator) validateNotes(ctx context.Context, notes []models.Note) error {
	seen := make(map[int64]struct{}, len(notes))

	for i, note := range notes {
		if err := v.validateNote(ctx, note); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
		if _, ok := seen[note.ID]; ok {
			return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateNoteID)
		}
		seen[note.ID] = struct{}{}
	}

	return nil
}

func (v *NotesValidator) validateSaveRequest(ctx context.Context, request models.SaveNotesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLength, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldLength:
			if request.Length != len(request.Notes) {
				return ErrLengthMismatch
			}
		case FieldNotes:
			if err := v.validateNotes(ctx, request.Notes); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
