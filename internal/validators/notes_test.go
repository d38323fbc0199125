// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validNotes() []models.Note {
	return []models.Note{
		{ID: 22222222, Title: "second", Content: "<p>b</p>"},
		{ID: 11111111, Title: "first", Content: "<p>a</p>"},
	}
}

func TestNewNotesValidator(t *testing.T) {
	v := NewNotesValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewNotesValidator()
	ctx := context.Background()
	note := models.Note{ID: 1, Title: "ok"}
	req := models.SaveNotesRequest{Notes: validNotes(), Length: 2}

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "note value", obj: note},
		{name: "note pointer", obj: &note},
		{name: "collection", obj: validNotes()},
		{name: "empty collection", obj: []models.Note{}},
		{name: "request value", obj: req},
		{name: "request pointer", obj: &req},
		{name: "unsupported", obj: "nope", wantErr: ErrUnsupportedType},
		{name: "nil", obj: nil, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// Note
// ---------------------------------------------------------------------------

func TestValidateNote_Title(t *testing.T) {
	v := NewNotesValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{name: "empty", title: ""},
		{name: "at limit", title: strings.Repeat("a", models.MaxTitleLength)},
		{name: "multibyte at limit", title: strings.Repeat("ж", models.MaxTitleLength)},
		{name: "over limit", title: strings.Repeat("a", models.MaxTitleLength+1), wantErr: ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, models.Note{ID: 1, Title: tt.title})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateNote_UnknownField(t *testing.T) {
	err := NewNotesValidator().Validate(context.Background(), models.Note{}, "color")
	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Collections and requests
// ---------------------------------------------------------------------------

func TestValidateNotes_DuplicateIDs(t *testing.T) {
	notes := append(validNotes(), models.Note{ID: 11111111, Title: "dup"})

	err := NewNotesValidator().Validate(context.Background(), notes)

	require.ErrorIs(t, err, ErrDuplicateNoteID)
	assert.Contains(t, err.Error(), "index 2")
}

func TestValidateNotes_ReportsIndexOfLongTitle(t *testing.T) {
	notes := validNotes()
	notes[1].Title = strings.Repeat("x", 101)

	err := NewNotesValidator().Validate(context.Background(), notes)

	require.ErrorIs(t, err, ErrTitleTooLong)
	assert.Contains(t, err.Error(), "index 1")
}

func TestValidateSaveRequest(t *testing.T) {
	v := NewNotesValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.SaveNotesRequest
		fields  []string
		wantErr error
	}{
		{name: "valid", req: models.SaveNotesRequest{Notes: validNotes(), Length: 2}},
		{name: "empty", req: models.SaveNotesRequest{Notes: nil, Length: 0}},
		{name: "length mismatch", req: models.SaveNotesRequest{Notes: validNotes(), Length: 3}, wantErr: ErrLengthMismatch},
		{name: "length only skips notes", req: models.SaveNotesRequest{Notes: []models.Note{{ID: 1}, {ID: 1}}, Length: 2}, fields: []string{FieldLength}},
		{name: "duplicate ids", req: models.SaveNotesRequest{Notes: []models.Note{{ID: 1}, {ID: 1}}, Length: 2}, wantErr: ErrDuplicateNoteID},
		{name: "unknown field", req: models.SaveNotesRequest{}, fields: []string{"hash"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
