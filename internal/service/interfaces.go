package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// NotesService is the host side of the bridge. It owns the notes file
// through the storage gateway.
type NotesService interface {
	// LoadNotes makes sure the notes file exists, then returns its content.
	LoadNotes(ctx context.Context) ([]models.Note, error)
	// SaveNotes replaces the stored collection and reports true on success.
	SaveNotes(ctx context.Context, notes []models.Note) (bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NotesServiceWrapper defines middleware composition for NotesService.
// Implementations wrap an existing NotesService to add behavior such as
// logging or validating.
type NotesServiceWrapper interface {
	Wrap(NotesService) NotesService // returns a decorated NotesService applying additional behavior
}
