package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NotesGateway is the privileged file gateway holding the whole note
// collection as one JSON document.
type NotesGateway interface {
	// EnsureFile creates the notes file with defaultContent when it does
	// not exist. An existing file is left untouched.
	EnsureFile(ctx context.Context, defaultContent []models.Note) error
	// ReadAll parses the notes file. It never returns a nil slice on success.
	ReadAll(ctx context.Context) ([]models.Note, error)
	// WriteAll replaces the notes file with notes.
	WriteAll(ctx context.Context, notes []models.Note) error
}

// Notifier surfaces gateway failures to the user.
type Notifier interface {
	Notify(ctx context.Context, notification models.Notification)
}

// SettingsRepository is the client's local key/value store.
type SettingsRepository interface {
	// GetSetting returns the stored value or [ErrSettingNotFound].
	GetSetting(ctx context.Context, name string) (string, error)
	// SetSetting inserts or replaces the value stored under name.
	SetSetting(ctx context.Context, name, value string) error
}
