package store

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// Storages groups the host-side persistence backends.
type Storages struct {
	Notes NotesGateway
}

// NewStorages builds the host storage layer. Gateway failures are reported
// through notifier.
func NewStorages(cfg config.HostStorage, notifier Notifier, logger *logger.Logger) *Storages {
	logger.Info().Str("notes_file", cfg.NotesFile).Msg("creating new storages...")

	return &Storages{
		Notes: NewNotesFileStorage(cfg.NotesFile, notifier, logger),
	}
}
