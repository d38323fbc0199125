package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/models"
)

type localBridge struct {
	host NotesHost
}

// NewLocalBridge returns a [Bridge] calling host in-process. It keeps the
// bridge contract (cloned slices, wrapped errors) without a socket.
func NewLocalBridge(host NotesHost) Bridge {
	return &localBridge{host: host}
}

func (l *localBridge) GetNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := l.host.LoadNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadingNotes, err)
	}
	return models.CloneNotes(notes), nil
}

func (l *localBridge) SaveNotes(ctx context.Context, notes []models.Note) (bool, error) {
	saved, err := l.host.SaveNotes(ctx, models.CloneNotes(notes))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrSavingNotes, err)
	}
	if !saved {
		return false, fmt.Errorf("%w: %w", ErrSavingNotes, ErrSaveNotConfirmed)
	}
	return true, nil
}
