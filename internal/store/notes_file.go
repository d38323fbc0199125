// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	notesFilePerm = 0o600
	notesDirPerm  = 0o755
)

// NotesFileStorage is the [NotesGateway] backed by a single JSON file.
//
// Every operation holds one mutex, so a save never interleaves with another
// save or with the file's creation. Writes go through a temp file and a
// rename: an interrupted write leaves the previous document in place.
type NotesFileStorage struct {
	path     string
	notifier Notifier
	logger   *logger.Logger

	mu sync.Mutex
}

// NewNotesFileStorage returns a gateway over the file at path. Failures are
// reported through notifier before being returned.
func NewNotesFileStorage(path string, notifier Notifier, logger *logger.Logger) *NotesFileStorage {
	return &NotesFileStorage{
		path:     path,
		notifier: notifier,
		logger:   logger,
	}
}

// Path returns the location of the notes file.
func (s *NotesFileStorage) Path() string {
	return s.path
}

// EnsureFile creates the notes file holding the compact JSON encoding of
// defaultContent (an empty array when nil) if it does not exist yet.
func (s *NotesFileStorage) EnsureFile(ctx context.Context, defaultContent []models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	}

	if err := s.createFile(defaultContent); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "NotesFileStorage.EnsureFile").
			Str("path", s.path).
			Msg("error creating notes file")
		s.notify(ctx, app.TitleCreationFailed, app.MsgErrorCreatingNotesFile, err)
		return fmt.Errorf("%w: %w", ErrCreatingNotesFile, err)
	}

	s.logger.Debug().Str("func", "NotesFileStorage.EnsureFile").Str("path", s.path).Msg("created notes file")
	return nil
}

func (s *NotesFileStorage) createFile(defaultContent []models.Note) error {
	if defaultContent == nil {
		defaultContent = []models.Note{}
	}

	payload, err := json.Marshal(defaultContent)
	if err != nil {
		return fmt.Errorf("encode default notes: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, notesDirPerm); err != nil {
			return fmt.Errorf("create notes dir: %w", err)
		}
	}

	return writeFileAtomic(s.path, payload, notesFilePerm)
}

// ReadAll reads and parses the notes file. A JSON null reads as an empty
// collection.
func (s *NotesFileStorage) ReadAll(ctx context.Context) ([]models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := s.readFile()
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "NotesFileStorage.ReadAll").
			Str("path", s.path).
			Msg("error reading notes")
		s.notify(ctx, app.TitleReadingFailed, app.MsgErrorReadingNotes, err)
		return nil, fmt.Errorf("%w: %w", ErrReadingNotes, err)
	}

	return notes, nil
}

func (s *NotesFileStorage) readFile() ([]models.Note, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read notes file: %w", err)
	}

	var notes []models.Note
	if err = json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("decode notes file: %w", err)
	}

	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// WriteAll replaces the notes file with notes encoded as JSON indented by
// two spaces.
func (s *NotesFileStorage) WriteAll(ctx context.Context, notes []models.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeFile(notes); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "NotesFileStorage.WriteAll").
			Str("path", s.path).
			Int("notes", len(notes)).
			Msg("error saving notes")
		s.notify(ctx, app.TitleSavingFailed, app.MsgErrorSavingNotes, err)
		return fmt.Errorf("%w: %w", ErrSavingNotes, err)
	}

	return nil
}

func (s *NotesFileStorage) writeFile(notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}

	payload, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}

	return writeFileAtomic(s.path, payload, notesFilePerm)
}

func (s *NotesFileStorage) notify(ctx context.Context, title, message string, cause error) {
	if s.notifier == nil {
		return
	}

	s.notifier.Notify(ctx, models.Notification{
		Kind:    models.NotificationError,
		Title:   title,
		Message: message + ": " + cause.Error(),
	})
}
