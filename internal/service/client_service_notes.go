// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NotesState is a point-in-time copy of the note store. Notes is owned by
// the caller.
type NotesState struct {
	Notes   []models.Note
	Loading bool

	LoadError string
	SaveError string
}

// ErrorMessage returns the message to show the user: the load error when
// set, otherwise the save error. Empty means no error.
func (s NotesState) ErrorMessage() string {
	if s.LoadError != "" {
		return s.LoadError
	}
	return s.SaveError
}

type clientNotesService struct {
	bridge adapter.Bridge
	ids    *utils.NoteIDGenerator

	mu        sync.RWMutex
	notes     []models.Note
	loading   bool
	loadError string
	saveError string

	saveMu sync.Mutex

	observersMu  sync.Mutex
	observers    map[uint64]func()
	nextObserver uint64

	logger *logger.Logger
}

// NewClientNotesService creates an empty store over bridge. It performs no
// I/O; the caller runs Load once before the UI starts.
func NewClientNotesService(bridge adapter.Bridge, ids *utils.NoteIDGenerator, logger *logger.Logger) ClientNotesService {
	if ids == nil {
		ids = utils.NewNoteIDGenerator()
	}

	return &clientNotesService{
		bridge:    bridge,
		ids:       ids,
		notes:     []models.Note{},
		observers: make(map[uint64]func()),
		logger:    logger,
	}
}

func (s *clientNotesService) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.loadError = ""
	s.saveError = ""
	s.mu.Unlock()

	notes, err := s.bridge.GetNotes(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.notes = []models.Note{}
		s.loadError = app.MsgErrorLoadingNotes
		s.logger.Err(err).Str("func", "clientNotesService.Load").Msg("error loading notes")
		return fmt.Errorf("error loading notes: %w", err)
	}

	s.notes = models.CloneNotes(notes)
	s.logger.Info().Str("func", "clientNotesService.Load").Int("count", len(notes)).Msg("notes loaded")
	return nil
}

func (s *clientNotesService) CreateNote() (models.Note, bool) {
	s.mu.Lock()
	if len(s.notes) > 0 && s.notes[0].IsBlank() {
		s.mu.Unlock()
		return models.Note{}, false
	}

	note := models.Note{ID: s.ids.Generate(s.hasID)}
	s.notes = append([]models.Note{note}, s.notes...)
	s.mu.Unlock()

	s.notifyObservers()
	return note, true
}

// hasID must be called with s.mu held.
func (s *clientNotesService) hasID(id int64) bool {
	return s.indexOf(id) >= 0
}

func (s *clientNotesService) indexOf(id int64) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *clientNotesService) RemoveNote(id int64) bool {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	notes := make([]models.Note, 0, len(s.notes)-1)
	notes = append(notes, s.notes[:i]...)
	s.notes = append(notes, s.notes[i+1:]...)
	s.mu.Unlock()

	s.notifyObservers()
	return true
}

func (s *clientNotesService) UpdateNote(note models.Note) bool {
	s.mu.Lock()
	i := s.indexOf(note.ID)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	notes := models.CloneNotes(s.notes)
	notes[i] = note.ClampTitle()
	s.notes = notes
	s.mu.Unlock()

	s.notifyObservers()
	return true
}

func (s *clientNotesService) SaveNotes(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	snapshot := models.CloneNotes(s.notes)
	s.mu.RUnlock()

	_, err := s.bridge.SaveNotes(ctx, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.saveError = app.MsgErrorSavingNotes
		s.logger.Err(err).Str("func", "clientNotesService.SaveNotes").Msg("error saving notes")
		return fmt.Errorf("error saving notes: %w", err)
	}

	s.saveError = ""
	s.logger.Debug().Str("func", "clientNotesService.SaveNotes").Int("count", len(snapshot)).Msg("notes saved")
	return nil
}

func (s *clientNotesService) State() NotesState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return NotesState{
		Notes:     models.CloneNotes(s.notes),
		Loading:   s.loading,
		LoadError: s.loadError,
		SaveError: s.saveError,
	}
}

func (s *clientNotesService) Subscribe(fn func()) func() {
	s.observersMu.Lock()
	defer s.observersMu.Unlock()

	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn

	return func() {
		s.observersMu.Lock()
		defer s.observersMu.Unlock()
		delete(s.observers, id)
	}
}

// notifyObservers runs outside s.mu so observers may read State.
func (s *clientNotesService) notifyObservers() {
	s.observersMu.Lock()
	observers := make([]func(), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.observersMu.Unlock()

	for _, fn := range observers {
		fn()
	}
}
