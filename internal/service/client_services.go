package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

type ClientServices struct {
	NotesService    ClientNotesService
	SaveJob         ClientSaveJob
	SettingsService ClientSettingsService
}

// NewClientServices wires the note store to the debounced save job: every
// effective mutation re-arms the job, which then saves through bridge.
func NewClientServices(localStore *store.ClientStorages, bridge adapter.Bridge, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	notesSvc := NewClientNotesService(bridge, utils.NewNoteIDGenerator(), logger)
	saveJob := NewClientSaveJob(notesSvc.SaveNotes, cfg.SaveDebounce, utils.RealClock{}, logger)
	notesSvc.Subscribe(saveJob.Notify)

	return &ClientServices{
		NotesService:    notesSvc,
		SaveJob:         saveJob,
		SettingsService: NewClientSettingsService(localStore.SettingsRepository, logger),
	}
}
