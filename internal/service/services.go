package service

import (
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

type Services struct {
	NotesService   NotesService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.HostApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		NotesService:   NewNotesValidationService(logger).Wrap(NewNotesService(storages.Notes, logger)),
		AppInfoService: appInfo,
	}, nil
}
