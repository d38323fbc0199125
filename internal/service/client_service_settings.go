package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

const (
	SettingFirstLaunch = "first_launch"

	settingFalse = "false"
)

type clientSettingsService struct {
	repo store.SettingsRepository

	logger *logger.Logger
}

func NewClientSettingsService(repo store.SettingsRepository, logger *logger.Logger) ClientSettingsService {
	return &clientSettingsService{
		repo:   repo,
		logger: logger,
	}
}

// IsFirstLaunch reports true unless the flag was already stored as "false",
// and stores "false" whenever it reports true.
func (s *clientSettingsService) IsFirstLaunch(ctx context.Context) (bool, error) {
	value, err := s.repo.GetSetting(ctx, SettingFirstLaunch)
	if err != nil && !errors.Is(err, store.ErrSettingNotFound) {
		return false, fmt.Errorf("error reading first launch flag: %w", err)
	}

	if value == settingFalse {
		return false, nil
	}

	if err = s.repo.SetSetting(ctx, SettingFirstLaunch, settingFalse); err != nil {
		return true, fmt.Errorf("error storing first launch flag: %w", err)
	}

	s.logger.Info().Str("func", "clientSettingsService.IsFirstLaunch").Msg("first launch detected")
	return true, nil
}
