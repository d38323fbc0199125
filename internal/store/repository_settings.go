package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository returns the SQLite-backed [SettingsRepository].
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *settingsRepository) GetSetting(ctx context.Context, name string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingQuery(name)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.GetSetting").Msg("failed to create query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSettingNotFound
		}
		log.Err(err).
			Str("func", "settingsRepository.GetSetting").
			Str("name", name).
			Msg("failed to query setting")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (r *settingsRepository) SetSetting(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSettingQuery(name, value)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.SetSetting").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.SetSetting").
			Str("name", name).
			Msg("failed to upsert setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
