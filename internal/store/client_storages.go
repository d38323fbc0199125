package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// ClientStorages groups the client-side storage repositories.
type ClientStorages struct {
	// SettingsRepository is the SQLite-backed key/value store holding UI
	// preferences such as the first-launch flag.
	SettingsRepository SettingsRepository

	db *DB
}

// NewClientStorages opens (creating if needed) the SQLite settings
// database named by cfg.DB.DSN and runs pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SettingsRepository: NewSettingsRepository(db, logger),
		db:                 db,
	}, nil
}

// Close releases the settings database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
