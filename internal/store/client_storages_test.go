package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

func TestNewClientStorages_SQLiteRoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "settings.db")
	ctx := context.Background()

	s, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	_, err = s.SettingsRepository.GetSetting(ctx, "first_launch")
	assert.ErrorIs(t, err, ErrSettingNotFound)

	require.NoError(t, s.SettingsRepository.SetSetting(ctx, "first_launch", "true"))
	require.NoError(t, s.SettingsRepository.SetSetting(ctx, "first_launch", "false"))

	value, err := s.SettingsRepository.GetSetting(ctx, "first_launch")
	require.NoError(t, err)
	assert.Equal(t, "false", value)
}

func TestNewStorages_Host(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	s := NewStorages(config.HostStorage{NotesFile: path}, NewLogNotifier(logger.Nop()), logger.Nop())

	require.NotNil(t, s.Notes)
	require.NoError(t, s.Notes.EnsureFile(context.Background(), nil))

	notes, err := s.Notes.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes)
}
