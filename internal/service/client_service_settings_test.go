package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientSettingsService_IsFirstLaunch(t *testing.T) {
	tests := []struct {
		name      string
		stored    string
		getErr    error
		wantFirst bool
		wantSet   bool
	}{
		{name: "missing key", getErr: store.ErrSettingNotFound, wantFirst: true, wantSet: true},
		{name: "already launched", stored: "false", wantFirst: false},
		{name: "unexpected value", stored: "true", wantFirst: true, wantSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockSettingsRepository(ctrl)
			svc := NewClientSettingsService(repo, logger.Nop())
			ctx := context.Background()

			repo.EXPECT().GetSetting(ctx, SettingFirstLaunch).Return(tt.stored, tt.getErr)
			if tt.wantSet {
				repo.EXPECT().SetSetting(ctx, SettingFirstLaunch, "false").Return(nil)
			}

			first, err := svc.IsFirstLaunch(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFirst, first)
		})
	}
}

func TestClientSettingsService_IsFirstLaunch_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	svc := NewClientSettingsService(repo, logger.Nop())
	boom := errors.New("db locked")

	repo.EXPECT().GetSetting(gomock.Any(), SettingFirstLaunch).Return("", boom)

	first, err := svc.IsFirstLaunch(context.Background())
	assert.False(t, first)
	assert.ErrorIs(t, err, boom)
}

func TestClientSettingsService_IsFirstLaunch_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	svc := NewClientSettingsService(repo, logger.Nop())
	boom := errors.New("read-only")

	repo.EXPECT().GetSetting(gomock.Any(), SettingFirstLaunch).Return("", store.ErrSettingNotFound)
	repo.EXPECT().SetSetting(gomock.Any(), SettingFirstLaunch, "false").Return(boom)

	first, err := svc.IsFirstLaunch(context.Background())
	assert.True(t, first)
	assert.ErrorIs(t, err, boom)
}

func TestNewClientServices_WiresSaveJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	bridge := mock.NewMockBridge(ctrl)
	storages := &store.ClientStorages{SettingsRepository: mock.NewMockSettingsRepository(ctrl)}

	services := NewClientServices(storages, bridge, configClientWorkers(), logger.Nop())
	require.NotNil(t, services.NotesService)
	require.NotNil(t, services.SettingsService)

	_, created := services.NotesService.CreateNote()
	require.True(t, created)

	bridge.EXPECT().SaveNotes(gomock.Any(), gomock.Len(1)).Return(true, nil)
	require.NoError(t, services.SaveJob.Flush(context.Background()))
	services.SaveJob.Stop()
}
