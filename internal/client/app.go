package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// UI is the interactive surface driven by [App].
type UI interface {
	Run(ctx context.Context, firstLaunch bool) error
	Notify(ctx context.Context, notification models.Notification)
}

type App struct {
	storages *store.ClientStorages
	services *service.ClientServices
	bridge   adapter.Bridge

	uiMu sync.RWMutex
	ui   UI

	logger *logger.Logger
}

// NewApp builds the client: settings storage, bridge (embedding the host's
// notes service when no address is configured), client services and UI.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNoClientConfig
	}

	a := &App{logger: logger}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating client storages: %w", err)
	}
	a.storages = storages

	var host adapter.NotesHost
	if cfg.Adapter.Embedded() {
		host, err = a.newEmbeddedHost(cfg, buildInfo)
		if err != nil {
			_ = storages.Close()
			return nil, err
		}
	}

	a.bridge, err = adapter.NewBridge(cfg.Adapter, cfg.App, host, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating bridge: %w", err)
	}

	a.services = service.NewClientServices(storages, a.bridge, cfg.Workers, logger)

	ui, err := tui.New(a.services, buildInfo, logger)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("error creating ui: %w", err)
	}
	a.setUI(ui)

	return a, nil
}

func (a *App) newEmbeddedHost(cfg *config.ClientConfig, buildInfo models.AppBuildInfo) (adapter.NotesHost, error) {
	storages := store.NewStorages(config.HostStorage{NotesFile: cfg.Storage.NotesFile}, store.NotifierFunc(a.notify), a.logger)

	services, err := service.NewServices(storages, config.HostApp{
		HashKey:  cfg.App.HashKey,
		Version:  buildInfo.BuildVersion(),
		LogLevel: cfg.App.LogLevel,
	}, a.logger)
	if err != nil {
		return nil, fmt.Errorf("error creating embedded host services: %w", err)
	}

	return services.NotesService, nil
}

// Run shows the UI until the user quits, then flushes a pending save. The
// UI issues the single initial load of the note store.
func (a *App) Run(ctx context.Context) error {
	firstLaunch, err := a.services.SettingsService.IsFirstLaunch(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("error reading first launch flag")
	}

	runErr := a.getUI().Run(ctx, firstLaunch)

	flushErr := a.services.SaveJob.Flush(context.WithoutCancel(ctx))
	a.services.SaveJob.Stop()
	if flushErr != nil {
		a.logger.Err(flushErr).Str("func", "App.Run").Msg("error saving notes on exit")
	}

	return errors.Join(runErr, flushErr)
}

func (a *App) Close() error {
	var errs []error

	if closer, ok := a.bridge.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	if a.storages != nil {
		errs = append(errs, a.storages.Close())
	}

	return errors.Join(errs...)
}

// notify forwards gateway notifications of the embedded host to the UI.
func (a *App) notify(ctx context.Context, notification models.Notification) {
	if ui := a.getUI(); ui != nil {
		ui.Notify(ctx, notification)
		return
	}
	store.NewLogNotifier(a.logger).Notify(ctx, notification)
}

func (a *App) setUI(ui UI) {
	a.uiMu.Lock()
	defer a.uiMu.Unlock()
	a.ui = ui
}

func (a *App) getUI() UI {
	a.uiMu.RLock()
	defer a.uiMu.RUnlock()
	return a.ui
}
