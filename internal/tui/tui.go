// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the notes client.
//
// A single bubbletea program renders the note list, the first-launch welcome
// screen and the note editor on top of [service.ClientNotesService].
// Persistence is not driven from here: every edit goes through the note
// store, whose observers arm the debounced save job.
package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	mu      sync.Mutex
	program *tea.Program

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.NotesService == nil {
		return nil, ErrNoNotesService
	}

	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the notes screen and blocks until the user quits or ctx is
// cancelled. The first page load is issued by the program itself.
func (t *TUI) Run(ctx context.Context, firstLaunch bool) error {
	model := newNotesModel(ctx, t.services.NotesService, firstLaunch, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.setProgram(program)
	defer t.setProgram(nil)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running notes ui: %w", err)
	}
	return nil
}

// Notify shows a host notification as an error overlay. Outside of Run the
// notification is only logged.
func (t *TUI) Notify(_ context.Context, notification models.Notification) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		t.logger.Warn().Str("func", "TUI.Notify").
			Str("title", notification.Title).
			Msg(notification.Message)
		return
	}

	program.Send(notificationMsg{notification: notification})
}

func (t *TUI) setProgram(program *tea.Program) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.program = program
}
