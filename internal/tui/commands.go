package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	refreshInterval = 500 * time.Millisecond
	statusLifetime  = 2 * time.Second
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func (m notesModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		return notesLoadedMsg{err: m.notes.Load(m.ctx)}
	}
}

func (m notesModel) cmdSave() tea.Cmd {
	return func() tea.Msg {
		return notesSavedMsg{err: m.notes.SaveNotes(m.ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}

func cmdRefreshLater() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

func cmdClearStatusLater() tea.Cmd {
	return tea.Tick(statusLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
