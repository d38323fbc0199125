package tui

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenEditor
)

// notesModel is the root model of the program. It owns no notes: state is
// a snapshot of the store, re-read after mutations and on a timer.
type notesModel struct {
	ctx       context.Context
	notes     service.ClientNotesService
	buildInfo models.AppBuildInfo

	firstLaunch bool
	noteCreated bool
	loaded      bool

	state   service.NotesState
	idx     int
	spinner spinner.Model
	screen  screen
	status  string
	width   int

	editing     models.Note
	titleInput  textinput.Model
	contentArea textarea.Model

	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64
}

func newNotesModel(ctx context.Context, notes service.ClientNotesService, firstLaunch bool, buildInfo models.AppBuildInfo) notesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return notesModel{
		ctx:         ctx,
		notes:       notes,
		buildInfo:   buildInfo,
		firstLaunch: firstLaunch,
		spinner:     s,
		state:       service.NotesState{Loading: true},
	}
}

func (m notesModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad(), cmdRefreshLater())
}

func (m notesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.resizeEditor()
		return m, nil

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case notesLoadedMsg:
		m.loaded = true
		m.refresh()
		return m, nil

	case refreshMsg:
		m.refresh()
		return m, cmdRefreshLater()

	case notesSavedMsg:
		m.refresh()
		if msg.err == nil {
			m.status = "Saved"
		}
		return m, cmdClearStatusLater()

	case copiedMsg:
		if msg.err != nil {
			m.openError("Copy failed", msg.err.Error())
			return m, nil
		}
		m.status = "Copied"
		return m, cmdClearStatusLater()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case notificationMsg:
		m.openError(msg.notification.Title, msg.notification.Message)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.screen == screenEditor {
		return m.updateEditor(msg)
	}
	return m, nil
}

func (m notesModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	switch {
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil

	case m.showError:
		if key.Matches(msg, keys.esc, keys.enter) {
			m.showError = false
			m.errorOverlay = errorOverlayModel{}
		}
		return m, nil

	case m.showConfirm:
		return m.updateConfirm(msg)

	case m.screen == screenEditor:
		return m.updateEditor(msg)

	case !m.loaded:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil

	case m.welcomeVisible():
		switch {
		case key.Matches(msg, keys.enter, keys.newNote):
			return m.createNote()
		case key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = true
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
		return m, nil
	}

	return m.updateList(msg)
}

func (m notesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.notes.RemoveNote(m.pendingDelete)
		m.closeConfirm()
		m.refresh()
	case key.Matches(msg, keys.no):
		m.closeConfirm()
	}
	return m, nil
}

func (m notesModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}
	if m.screen == screenEditor {
		return m.editorView()
	}
	if m.welcomeVisible() {
		return m.withOverlays(renderPage(appHeader, welcomeModel{}.View(), "enter: start │ v: about"))
	}
	return m.withOverlays(m.listView())
}

func (m notesModel) withOverlays(page string) string {
	if m.showConfirm {
		page += "\n\n" + m.confirm.View()
	}
	if m.showError {
		page += "\n\n" + m.errorOverlay.View()
	}
	return page
}

// welcomeVisible reports whether the first-launch screen replaces the list:
// only on the first launch, before any note was created, with no notes.
func (m notesModel) welcomeVisible() bool {
	return m.firstLaunch && !m.noteCreated && len(m.state.Notes) == 0
}

func (m *notesModel) refresh() {
	m.state = m.notes.State()
	if m.idx >= len(m.state.Notes) {
		m.idx = len(m.state.Notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *notesModel) openError(title, message string) {
	m.showError = true
	m.errorOverlay = errorOverlayModel{title: title, message: message}
}

func (m *notesModel) closeConfirm() {
	m.showConfirm = false
	m.confirm = confirmModel{}
	m.pendingDelete = 0
}

func (m notesModel) current() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.state.Notes) {
		return models.Note{}, false
	}
	return m.state.Notes[m.idx], true
}
