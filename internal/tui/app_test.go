package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestModel(t *testing.T, firstLaunch bool, notes []models.Note, loadErr error) (notesModel, service.ClientNotesService, *mock.MockBridge) {
	t.Helper()

	ctrl := gomock.NewController(t)
	bridge := mock.NewMockBridge(ctrl)
	bridge.EXPECT().GetNotes(gomock.Any()).Return(notes, loadErr)

	store := service.NewClientNotesService(bridge, utils.NewSeededNoteIDGenerator(1, 2), logger.Nop())
	m := newNotesModel(context.Background(), store, firstLaunch, models.NewAppBuildInfo("1.0.0", "2026-10-19", "abc123"))
	m = update(t, m, m.cmdLoad()())

	return m, store, bridge
}

func update(t *testing.T, m notesModel, msg tea.Msg) notesModel {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(notesModel)
	require.True(t, ok)
	return model
}

func updateWithCmd(t *testing.T, m notesModel, msg tea.Msg) (notesModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(notesModel)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNotesModel_LoadingView(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := service.NewClientNotesService(mock.NewMockBridge(ctrl), nil, logger.Nop())
	m := newNotesModel(context.Background(), store, false, models.AppBuildInfo{})

	view := m.View()
	assert.Contains(t, view, appHeader)
	assert.Contains(t, view, "Loading notes...")
}

func TestNotesModel_ListView(t *testing.T) {
	notes := []models.Note{
		{ID: 10000001, Title: "Groceries", Content: "<p>milk &amp; eggs</p>"},
		{ID: 10000002, Title: "", Content: "<p>draft</p>"},
	}
	m, _, _ := newTestModel(t, false, notes, nil)

	view := m.View()
	assert.Contains(t, view, appHeader)
	assert.Contains(t, view, "Groceries")
	assert.Contains(t, view, "milk & eggs")
	assert.Contains(t, view, untitledNote)
	assert.NotContains(t, view, "<p>")
}

func TestNotesModel_EmptyState(t *testing.T) {
	m, _, _ := newTestModel(t, false, []models.Note{}, nil)
	assert.Contains(t, m.View(), emptyListMessage)
	assert.NotContains(t, m.View(), welcomeTitle)
}

func TestNotesModel_LoadError(t *testing.T) {
	m, _, _ := newTestModel(t, false, nil, errors.New("bridge down"))

	view := m.View()
	assert.Contains(t, view, app.MsgErrorLoadingNotes)
	assert.NotContains(t, view, emptyListMessage)
}

func TestNotesModel_WelcomeScreen(t *testing.T) {
	m, store, _ := newTestModel(t, true, []models.Note{}, nil)
	require.Contains(t, m.View(), welcomeTitle)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenEditor, m.screen)
	assert.True(t, m.noteCreated)
	require.Len(t, store.State().Notes, 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, m.screen)
	assert.NotContains(t, m.View(), welcomeTitle)
	assert.Contains(t, m.View(), untitledNote)
}

func TestNotesModel_WelcomeHiddenWithNotes(t *testing.T) {
	m, _, _ := newTestModel(t, true, []models.Note{{ID: 10000001, Title: "kept"}}, nil)
	assert.NotContains(t, m.View(), welcomeTitle)
	assert.Contains(t, m.View(), "kept")
}

func TestNotesModel_CreateAndEdit(t *testing.T) {
	m, store, _ := newTestModel(t, false, []models.Note{{ID: 10000001, Title: "old"}}, nil)

	m = update(t, m, runes("n"))
	require.Equal(t, screenEditor, m.screen)
	require.Len(t, store.State().Notes, 2)

	m = update(t, m, runes("Hi"))
	assert.Equal(t, "Hi", store.State().Notes[0].Title)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, runes("body"))

	head := store.State().Notes[0]
	assert.Equal(t, "Hi", head.Title)
	assert.Equal(t, "body", head.Content)
	assert.Equal(t, "old", store.State().Notes[1].Title)
	assert.Contains(t, m.View(), "EDIT NOTE")
}

func TestNotesModel_CreateOpensBlankHead(t *testing.T) {
	m, store, _ := newTestModel(t, false, []models.Note{{ID: 10000001}}, nil)

	m = update(t, m, runes("n"))

	assert.Equal(t, screenEditor, m.screen)
	assert.Equal(t, int64(10000001), m.editing.ID)
	assert.Len(t, store.State().Notes, 1)
}

func TestNotesModel_EditNotifiesObservers(t *testing.T) {
	m, store, _ := newTestModel(t, false, []models.Note{{ID: 10000001, Title: "a"}}, nil)

	var changes int
	store.Subscribe(func() { changes++ })

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenEditor, m.screen)
	assert.Zero(t, changes)

	update(t, m, runes("b"))
	assert.Equal(t, 1, changes)
	assert.Equal(t, "ab", store.State().Notes[0].Title)
}

func TestNotesModel_DeleteWithConfirm(t *testing.T) {
	notes := []models.Note{{ID: 10000001, Title: "first"}, {ID: 10000002, Title: "second"}}

	t.Run("confirmed", func(t *testing.T) {
		m, store, _ := newTestModel(t, false, notes, nil)

		m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
		require.True(t, m.showConfirm)
		assert.Contains(t, m.View(), `Delete "first"?`)

		m = update(t, m, runes("y"))
		assert.False(t, m.showConfirm)
		assert.Equal(t, []models.Note{{ID: 10000002, Title: "second"}}, store.State().Notes)
		assert.NotContains(t, m.View(), "first")
	})

	t.Run("cancelled", func(t *testing.T) {
		m, store, _ := newTestModel(t, false, notes, nil)

		m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
		m = update(t, m, runes("n"))

		assert.False(t, m.showConfirm)
		assert.Len(t, store.State().Notes, 2)
	})
}

func TestNotesModel_ManualSave(t *testing.T) {
	notes := []models.Note{{ID: 10000001, Title: "a"}}

	t.Run("success", func(t *testing.T) {
		m, _, bridge := newTestModel(t, false, notes, nil)
		bridge.EXPECT().SaveNotes(gomock.Any(), notes).Return(true, nil)

		m, cmd := updateWithCmd(t, m, runes("s"))
		require.NotNil(t, cmd)
		m = update(t, m, cmd())

		assert.Contains(t, m.View(), "Saved")
	})

	t.Run("failure", func(t *testing.T) {
		m, _, bridge := newTestModel(t, false, notes, nil)
		bridge.EXPECT().SaveNotes(gomock.Any(), notes).Return(false, errors.New("disk full"))

		m, cmd := updateWithCmd(t, m, runes("s"))
		require.NotNil(t, cmd)
		m = update(t, m, cmd())

		assert.Contains(t, m.View(), app.MsgErrorSavingNotes)
		assert.NotContains(t, m.View(), "Saved")
		assert.Len(t, m.state.Notes, 1)
	})
}

func TestNotesModel_CopyContent(t *testing.T) {
	var copied string
	prev := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = prev })

	m, _, _ := newTestModel(t, false, []models.Note{{ID: 10000001, Content: "<p>hello <b>world</b></p>"}}, nil)

	m, cmd := updateWithCmd(t, m, runes("c"))
	require.NotNil(t, cmd)
	m = update(t, m, cmd())

	assert.Equal(t, "hello world", copied)
	assert.Contains(t, m.View(), "Copied")
}

func TestNotesModel_NotificationOverlay(t *testing.T) {
	m, _, _ := newTestModel(t, false, []models.Note{}, nil)

	m = update(t, m, notificationMsg{notification: models.Notification{
		Kind:    models.NotificationError,
		Title:   app.TitleSavingFailed,
		Message: app.MsgErrorSavingNotes,
	}})
	require.True(t, m.showError)
	assert.Contains(t, m.View(), app.TitleSavingFailed)

	// keys other than enter/esc do not reach the list
	m = update(t, m, runes("n"))
	assert.True(t, m.showError)
	assert.Equal(t, screenList, m.screen)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
}

func TestNotesModel_BuildInfo(t *testing.T) {
	m, _, _ := newTestModel(t, false, []models.Note{}, nil)

	m = update(t, m, runes("v"))
	view := m.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.Contains(t, view, "Commit: abc123")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, m.View(), emptyListMessage)
}

func TestNotesModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t, false, []models.Note{}, nil)

	_, cmd := updateWithCmd(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestNotesModel_QuitKeyTypesInEditor(t *testing.T) {
	m, store, _ := newTestModel(t, false, []models.Note{}, nil)

	m = update(t, m, runes("n"))
	update(t, m, runes("q"))

	assert.Equal(t, "q", store.State().Notes[0].Title)
}

func TestNew_RequiresNotesService(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoNotesService)

	_, err = New(&service.ClientServices{}, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoNotesService)
}

func TestTUI_NotifyWithoutProgram(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := &service.ClientServices{
		NotesService: service.NewClientNotesService(mock.NewMockBridge(ctrl), nil, logger.Nop()),
	}
	ui, err := New(services, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		ui.Notify(context.Background(), models.Notification{Title: "t", Message: "m"})
	})
}
