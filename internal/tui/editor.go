package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	titlePlaceholder   = "Enter note title here..."
	contentPlaceholder = "Write something..."

	defaultEditorWidth = 60
	editorHeight       = 10
)

func (m *notesModel) openEditor(note models.Note) tea.Cmd {
	title := textinput.New()
	title.Placeholder = titlePlaceholder
	title.CharLimit = models.MaxTitleLength
	title.Prompt = ""
	title.SetValue(note.Title)

	content := textarea.New()
	content.Placeholder = contentPlaceholder
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.MaxHeight = 0
	content.SetHeight(editorHeight)
	content.SetValue(note.Content)
	content.Blur()

	m.editing = note
	m.titleInput = title
	m.contentArea = content
	m.screen = screenEditor
	m.resizeEditor()

	return m.titleInput.Focus()
}

func (m *notesModel) resizeEditor() {
	if m.screen != screenEditor {
		return
	}

	width := defaultEditorWidth
	if m.width > 0 && m.width-8 < width {
		width = m.width - 8
	}
	if width < 10 {
		width = 10
	}
	m.titleInput.Width = width
	m.contentArea.SetWidth(width)
}

func (m notesModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenList
			m.titleInput.Blur()
			m.contentArea.Blur()
			m.refresh()
			return m, nil

		case key.Matches(keyMsg, keys.tab),
			key.Matches(keyMsg, keys.enter) && m.titleInput.Focused():
			cmd := m.switchEditorFocus()
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.titleInput.Focused() {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentArea, cmd = m.contentArea.Update(msg)
	}

	m.applyEdit()
	return m, cmd
}

// applyEdit pushes the editor fields into the store when they differ from
// the note being edited.
func (m *notesModel) applyEdit() {
	updated := m.editing
	updated.Title = m.titleInput.Value()
	updated.Content = m.contentArea.Value()

	if updated == m.editing {
		return
	}

	if m.notes.UpdateNote(updated) {
		m.editing = updated.ClampTitle()
	}
}

func (m *notesModel) switchEditorFocus() tea.Cmd {
	if m.titleInput.Focused() {
		m.titleInput.Blur()
		return m.contentArea.Focus()
	}
	m.contentArea.Blur()
	return m.titleInput.Focus()
}

func (m notesModel) editorView() string {
	var out strings.Builder

	out.WriteString("Title\n")
	out.WriteString(m.titleInput.View())
	out.WriteString("\n\nContent\n")
	out.WriteString(m.contentArea.View())

	if msg := m.state.ErrorMessage(); msg != "" {
		out.WriteString("\n\n")
		out.WriteString(errorStyle.Render(msg))
	}

	page := renderPage("EDIT NOTE", out.String(), "tab: next field │ esc: back to list")
	return m.withOverlays(page)
}
