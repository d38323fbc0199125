package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	emptyListMessage = "You don't have any notes yet"
	untitledNote     = "Untitled"

	listTitleWidth   = 28
	listPreviewWidth = 40

	listHotKeys = "n: new │ enter: edit │ ctrl+d: delete │ c: copy │ s: save │ v: about │ q: quit"
)

func (m notesModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(msg, keys.down):
		if m.idx < len(m.state.Notes)-1 {
			m.idx++
		}

	case key.Matches(msg, keys.newNote):
		return m.createNote()

	case key.Matches(msg, keys.enter):
		if note, ok := m.current(); ok {
			cmd := m.openEditor(note)
			return m, cmd
		}

	case key.Matches(msg, keys.delete):
		if note, ok := m.current(); ok {
			m.showConfirm = true
			m.confirm = confirmModel{message: noteTitle(note)}
			m.pendingDelete = note.ID
		}

	case key.Matches(msg, keys.copy):
		if note, ok := m.current(); ok {
			return m, cmdCopy(previewText(note.Content))
		}

	case key.Matches(msg, keys.save):
		return m, m.cmdSave()

	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

// createNote prepends a blank note and opens it. When the head note is
// still blank no note is added and the head note is opened instead.
func (m notesModel) createNote() (tea.Model, tea.Cmd) {
	note, created := m.notes.CreateNote()
	m.refresh()

	if created {
		m.noteCreated = true
	} else {
		if len(m.state.Notes) == 0 {
			return m, nil
		}
		note = m.state.Notes[0]
	}

	m.idx = 0
	cmd := m.openEditor(note)
	return m, cmd
}

func (m notesModel) listView() string {
	var out strings.Builder

	switch {
	case !m.loaded || m.state.Loading:
		out.WriteString(m.spinner.View())
		out.WriteString(" Loading notes...\n")
		return renderPage(appHeader, out.String(), "q: quit")

	case m.state.LoadError != "":
		out.WriteString(errorStyle.Render(m.state.LoadError))
		return renderPage(appHeader, out.String(), "q: quit")
	}

	if msg := m.state.ErrorMessage(); msg != "" {
		out.WriteString(errorStyle.Render(msg))
		out.WriteString("\n\n")
	}
	if m.status != "" {
		out.WriteString(m.status)
		out.WriteString("\n\n")
	}

	if len(m.state.Notes) == 0 {
		out.WriteString(emptyListMessage)
		return renderPage(appHeader, out.String(), listHotKeys)
	}

	for i, note := range m.state.Notes {
		line := fmt.Sprintf("%-*s │ %s",
			listTitleWidth,
			fitText(noteTitle(note), listTitleWidth),
			fitText(previewText(note.Content), listPreviewWidth),
		)
		if i == m.idx {
			out.WriteString(selectedStyle.Render("> " + line))
		} else {
			out.WriteString("  " + line)
		}
		out.WriteString("\n")
	}

	return renderPage(appHeader, strings.TrimRight(out.String(), "\n"), listHotKeys)
}

func noteTitle(note models.Note) string {
	if strings.TrimSpace(note.Title) == "" {
		return untitledNote
	}
	return note.Title
}
