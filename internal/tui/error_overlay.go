package tui

type errorOverlayModel struct {
	title   string
	message string
}

func (m errorOverlayModel) View() string {
	title := m.title
	if title == "" {
		title = "Error"
	}
	content := errorStyle.Render(title) + "\n\n" + m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
