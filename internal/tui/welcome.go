package tui

const (
	welcomeTitle  = "Welcome to Your Notes App!"
	welcomeAction = "Create Your First Note"
)

type welcomeModel struct{}

func (m welcomeModel) View() string {
	out := titleStyle.Render(welcomeTitle) + "\n\n"
	out += selectedStyle.Render("> "+welcomeAction) + "\n"
	return out
}
