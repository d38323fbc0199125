package tui

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const (
	appHeader = "My Notes App"
	uiDivider = "──────────────────────────────────────────────────────"
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// fitText truncates v to max runes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

var (
	previewPolicy = bluemonday.StrictPolicy()

	blockBreaks = strings.NewReplacer(
		"</p>", "</p> ",
		"<br>", "<br> ",
		"<br/>", "<br/> ",
		"</li>", "</li> ",
		"</h1>", "</h1> ",
		"</h2>", "</h2> ",
		"</h3>", "</h3> ",
		"</blockquote>", "</blockquote> ",
	)
)

// previewText reduces note markup to a single line of plain text.
func previewText(content string) string {
	text := previewPolicy.Sanitize(blockBreaks.Replace(content))
	return strings.Join(strings.Fields(html.UnescapeString(text)), " ")
}
