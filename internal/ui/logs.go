package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// setLogContent loads the tail of the log file into the overlay viewport
// and scrolls to the newest line.
func (m *Model) setLogContent(lines []string, err error) {
	m.sizeLogView()
	styles := m.theme.Styles()

	var content string
	switch {
	case err != nil:
		content = styles.DangerText.Render(fmt.Sprintf("Could not read log: %v", err))
	case len(lines) == 0:
		content = styles.MutedText.Render("Log is empty.")
	default:
		rendered := make([]string, 0, len(lines))
		for _, line := range lines {
			rendered = append(rendered, colorizeLogLine(line, styles))
		}
		content = strings.Join(rendered, "\n")
	}
	m.logView.SetContent(content)
	m.logView.GotoBottom()
}

func (m *Model) sizeLogView() {
	w := max(m.width-4, 10)
	h := max(m.height-4, 3) // border plus title and hint lines
	if m.logView.Width == 0 {
		m.logView = viewport.New(w, h)
		return
	}
	m.logView.Width = w
	m.logView.Height = h
}

// renderLog renders the log overlay.
func (m Model) renderLog() string {
	styles := m.theme.Styles()

	path := m.logPath
	if path == "" {
		path = "(no log file)"
	}
	title := styles.CardTitle.Render("Log") + "  " +
		styles.MutedText.Render(truncateMiddle(path, max(m.width-12, 10)))
	hint := styles.Hint.Render("↑/↓ scroll • esc close")

	box := styles.Card.Width(max(m.width-2, 1)).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, m.logView.View()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, box, hint)
}

// colorizeLogLine highlights the level column written by the file logger.
func colorizeLogLine(line string, styles Styles) string {
	switch {
	case strings.Contains(line, " ERRO ") || strings.Contains(line, " FATA "):
		return styles.DangerText.Render(line)
	case strings.Contains(line, " WARN "):
		return styles.WarningText.Render(line)
	case strings.Contains(line, " DEBU "):
		return styles.Hint.Render(line)
	default:
		return line
	}
}
