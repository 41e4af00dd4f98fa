package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderMain composes header, cards and status bar for the current layout.
func (m Model) renderMain() string {
	total := max(m.width-2, 0)

	var body string
	switch m.layout {
	case layoutWide:
		left, right := columnWidths(total, 2)
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderEditor(left),
			"  ",
			m.renderNowPlaying(right),
		)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.renderEditor(total),
			m.renderNowPlaying(total),
		)
	}

	page := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
	)

	// Pin the status bar to the bottom when there is room.
	status := m.renderStatusBar()
	pad := m.height - lipgloss.Height(page) - lipgloss.Height(status)
	if pad > 0 {
		page = lipgloss.JoinVertical(lipgloss.Left, page, lipgloss.NewStyle().Height(pad).Render(""))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, page, status),
	)
}
