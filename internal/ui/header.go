package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerTitle    = "Recordify Player"
	headerSubtitle = "RFID tags → Spotify playback. Live status below."
	badgePlaying   = "▶ Playing"
	badgePaused    = "⏸ Paused"
)

// renderHeader renders the title block with the playback badge on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	width := max(m.width-2, 0)

	title := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("♫ "+headerTitle),
		styles.Subtitle.Render(truncate(headerSubtitle, width)),
	)
	badge := m.renderBadge()

	gap := width - lipgloss.Width(title) - lipgloss.Width(badge)
	if gap < 2 {
		// Not enough room: badge drops below the title.
		return lipgloss.JoinVertical(lipgloss.Left, title, badge)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, strings.Repeat(" ", gap), badge)
}

// renderBadge shows "Playing" only when the latest snapshot says so; a
// failed poll or an idle player both read as paused.
func (m Model) renderBadge() string {
	styles := m.theme.Styles()
	if m.status.IsPlaying() {
		return styles.BadgePlaying.Render(badgePlaying)
	}
	return styles.BadgePaused.Render(badgePaused)
}
