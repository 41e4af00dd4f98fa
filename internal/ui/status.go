package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/recordify/internal/state"
)

// pollLevel grades the poller's health for the status bar.
type pollLevel int

const (
	pollWaiting pollLevel = iota // no poll has finished yet
	pollLive                     // last poll succeeded
	pollFailing                  // last poll failed
	pollOffline                  // several polls in a row failed
)

// pollStatus describes the latest poll result as a label and a level.
func pollStatus(snap state.Snapshot) (string, pollLevel) {
	switch {
	case snap.Polls == 0:
		return "waiting for first poll", pollWaiting
	case snap.LastError != nil:
		label := fmt.Sprintf("%s (%d failed)", classifyPollError(snap.LastError), snap.ConsecutiveFailures)
		if snap.IsOffline() {
			return label, pollOffline
		}
		return label, pollFailing
	default:
		return "● live", pollLive
	}
}

func (l pollLevel) style(styles Styles) lipgloss.Style {
	switch l {
	case pollLive:
		return styles.SuccessText
	case pollOffline:
		return styles.DangerText
	default:
		return styles.WarningText
	}
}

// renderStatusBar renders the bottom line: poll freshness, failures and key
// hints.
func (m Model) renderStatusBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	var parts []string
	if m.apiBase != "" {
		parts = append(parts, bg.Render("api", styles.Hint)+bg.Space()+
			bg.Render(truncateMiddle(m.apiBase, 32), styles.MutedText))
	}

	label, level := pollStatus(m.status)
	parts = append(parts, bg.Render(label, level.style(styles)))

	if !m.status.LastUpdated.IsZero() {
		ago := humanizeDuration(time.Since(m.status.LastUpdated))
		parts = append(parts, bg.Render("updated "+m.status.LastUpdated.Format("15:04:05")+" ("+ago+")", styles.MutedText))
	}

	left := bg.Join(parts, "  ")
	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	content := left
	if m.width-lipgloss.Width(left)-lipgloss.Width(hints)-4 > 0 {
		content = left + sep + hints
	}
	return styles.StatusBar.Render(bg.FillLine(content, max(m.width-4, 0)))
}
