package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

type alertKind int

const (
	alertInfo alertKind = iota
	alertSuccess
	alertWarning
	alertError
)

// alert is a blocking message box. While one is open the form ignores
// input until it is dismissed.
type alert struct {
	kind    alertKind
	message string
}

func newAlert(kind alertKind, message string) alert {
	return alert{kind: kind, message: message}
}

// Update implements Modal.
func (a alert) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Dismiss) {
		return a, nil, true
	}
	return a, nil, false
}

// View implements Modal.
func (a alert) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	title := styles.AccentText.Bold(true).Render("Notice")
	switch a.kind {
	case alertSuccess:
		title = styles.SuccessText.Render("Done")
	case alertWarning:
		title = styles.WarningText.Bold(true).Render("Missing input")
	case alertError:
		title = styles.DangerText.Render("Error")
	}

	modalWidth := 44
	if width > 0 && width-4 < modalWidth {
		modalWidth = max(width-4, 20)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		styles.Title.Bold(false).Width(modalWidth-6).Render(a.message),
		"",
		styles.Hint.Render("enter / esc to dismiss"),
	)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		styles.Modal.Width(modalWidth).Render(body),
		lipgloss.WithWhitespaceChars(" "),
	)
}
