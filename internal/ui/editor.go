package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	labelUID      = "UID (your RFID tag id)"
	labelTrackRef = "Spotify URL or URI"
)

const editorTip = "Tip: paste a Spotify track link and hit “Save Tag”, then “Play Tag”."

// editorWidth returns the outer width of the tag editor card.
func (m Model) editorWidth() int {
	total := max(m.width-2, 0)
	if m.layout == layoutWide {
		left, _ := columnWidths(total, 2)
		return left
	}
	return total
}

// renderEditor renders the "Tag Editor" card at the given outer width.
func (m Model) renderEditor(width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 1)

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.CardTitle.Render("Tag Editor"),
		"",
		styles.Label.Render(labelUID),
		m.renderInput(m.uid.View(), m.focus == fieldUID, inner),
		styles.Label.Render(labelTrackRef),
		m.renderInput(m.trackRef.View(), m.focus == fieldTrackRef, inner),
		"",
		m.renderButtons(),
		"",
		styles.Hint.Width(inner).Render(editorTip),
	)
	return styles.Card.Width(width - 2).Render(content)
}

func (m Model) renderInput(view string, focused bool, inner int) string {
	styles := m.theme.Styles()
	style := styles.Input
	if focused {
		style = styles.InputFocused
	}
	return style.Width(max(inner-2, 1)).Render(view)
}

// renderButtons shows the save and play buttons, each disabled while its
// own request is in flight.
func (m Model) renderButtons() string {
	styles := m.theme.Styles()

	save := styles.Button.Render("Save Tag")
	if m.saving {
		save = styles.ButtonDisabled.Render("Saving...")
	}
	play := styles.ButtonPrimary.Render("Play Tag")
	if m.playing {
		play = styles.ButtonDisabled.Render("Playing...")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, save, "  ", play)
}
