package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/recordify/internal/recordify"
)

const (
	emptyStateMessage = "Nothing playing right now. Start a song in Spotify or tap “Play Tag”."
	openLinkLabel     = "Open in Spotify ↗"
)

// renderNowPlaying renders the "Now Playing" card at the given outer width.
func (m Model) renderNowPlaying(width int) string {
	styles := m.theme.Styles()
	inner := max(width-4, 1)

	var body string
	if item := m.currentTrack(); item != nil {
		body = m.renderTrack(item, inner)
	} else {
		body = styles.Empty.Width(inner).Render(emptyStateMessage)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.CardTitle.Render("Now Playing"),
		"",
		body,
	)
	return styles.Card.Width(width - 2).Render(content)
}

// renderTrack lays out the art frame and the track text. Metadata is shown
// as received from the backend.
func (m Model) renderTrack(item *recordify.Track, inner int) string {
	styles := m.theme.Styles()
	art := m.renderArt(item.ImageURL)

	textWidth := inner
	beside := inner >= ArtBesideTextMin
	if beside {
		textWidth = inner - artFrameWidth - 2
	}

	lines := []string{
		styles.Song.Render(item.Name),
		styles.Artist.Render(item.Artists),
		styles.Album.Render(item.Album),
	}
	if np := m.status.NowPlaying; np != nil {
		if progress, ok := np.Progress(); ok {
			lines = append(lines, styles.MutedText.Render(recordify.FormatProgress(progress)))
		}
	}
	if strings.TrimSpace(item.SpotifyURL) != "" {
		lines = append(lines,
			"",
			styles.Link.Render(openLinkLabel),
			styles.Hint.Render(item.SpotifyURL),
		)
	}
	text := lipgloss.NewStyle().Width(textWidth).Render(strings.Join(lines, "\n"))

	if beside {
		return lipgloss.JoinHorizontal(lipgloss.Center, art, "  ", text)
	}
	return lipgloss.JoinVertical(lipgloss.Left, art, "", text)
}

// renderArt draws a placeholder frame holding the cover image address.
func (m Model) renderArt(imageURL string) string {
	styles := m.theme.Styles()
	label := "no art"
	if imageURL != "" {
		label = "♫\n" + truncateMiddle(imageURL, artFrameWidth-4)
	}
	return styles.ArtFrame.
		Width(artFrameWidth - 2).
		Height(artFrameHeight - 2).
		Render(label)
}
