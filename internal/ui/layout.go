package ui

// Terminal width thresholds for responsive layouts.
const (
	// DefaultWideLayoutMin is the width at which the tag editor and the
	// now-playing card sit side by side.
	DefaultWideLayoutMin = 86

	// ArtBesideTextMin is the card content width needed to place the art
	// frame beside the track text instead of above it.
	ArtBesideTextMin = 48

	// artFrameWidth and artFrameHeight size the album art placeholder.
	artFrameWidth  = 22
	artFrameHeight = 7

	// logOverlayLines is how many log lines the log overlay shows.
	logOverlayLines = 200
)

type layoutMode int

const (
	layoutWide   layoutMode = iota // two columns, editor 1 : now playing 1.3
	layoutNarrow                   // single column, cards stacked
)

func (l layoutMode) String() string {
	if l == layoutWide {
		return "wide"
	}
	return "narrow"
}

// chooseLayout picks the layout for the current terminal width. It runs on
// every resize, so the panel follows the terminal rather than its size at
// start.
func chooseLayout(width, wideMin int) layoutMode {
	if wideMin <= 0 {
		wideMin = DefaultWideLayoutMin
	}
	if width >= wideMin {
		return layoutWide
	}
	return layoutNarrow
}

// columnWidths splits the usable width into editor and now-playing columns
// at a 1 : 1.3 ratio, leaving gap columns between them.
func columnWidths(total, gap int) (left, right int) {
	usable := total - gap
	if usable <= 0 {
		return 0, 0
	}
	left = usable * 10 / 23
	right = usable - left
	return left, right
}
