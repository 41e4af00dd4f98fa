package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the palette for the control panel. Every style the panel
// renders is derived from these colors in Styles, so a new palette is the
// only thing needed to re-skin the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Cards and bars
	SurfaceAlt string // Inputs and art frame

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Link    string

	// Buttons and badge
	Primary     string // Play button
	PrimaryText string
	PlayingBg   string
	PlayingText string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	border := lipgloss.Color(t.Border)
	button := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Text)).
		Background(lipgloss.Color(t.SurfaceAlt)).
		Padding(0, 2).
		Bold(true)

	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		CardFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Button: button,

		ButtonPrimary: button.
			Foreground(lipgloss.Color(t.PrimaryText)).
			Background(lipgloss.Color(t.Primary)),

		ButtonDisabled: button.
			Foreground(lipgloss.Color(t.Faint)).
			Background(lipgloss.Color(t.Surface)).
			Bold(false),

		BadgePlaying: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.PlayingText)).
			Background(lipgloss.Color(t.PlayingBg)).
			Padding(0, 1),

		BadgePaused: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Background(lipgloss.Color(t.SurfaceAlt)).
			Padding(0, 1),

		ArtFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Foreground(lipgloss.Color(t.Faint)).
			Align(lipgloss.Center, lipgloss.Center),

		Song: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),

		Artist: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		Album: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Link)).
			Underline(true),

		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style

	// Header
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Cards
	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardTitle   lipgloss.Style

	// Tag editor
	Label          lipgloss.Style
	Input          lipgloss.Style
	InputFocused   lipgloss.Style
	Button         lipgloss.Style
	ButtonPrimary  lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Now playing
	BadgePlaying lipgloss.Style
	BadgePaused  lipgloss.Style
	ArtFrame     lipgloss.Style
	Song         lipgloss.Style
	Artist       lipgloss.Style
	Album        lipgloss.Style
	Link         lipgloss.Style
	Empty        lipgloss.Style

	// Chrome
	Hint        lipgloss.Style
	StatusBar   lipgloss.Style
	MutedText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	SuccessText lipgloss.Style
	Modal       lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Midnight": midnightTheme(),
	"Nightfox": nightfoxTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Midnight", "Nightfox", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return midnightTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func midnightTheme() Theme {
	// Deep navy with a violet primary, the panel's house palette.
	return Theme{
		Name: "Midnight",

		Background: "#070a12",
		Surface:    "#0b1220",
		SurfaceAlt: "#1a2233",

		Border:      "#2c3547",
		BorderFocus: "#7c5cff",

		Text:    "#e9edf7",
		Muted:   "#aab2c8",
		Faint:   "#6b7590",
		Accent:  "#7c5cff",
		Success: "#2ed573",
		Warning: "#ffd166",
		Danger:  "#ff6b81",
		Link:    "#c7baff",

		Primary:     "#5a3dff",
		PrimaryText: "#ffffff",
		PlayingBg:   "#12362a",
		PlayingText: "#b8ffd4",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
		Link:    "#63cdcf", // cyan

		Primary:     "#9d79d6", // magenta
		PrimaryText: "#131a24",
		PlayingBg:   "#2b3b51", // sel0
		PlayingText: "#81b29a",
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Link:    "#7dd3fc", // sky-300

		Primary:     "#0284c7", // sky-600
		PrimaryText: "#f8fafc", // slate-50
		PlayingBg:   "#14532d", // green-900
		PlayingText: "#bbf7d0", // green-200
	}
}
