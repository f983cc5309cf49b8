package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/flashcards/cli/internal/cards"
)

// --- Theme Colors ---

var (
	ColorPrimary    = lipgloss.Color("#7f57b4") // purple
	ColorSecondary  = lipgloss.Color("#436b77") // teal
	ColorAccent     = lipgloss.Color("#a7754e") // warm
	ColorBackground = lipgloss.Color("#16161d") // dark
	ColorText       = lipgloss.Color("#d7d9da") // main text
	ColorMuted      = lipgloss.Color("#9ba0bf") // muted text
	ColorSuccess    = lipgloss.Color("#3f866b") // green
	ColorWarning    = lipgloss.Color("#c78854") // warning
	ColorBorder     = lipgloss.Color("#273540") // border
	ColorBlue       = lipgloss.Color("#436b77") // blue-teal
	ColorSlate      = lipgloss.Color("#888ba4") // neutral badge
	ColorDanger     = lipgloss.Color("#b4505f") // urgent
)

// --- Reusable Styles ---

var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true).
			PaddingBottom(1)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(ColorSuccess).
			Bold(true).
			Padding(0, 3)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorBackground).
				Background(ColorSlate).
				Padding(0, 3)

	TagChipStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorBorder).
			Padding(0, 1)

	TagChipActiveStyle = lipgloss.NewStyle().
				Foreground(ColorBackground).
				Background(ColorWarning).
				Bold(true).
				Padding(0, 1)
)

// tagColor maps a catalog color tag to the terminal palette.
func tagColor(tag cards.ColorTag) lipgloss.Color {
	switch tag {
	case cards.ColorPrimary:
		return ColorPrimary
	case cards.ColorSecondary:
		return ColorSlate
	case cards.ColorSuccess:
		return ColorSuccess
	case cards.ColorWarning:
		return ColorWarning
	case cards.ColorInfo:
		return ColorBlue
	case cards.ColorDanger:
		return ColorDanger
	}
	return ColorMuted
}
