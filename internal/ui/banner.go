package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/flashcards/cli/internal/locale"
)

// RenderBanner returns the localized title with its subtitle and underline.
func RenderBanner(loc *locale.Localizer) string {
	title := BannerStyle.Render(loc.T("app.title"))
	subtitleText := loc.T("app.subtitle")

	blockWidth := lipgloss.Width(title)
	subtitleWidth := lipgloss.Width(subtitleText)
	if blockWidth < subtitleWidth {
		blockWidth = subtitleWidth
	}

	centered := lipgloss.NewStyle().Width(blockWidth).Align(lipgloss.Center)
	subtitle := centered.Foreground(ColorMuted).Render(subtitleText)
	underline := centered.Foreground(ColorBorder).Render(strings.Repeat("─", subtitleWidth))

	return "\n" + centered.Render(title) + "\n" + subtitle + "\n" + underline + "\n"
}
