package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// dialogWidth is the outer width of a plain confirmation dialog.
const dialogWidth = 40

// DefaultConfirmHint is shown when a dialog gets no localized hint.
const DefaultConfirmHint = "y: confirm | n: cancel"

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#273540")).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#7f57b4")).
				Bold(true)

	dialogMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9ba0bf"))

	dialogWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c78854"))
)

func confirmHint(hint string) string {
	if strings.TrimSpace(hint) == "" {
		hint = DefaultConfirmHint
	}
	return dialogMutedStyle.Render(hint)
}

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(title, message, hint string) string {
	header := dialogTitleStyle.Render(SanitizeOneLine(title))
	body := dialogMutedStyle.Render(SanitizeText(message))
	return dialogStyle.Width(safeBoxWidth(dialogWidth)).Render(header + "\n\n" + body + "\n\n" + confirmHint(hint))
}

// ConfirmPreviewDialog renders a confirmation with a warning and the rows
// describing what the action affects.
func ConfirmPreviewDialog(title, message, hint string, summary []TableRow, width int) string {
	sections := make([]string, 0, 3)
	if message != "" {
		sections = append(sections, dialogWarnStyle.Render(SanitizeText(message)))
	}
	if len(summary) > 0 {
		sections = append(sections, Table("", summary, BoxContentWidth(width)))
	}
	sections = append(sections, confirmHint(hint))

	return TitledBox(SanitizeOneLine(title), strings.Join(sections, "\n\n"), width)
}
