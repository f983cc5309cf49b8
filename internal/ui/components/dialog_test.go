package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogIncludesTitleMessageAndHints(t *testing.T) {
	out := ConfirmDialog("Confirm", "Are you sure?", "")
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Confirm")
	assert.Contains(t, clean, "Are you sure?")
	assert.Contains(t, clean, DefaultConfirmHint)
}

func TestConfirmDialogUsesLocalizedHint(t *testing.T) {
	out := ConfirmDialog("خروج؟", "مطمئن هستید؟", "y: تایید | n: انصراف")
	clean := SanitizeText(out)

	assert.Contains(t, clean, "تایید")
	assert.NotContains(t, clean, DefaultConfirmHint)
}

func TestConfirmPreviewDialogIncludesSummaryRows(t *testing.T) {
	out := ConfirmPreviewDialog("Delete card", "Really?", "", []TableRow{
		{Label: "Title", Value: "Verbs"},
		{Label: "Priority", Value: "⭐⭐", ValueColor: lipgloss.Color("#436b77")},
	}, 80)
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Delete card")
	assert.Contains(t, clean, "Really?")
	assert.Contains(t, clean, "Verbs")
	assert.Contains(t, clean, DefaultConfirmHint)
}

func TestConfirmPreviewDialogSanitizesTitle(t *testing.T) {
	out := ConfirmPreviewDialog("Delete\x1b]0;evil\x07 card", "", "", nil, 80)
	assert.NotContains(t, out, "\x1b]")
	assert.Contains(t, SanitizeText(out), "Delete card")
}

func TestDialogsStayInsideTheirWidth(t *testing.T) {
	for _, line := range strings.Split(ConfirmDialog("Quit?", "Cards will be lost.", ""), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), dialogWidth)
	}

	rows := []TableRow{{Label: "Type", Value: "Education 📚"}, {Label: "Priority", Value: "⭐⭐⭐"}}
	for _, width := range []int{40, 80} {
		out := ConfirmPreviewDialog("Delete card", "Really?", "", rows, width)
		for _, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), width, "width %d", width)
		}
	}
}
