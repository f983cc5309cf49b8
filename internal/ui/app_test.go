package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gravitrone/flashcards/cli/internal/cards"
	"github.com/gravitrone/flashcards/cli/internal/config"
	"github.com/gravitrone/flashcards/cli/internal/ui/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestApp(t *testing.T, ctrl *cards.Controller) App {
	t.Helper()
	app := NewApp(ctrl, testLocale(), nil, nil)
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return model.(App)
}

func send(t *testing.T, app App, msgs ...tea.Msg) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var model tea.Model
		model, cmd = app.Update(msg)
		app = model.(App)
	}
	return app, cmd
}

// typeCard fills the form through the app and submits it.
func typeCard(t *testing.T, app App) App {
	t.Helper()
	app.form = fillFormKeys(app.form)
	app, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	require.Equal(t, cards.StateSubmitting, app.ctrl.State())
	return app
}

func TestAppInitAndViewRendersBannerFormAndHints(t *testing.T) {
	app := newTestApp(t, testController(cards.ModeGallery))
	assert.NotNil(t, app.Init())

	out := app.View()
	assert.NotContains(t, out, "\x1b]")

	clean := components.SanitizeText(out)
	assert.Contains(t, clean, "Flashcard Form")
	assert.Contains(t, clean, "A smarter notebook")
	assert.Contains(t, clean, "Title *")
	assert.Contains(t, clean, "Fields")
	assert.Contains(t, clean, "Quit")
}

func TestAppGalleryModeSubmitFlow(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	app := typeCard(t, newTestApp(t, ctrl))
	assert.Contains(t, components.SanitizeText(app.View()), "Saving...")

	app, _ = send(t, app, submitDoneMsg{at: fixedNow})
	assert.Equal(t, cards.StateViewing, ctrl.State())
	assert.Equal(t, 1, ctrl.Deck().Len())
	assert.Nil(t, app.toast)

	clean := components.SanitizeText(app.View())
	assert.Contains(t, clean, "Cards (1)")
	assert.Contains(t, clean, "Verbs 📚")
	assert.Contains(t, clean, "Mar 20, 2024")

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, cards.StateEditing, ctrl.State())
	assert.Equal(t, "", app.form.title.Value())
	assert.Contains(t, components.SanitizeText(app.View()), "View cards (1)")

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Equal(t, cards.StateViewing, ctrl.State())
}

func TestAppAlertModeShowsToastAndKeepsForm(t *testing.T) {
	ctrl := testController(cards.ModeAlert)
	app := typeCard(t, newTestApp(t, ctrl))

	app, cmd := send(t, app, submitDoneMsg{at: fixedNow})
	require.NotNil(t, cmd)
	assert.Equal(t, cards.StateEditing, ctrl.State())
	assert.Equal(t, 1, ctrl.Deck().Len())
	require.NotNil(t, app.toast)

	clean := components.SanitizeText(app.View())
	assert.Contains(t, clean, "Card saved successfully!")
	assert.Contains(t, clean, "Title *")
	assert.False(t, app.form.hasInput())

	app, _ = send(t, app, clearToastMsg{})
	assert.Nil(t, app.toast)

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Equal(t, cards.StateEditing, ctrl.State(), "alert mode has no gallery")
}

func TestAppLogModeResetsSilentlyAndLogsCard(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctrl := cards.NewController(cards.Options{Mode: cards.ModeLog, Logger: zap.New(core)})
	app := typeCard(t, newTestApp(t, ctrl))

	app, _ = send(t, app, submitDoneMsg{at: fixedNow})
	assert.Equal(t, cards.StateEditing, ctrl.State())
	assert.Nil(t, app.toast)
	assert.False(t, app.form.hasInput())

	entries := logs.FilterMessage("card submitted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Verbs", entries[0].ContextMap()["title"])
}

func TestAppIgnoresStaleSubmitDone(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	app := newTestApp(t, ctrl)

	app, cmd := send(t, app, submitDoneMsg{at: fixedNow})
	assert.Nil(t, cmd)
	assert.Equal(t, cards.StateEditing, ctrl.State())
	assert.Equal(t, 0, ctrl.Deck().Len())
}

func TestAppShowCardsRequiresCards(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	app := newTestApp(t, ctrl)

	_, _ = send(t, app, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Equal(t, cards.StateEditing, ctrl.State())
}

func TestAppDeletingLastCardReturnsToForm(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	addCard(t, ctrl, "Only", 3)
	app := newTestApp(t, ctrl)
	app.gallery.Reload()

	app, cmd := send(t, app, keyRunes("d"), keyRunes("y"))
	require.NotNil(t, cmd)
	app, toastCmd := send(t, app, cmd())
	assert.NotNil(t, toastCmd)
	assert.Equal(t, 0, ctrl.Deck().Len())
	assert.Equal(t, cards.StateEditing, ctrl.State())
	assert.Contains(t, components.SanitizeText(app.View()), "Card deleted")
}

func TestAppQuitWithoutInputExitsImmediately(t *testing.T) {
	app := newTestApp(t, testController(cards.ModeGallery))

	_, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppQuitConfirmWithUnsavedInput(t *testing.T) {
	app := newTestApp(t, testController(cards.ModeGallery))
	app, _ = send(t, app, keyRunes("draft"))

	app, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Nil(t, cmd)
	assert.True(t, app.quitConfirm)
	assert.Contains(t, components.SanitizeText(app.View()), "Quit?")

	app, _ = send(t, app, keyRunes("n"))
	assert.False(t, app.quitConfirm)
	assert.Equal(t, "draft", app.ctrl.Draft().Title, "cancel keeps the draft")

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	_, cmd = send(t, app, keyRunes("y"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppLetterQGoesToFormButQuitsGallery(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	app := newTestApp(t, ctrl)

	app, _ = send(t, app, keyRunes("q"))
	assert.False(t, app.quitConfirm)
	assert.Equal(t, "q", ctrl.Draft().Title)

	gallery := testController(cards.ModeGallery)
	addCard(t, gallery, "Only", 3)
	app = newTestApp(t, gallery)
	app, _ = send(t, app, keyRunes("q"))
	assert.True(t, app.quitConfirm)
}

func TestAppVimKeysFromConfig(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	addCard(t, ctrl, "First", 5)
	addCard(t, ctrl, "Second", 1)

	app := NewApp(ctrl, testLocale(), &config.Config{VimKeys: true}, nil)
	app.gallery.Reload()
	app, _ = send(t, app, keyRunes("j"))

	card, ok := app.gallery.selectedCard()
	require.True(t, ok)
	assert.Equal(t, "Second", card.Title)
}

func TestAppStatusHintsFollowView(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	addCard(t, ctrl, "Only", 3)
	app := newTestApp(t, ctrl)
	app.gallery.Reload()

	joined := components.SanitizeText(components.StatusBar(app.statusHints(), 0, false))
	assert.Contains(t, joined, "Delete")
	assert.Contains(t, joined, "Back")

	app, _ = send(t, app, keyRunes("d"))
	joined = components.SanitizeText(components.StatusBar(app.statusHints(), 0, false))
	assert.Contains(t, joined, "Confirm")
	assert.Contains(t, joined, "Cancel")
}

func TestAppViewFitsNarrowTerminal(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	app := NewApp(ctrl, testLocale(), nil, nil)
	app, _ = send(t, app, tea.WindowSizeMsg{Width: 40, Height: 60})

	assertFits := func(view string) {
		t.Helper()
		for _, line := range strings.Split(view, "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), 40, "line %q", components.SanitizeText(line))
		}
	}

	assertFits(app.View())

	app.form = fillFormKeys(app.form)
	require.True(t, ctrl.CanSubmit())
	assertFits(app.View())

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyCtrlS}, submitDoneMsg{at: fixedNow})
	require.Equal(t, cards.StateViewing, ctrl.State())
	assertFits(app.View())

	app, _ = send(t, app, keyRunes("d"))
	assertFits(app.View())

	app, _ = send(t, app, keyRunes("n"), keyRunes("q"))
	require.True(t, app.quitConfirm)
	assertFits(app.View())
}
