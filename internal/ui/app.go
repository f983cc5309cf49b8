package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/gravitrone/flashcards/cli/internal/cards"
	"github.com/gravitrone/flashcards/cli/internal/config"
	"github.com/gravitrone/flashcards/cli/internal/locale"
	"github.com/gravitrone/flashcards/cli/internal/ui/components"
)

// --- Messages ---

type clearToastMsg struct{}

type appToast struct {
	level string
	text  string
}

// --- App Model ---

// App is the root TUI model that routes between the form and the gallery.
type App struct {
	ctrl   *cards.Controller
	loc    *locale.Localizer
	config *config.Config
	log    *zap.Logger

	width       int
	height      int
	quitConfirm bool
	toast       *appToast

	form    FormModel
	gallery GalleryModel
}

// NewApp creates the root model. A nil config uses defaults and a nil
// logger discards output.
func NewApp(ctrl *cards.Controller, loc *locale.Localizer, cfg *config.Config, log *zap.Logger) App {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return App{
		ctrl:    ctrl,
		loc:     loc,
		config:  cfg,
		log:     log,
		form:    NewFormModel(ctrl, loc),
		gallery: NewGalleryModel(ctrl, loc, cfg.VimKeys),
	}
}

func (a App) Init() tea.Cmd {
	return a.form.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.form.setSize(msg.Width, msg.Height)
		a.gallery.setSize(msg.Width, msg.Height)
		return a, nil

	case clearToastMsg:
		a.toast = nil
		return a, nil

	case submitDoneMsg:
		return a.finishSubmit(msg)

	case cardDeletedMsg:
		a.log.Debug("gallery card removed", zap.String("id", msg.id))
		if a.ctrl.Deck().Len() == 0 {
			a.ctrl.Back()
		}
		return a, a.setToast("info", a.loc.T("toast.deleted"))

	case tea.KeyMsg:
		return a.handleKeys(msg)
	}

	// Blink and spinner ticks belong to the form.
	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

func (a App) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.quitConfirm {
		switch {
		case isKey(msg, "y", "Y"), isQuit(msg):
			return a, tea.Quit
		case isKey(msg, "n", "N"), isBack(msg):
			a.quitConfirm = false
		}
		return a, nil
	}

	viewing := a.ctrl.State() == cards.StateViewing
	if isQuit(msg) || (viewing && !a.gallery.confirming && isKey(msg, "q")) {
		if a.hasUnsaved() {
			a.quitConfirm = true
			return a, nil
		}
		return a, tea.Quit
	}

	if viewing {
		var cmd tea.Cmd
		a.gallery, cmd = a.gallery.Update(msg)
		if a.ctrl.State() != cards.StateViewing {
			a.log.Debug("view changed", zap.Stringer("state", a.ctrl.State()))
		}
		return a, cmd
	}

	if isShowCards(msg) {
		if a.ctrl.ShowGallery() {
			a.gallery.Reload()
			a.log.Debug("view changed", zap.Stringer("state", a.ctrl.State()))
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

// finishSubmit completes the in-flight submission once the delay elapses.
func (a App) finishSubmit(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	card, ok := a.ctrl.Complete(msg.at)
	if !ok {
		return a, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.form, cmd = a.form.syncFromDraft()
	cmds = append(cmds, cmd)

	switch a.ctrl.Mode() {
	case cards.ModeGallery:
		a.gallery.Reload()
		a.gallery.Select(card.ID)
	case cards.ModeAlert:
		cmds = append(cmds, a.setToast("success", a.loc.T("toast.created")))
	}
	return a, tea.Batch(cmds...)
}

// hasUnsaved reports whether quitting would discard cards or input.
func (a App) hasUnsaved() bool {
	return a.ctrl.Deck().Len() > 0 || a.form.hasInput() || a.ctrl.Submitting()
}

func (a App) View() string {
	banner := centerBlockUniform(RenderBanner(a.loc), a.width)

	var content string
	if a.ctrl.State() == cards.StateViewing {
		content = a.gallery.View()
	} else {
		content = a.form.View()
	}
	if a.quitConfirm {
		content = a.renderQuitConfirm()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width, a.loc.RTL())

	feedback := ""
	if a.toast != nil {
		feedback = "\n\n" + centerBlockUniform(a.renderToast(), a.width)
	}

	return fmt.Sprintf("%s\n%s\n\n%s%s", banner, content, hints, feedback)
}

func (a App) statusHints() []string {
	if a.quitConfirm {
		return []string{
			components.Hint("y", a.loc.T("hint.confirm")),
			components.Hint("n", a.loc.T("hint.cancel")),
		}
	}
	if a.ctrl.State() == cards.StateViewing {
		return a.gallery.hints()
	}
	return a.form.hints()
}

func (a App) renderQuitConfirm() string {
	return components.ConfirmDialog(a.loc.T("quit.title"), a.loc.T("quit.message"), a.loc.T("dialog.hint"))
}

func (a *App) setToast(level, text string) tea.Cmd {
	a.toast = &appToast{
		level: level,
		text:  components.SanitizeOneLine(text),
	}
	return tea.Tick(2500*time.Millisecond, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a App) renderToast() string {
	if a.toast == nil {
		return ""
	}
	if a.toast.level == "info" {
		return components.AccentBox("", a.toast.text, a.width, ColorBlue, false)
	}
	return components.AccentBox(a.loc.T("toast.success"), a.toast.text, a.width, ColorSuccess, false)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		w := lipgloss.Width(line)
		if w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
