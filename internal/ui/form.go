package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/flashcards/cli/internal/cards"
	"github.com/gravitrone/flashcards/cli/internal/locale"
	"github.com/gravitrone/flashcards/cli/internal/ui/components"
)

// --- Messages ---

// submitDoneMsg fires once the simulated submission latency has elapsed.
type submitDoneMsg struct{ at time.Time }

// --- Fields ---

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldType
	fieldPriority
	fieldTags
	fieldCount
)

// --- Form Model ---

// FormModel edits the controller's draft. The draft is the source of truth;
// the text widgets mirror it and selectors read it on every render.
type FormModel struct {
	ctrl *cards.Controller
	loc  *locale.Localizer

	title textinput.Model
	desc  textarea.Model
	tag   textinput.Model

	focus     formField
	tagCursor int

	spinner  spinner.Model
	progress progress.Model

	width  int
	height int
}

// NewFormModel builds the form with the title field focused.
func NewFormModel(ctrl *cards.Controller, loc *locale.Localizer) FormModel {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = loc.T("form.title_placeholder")

	desc := textarea.New()
	desc.Placeholder = loc.T("form.description_placeholder")
	desc.ShowLineNumbers = false
	desc.SetHeight(4)
	desc.CharLimit = 0

	tag := textinput.New()
	tag.Prompt = "🔖 "
	tag.Placeholder = loc.T("form.tag_placeholder")

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorPrimary)),
	)

	bar := progress.New(
		progress.WithSolidFill(string(ColorPrimary)),
		progress.WithoutPercentage(),
		progress.WithWidth(30),
	)

	m := FormModel{
		ctrl:      ctrl,
		loc:       loc,
		title:     title,
		desc:      desc,
		tag:       tag,
		tagCursor: -1,
		spinner:   spin,
		progress:  bar,
	}
	m.title.Focus()
	return m
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) setSize(width, height int) {
	m.width = width
	m.height = height
	inner := components.BoxContentWidth(width)
	if inner <= 0 {
		return
	}
	m.title.Width = inner - 2
	m.tag.Width = inner - 6
	m.desc.SetWidth(inner - 2)
	m.progress.Width = inner - 2
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.ctrl.Submitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKeys(msg)
	}
	return m.updateFocused(msg)
}

func (m FormModel) handleKeys(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	if m.ctrl.Submitting() {
		return m, nil
	}
	switch {
	case isSubmit(msg):
		return m.submit()
	case isNextField(msg):
		return m.setFocus(m.focus + 1)
	case isPrevField(msg):
		return m.setFocus(m.focus - 1)
	}

	switch m.focus {
	case fieldTitle:
		if isEnter(msg) || isDown(msg) {
			return m.setFocus(m.focus + 1)
		}
	case fieldDescription:
		// arrows and enter belong to the textarea
	case fieldType, fieldPriority:
		return m.handleSelectorKeys(msg)
	case fieldTags:
		return m.handleTagKeys(msg)
	}
	return m.updateFocused(msg)
}

func (m FormModel) handleSelectorKeys(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch {
	case isLeft(msg):
		m.cycleSelector(-1)
	case isRight(msg), isSpace(msg):
		m.cycleSelector(1)
	case isUp(msg):
		return m.setFocus(m.focus - 1)
	case isDown(msg), isEnter(msg):
		return m.setFocus(m.focus + 1)
	}
	return m, nil
}

func (m FormModel) handleTagKeys(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	draft := m.ctrl.Draft()
	empty := m.tag.Value() == ""

	switch {
	case isEnter(msg):
		// Enter adds the pending tag and never submits the form.
		m.commitTag()
		return m, nil
	case isUp(msg):
		return m.setFocus(m.focus - 1)
	case isDown(msg):
		return m.setFocus(m.focus + 1)
	case empty && isLeft(msg):
		m.moveTagCursor(-1)
		return m, nil
	case empty && isRight(msg):
		m.moveTagCursor(1)
		return m, nil
	case empty && isRemove(msg):
		m.removeTagAtCursor()
		return m, nil
	case isKey(msg, "ctrl+d"):
		draft.RemoveLastTag()
		m.tagCursor = -1
		return m, nil
	case msg.Type == tea.KeyRunes || isSpace(msg):
		if draft.TagsRemaining() == 0 {
			return m, nil
		}
	}

	m.tagCursor = -1
	return m.updateFocused(msg)
}

// updateFocused forwards a message to the focused text widget and mirrors
// the widget value into the draft.
func (m FormModel) updateFocused(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmd tea.Cmd
	draft := m.ctrl.Draft()
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
		_ = draft.UpdateField(cards.FieldTitle, m.title.Value())
	case fieldDescription:
		m.desc, cmd = m.desc.Update(msg)
		_ = draft.UpdateField(cards.FieldDescription, m.desc.Value())
	case fieldTags:
		m.tag, cmd = m.tag.Update(msg)
		_ = draft.UpdateField(cards.FieldTagInput, m.tag.Value())
	}
	return m, cmd
}

func (m FormModel) setFocus(field formField) (FormModel, tea.Cmd) {
	m.focus = (field + fieldCount) % fieldCount
	m.tagCursor = -1
	m.title.Blur()
	m.desc.Blur()
	m.tag.Blur()

	switch m.focus {
	case fieldTitle:
		return m, m.title.Focus()
	case fieldDescription:
		return m, m.desc.Focus()
	case fieldTags:
		return m, m.tag.Focus()
	}
	return m, nil
}

func (m *FormModel) cycleSelector(delta int) {
	draft := m.ctrl.Draft()
	switch m.focus {
	case fieldType:
		types := cards.CardTypes()
		idx := 0
		for i, t := range types {
			if string(t.Value) == draft.Type {
				idx = i + 1
			}
		}
		idx = wrapIndex(idx+delta, len(types)+1)
		value := ""
		if idx > 0 {
			value = string(types[idx-1].Value)
		}
		_ = draft.UpdateField(cards.FieldType, value)
	case fieldPriority:
		idx, _ := cards.ParsePriority(draft.Priority)
		idx = wrapIndex(idx+delta, cards.MaxPriority+1)
		value := ""
		if idx > 0 {
			value = strconv.Itoa(idx)
		}
		_ = draft.UpdateField(cards.FieldPriority, value)
	}
}

func wrapIndex(idx, n int) int {
	return ((idx % n) + n) % n
}

func (m *FormModel) commitTag() {
	if m.ctrl.Draft().AddTag(m.tag.Value()) {
		m.tag.Reset()
		m.tagCursor = -1
	}
}

func (m *FormModel) moveTagCursor(delta int) {
	n := len(m.ctrl.Draft().Tags)
	if n == 0 {
		m.tagCursor = -1
		return
	}
	if m.tagCursor < 0 {
		if delta < 0 {
			m.tagCursor = n - 1
		} else {
			m.tagCursor = 0
		}
		return
	}
	m.tagCursor = wrapIndex(m.tagCursor+delta, n)
}

func (m *FormModel) removeTagAtCursor() {
	draft := m.ctrl.Draft()
	if m.tagCursor >= 0 && m.tagCursor < len(draft.Tags) {
		draft.RemoveTag(draft.Tags[m.tagCursor])
		if m.tagCursor >= len(draft.Tags) {
			m.tagCursor = len(draft.Tags) - 1
		}
		return
	}
	draft.RemoveLastTag()
}

func (m FormModel) submit() (FormModel, tea.Cmd) {
	if !m.ctrl.Submit() {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, submitAfter(m.ctrl.SubmitDelay()))
}

// submitAfter models the submission latency as a single timer whose
// completion message finishes the submission.
func submitAfter(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return submitDoneMsg{at: t}
	})
}

// syncFromDraft copies the draft back into the widgets after a reset.
func (m FormModel) syncFromDraft() (FormModel, tea.Cmd) {
	draft := m.ctrl.Draft()
	m.title.SetValue(draft.Title)
	m.desc.SetValue(draft.Description)
	m.tag.SetValue(draft.TagInput)
	return m.setFocus(fieldTitle)
}

// hasInput reports whether the draft holds anything worth keeping.
func (m FormModel) hasInput() bool {
	d := m.ctrl.Draft()
	return strings.TrimSpace(d.Title) != "" ||
		strings.TrimSpace(d.Description) != "" ||
		d.Type != "" || d.Priority != "" ||
		len(d.Tags) > 0 || strings.TrimSpace(d.TagInput) != ""
}

// --- Rendering ---

func (m FormModel) View() string {
	draft := m.ctrl.Draft()
	var b strings.Builder

	if m.ctrl.Mode() == cards.ModeGallery && m.ctrl.Deck().Len() > 0 {
		b.WriteString(m.line(MutedStyle.Render("ctrl+g  ") + AccentStyle.Render(m.loc.Tf("form.view_cards", m.ctrl.Deck().Len()))))
		b.WriteString("\n\n")
	}

	b.WriteString(m.label(fieldTitle, m.loc.T("form.title")))
	b.WriteString("\n")
	b.WriteString("  " + m.title.View())
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldDescription, m.loc.T("form.description")))
	b.WriteString("\n")
	b.WriteString(components.Indent(m.desc.View(), 2))
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldType, m.loc.T("form.type")))
	b.WriteString("\n")
	b.WriteString(m.line("  " + m.renderTypeSelector()))
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldPriority, m.loc.T("form.priority")))
	b.WriteString("\n")
	b.WriteString(m.line("  " + m.renderPrioritySelector()))
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldTags, m.loc.Tf("form.tags", cards.MaxTags)))
	b.WriteString("\n")
	b.WriteString(m.renderTags())
	b.WriteString("\n\n")

	if !draft.IsValid() {
		b.WriteString(m.line(WarningStyle.Render(m.loc.T("form.incomplete"))))
		b.WriteString("\n\n")
	}
	b.WriteString(m.line(m.renderSubmit()))

	if draft.IsValid() && !m.ctrl.Submitting() {
		b.WriteString("\n\n")
		b.WriteString(m.renderPreview())
	}

	if m.ctrl.Submitting() {
		return components.Box(b.String(), m.width)
	}
	return components.ActiveBox(b.String(), m.width)
}

func (m FormModel) label(field formField, text string) string {
	if m.focus == field {
		return m.line(SelectedStyle.Render("> " + text))
	}
	return m.line(MutedStyle.Render("  " + text))
}

// line right-aligns static text for right-to-left locales.
func (m FormModel) line(s string) string {
	if m.loc.RTL() {
		return components.AlignLines(s, m.width)
	}
	return s
}

func (m FormModel) renderTypeSelector() string {
	focused := m.focus == fieldType
	info, ok := m.ctrl.Draft().TypeInfo()
	text := m.loc.T("form.choose")
	if ok {
		text = m.loc.T(info.LabelKey) + " " + info.Icon
	}
	out := renderSelector(text, focused)
	if ok {
		out += "  " + components.Badge(m.loc.T(info.LabelKey)+" "+info.Icon, ColorBackground, tagColor(info.Color))
	}
	return out
}

func (m FormModel) renderPrioritySelector() string {
	focused := m.focus == fieldPriority
	info, ok := m.ctrl.Draft().PriorityInfo()
	text := m.loc.T("form.choose")
	if ok {
		text = m.loc.T(info.LabelKey)
	}
	out := renderSelector(text, focused)
	if ok {
		out += "  " + components.Badge(m.loc.T(info.LabelKey)+" "+cards.Stars(info.Value), ColorBackground, tagColor(info.Color))
	}
	return out
}

func renderSelector(text string, focused bool) string {
	if focused {
		return SelectedStyle.Render("‹ ") + NormalStyle.Render(text) + SelectedStyle.Render(" ›")
	}
	return MutedStyle.Render("  " + text + "  ")
}

func (m FormModel) renderTags() string {
	draft := m.ctrl.Draft()
	var b strings.Builder

	if draft.TagsRemaining() == 0 {
		b.WriteString("  " + MutedStyle.Render(m.tag.Prompt+m.loc.Tf("form.tags_added", len(draft.Tags), cards.MaxTags)))
	} else {
		b.WriteString("  " + m.tag.View())
		if m.focus == fieldTags && !draft.CanAddTag(m.tag.Value()) && strings.TrimSpace(m.tag.Value()) != "" {
			b.WriteString(" " + MutedStyle.Render("✕"))
		}
	}
	b.WriteString("\n")

	if len(draft.Tags) > 0 {
		chips := make([]string, 0, len(draft.Tags))
		for i, t := range draft.Tags {
			style := TagChipStyle
			if m.focus == fieldTags && i == m.tagCursor {
				style = TagChipActiveStyle
			}
			chips = append(chips, style.Render(components.SanitizeOneLine(t)+" 🏷️"))
		}
		b.WriteString(m.line("  " + strings.Join(chips, " ")))
		b.WriteString("\n")
	}

	ratio := float64(len(draft.Tags)) / float64(cards.MaxTags)
	b.WriteString("  " + m.progress.ViewAs(ratio))
	b.WriteString("\n")

	added := m.loc.Tf("form.tags_added", len(draft.Tags), cards.MaxTags)
	left := m.loc.Tf("form.tags_left", draft.TagsRemaining())
	b.WriteString(m.line("  " + MutedStyle.Render(added+"   "+left)))
	return b.String()
}

func (m FormModel) renderSubmit() string {
	if m.ctrl.Submitting() {
		return m.spinner.View() + " " + MutedStyle.Render(m.loc.T("form.submitting"))
	}
	if m.ctrl.Draft().IsValid() {
		return ButtonStyle.Render(m.loc.T("form.submit"))
	}
	return ButtonDisabledStyle.Render(m.loc.T("form.submit"))
}

func (m FormModel) renderPreview() string {
	draft := m.ctrl.Draft()
	typeInfo, _ := draft.TypeInfo()
	prioInfo, _ := draft.PriorityInfo()

	var b strings.Builder
	b.WriteString(NormalStyle.Bold(true).Render(components.SanitizeOneLine(draft.Title)))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(components.SanitizeText(strings.TrimSpace(draft.Description))))
	b.WriteString("\n\n")
	b.WriteString(components.Badge(m.loc.T(typeInfo.LabelKey)+" "+typeInfo.Icon, ColorBackground, tagColor(typeInfo.Color)))
	b.WriteString(" ")
	b.WriteString(components.Badge(m.loc.T(prioInfo.LabelKey)+" "+cards.Stars(prioInfo.Value), ColorBackground, tagColor(prioInfo.Color)))

	// The preview sits inside the form box, so it is sized to its content.
	inner := components.BoxContentWidth(m.width)
	content := b.String()
	if m.loc.RTL() {
		content = components.AlignLines(content, inner)
	}
	return components.AccentBox(m.loc.T("form.preview"), content, inner, tagColor(typeInfo.Color), false)
}

func (m FormModel) hints() []string {
	if m.ctrl.Submitting() {
		return []string{components.Hint(m.spinner.View(), m.loc.T("hint.wait"))}
	}
	hints := []string{
		components.Hint("tab", m.loc.T("hint.fields")),
	}
	switch m.focus {
	case fieldType, fieldPriority:
		hints = append(hints, components.Hint("←/→", m.loc.T("hint.cycle")))
	case fieldTags:
		hints = append(hints,
			components.Hint("enter", m.loc.T("hint.add_tag")),
			components.Hint("⌫", m.loc.T("hint.drop_tag")),
		)
	}
	if m.ctrl.CanSubmit() {
		hints = append(hints, components.Hint("ctrl+s", m.loc.T("hint.save")))
	}
	if m.ctrl.Mode() == cards.ModeGallery && m.ctrl.Deck().Len() > 0 {
		hints = append(hints, components.Hint("ctrl+g", m.loc.T("hint.cards")))
	}
	return append(hints, components.Hint("ctrl+c", m.loc.T("hint.quit")))
}
