package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/flashcards/cli/internal/cards"
	"github.com/gravitrone/flashcards/cli/internal/locale"
	"github.com/gravitrone/flashcards/cli/internal/ui/components"
)

// cardDeletedMsg reports an accepted deletion to the app for a toast.
type cardDeletedMsg struct{ id string }

// --- Gallery Model ---

// GalleryModel lists submitted cards by descending priority.
type GalleryModel struct {
	ctrl    *cards.Controller
	loc     *locale.Localizer
	vimKeys bool

	items    []cards.Card
	list     *components.List
	renderer *glamour.TermRenderer

	confirming bool
	pendingID  string

	width  int
	height int
}

// NewGalleryModel builds an empty gallery bound to the controller's deck.
func NewGalleryModel(ctrl *cards.Controller, loc *locale.Localizer, vimKeys bool) GalleryModel {
	return GalleryModel{
		ctrl:    ctrl,
		loc:     loc,
		vimKeys: vimKeys,
		list:    components.NewList(3),
	}
}

func (m *GalleryModel) setSize(width, height int) {
	m.width = width
	m.height = height
	// Each card takes roughly ten rows with its border.
	m.list.SetPageSize((height - 14) / 10)

	if inner := components.BoxContentWidth(width); inner > 0 {
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(inner),
		)
	}
}

// Reload re-reads the deck and keeps the cursor on the same card if present.
func (m *GalleryModel) Reload() {
	selected := m.list.SelectedKey()
	m.items = m.ctrl.Deck().Sorted()
	ids := make([]string, len(m.items))
	for i, c := range m.items {
		ids[i] = c.ID
	}
	m.list.SetItems(ids)
	if selected != "" {
		m.Select(selected)
	}
}

// Select moves the cursor to the card with the given id.
func (m *GalleryModel) Select(id string) {
	m.list.Select(id)
}

func (m GalleryModel) selectedCard() (cards.Card, bool) {
	idx := m.list.Selected()
	if idx < 0 || idx >= len(m.items) {
		return cards.Card{}, false
	}
	return m.items[idx], true
}

func (m GalleryModel) Update(msg tea.Msg) (GalleryModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.confirming {
		return m.handleConfirmKeys(key)
	}

	switch {
	case isUp(key), m.vimKeys && isKey(key, "k"):
		m.list.Up()
	case isDown(key), m.vimKeys && isKey(key, "j"):
		m.list.Down()
	case isKey(key, "d", "x", "delete"):
		if card, ok := m.selectedCard(); ok {
			m.confirming = true
			m.pendingID = card.ID
		}
	case isBack(key), isKey(key, "b", "left"):
		m.ctrl.Back()
	}
	return m, nil
}

func (m GalleryModel) handleConfirmKeys(msg tea.KeyMsg) (GalleryModel, tea.Cmd) {
	var accept bool
	switch {
	case isKey(msg, "y", "Y"):
		accept = true
	case isKey(msg, "n", "N"), isBack(msg):
		accept = false
	default:
		return m, nil
	}

	id := m.pendingID
	m.confirming = false
	m.pendingID = ""

	answer := cards.ConfirmFunc(func(string) bool { return accept })
	if !m.ctrl.DeleteCard(id, answer) {
		return m, nil
	}
	m.Reload()
	return m, func() tea.Msg { return cardDeletedMsg{id: id} }
}

// --- Rendering ---

func (m GalleryModel) View() string {
	header := m.line(HeaderStyle.Render(m.loc.Tf("gallery.title", len(m.items))) +
		"  " + MutedStyle.Render("esc "+m.loc.T("gallery.back")))

	if m.confirming {
		return header + "\n" + m.renderConfirm()
	}

	if len(m.items) == 0 {
		empty := components.CenterLine(NormalStyle.Render(m.loc.T("gallery.empty")), m.width) + "\n\n" +
			components.CenterLine(MutedStyle.Render(m.loc.T("gallery.empty_hint")), m.width)
		return header + "\n" + components.Box(empty, m.width)
	}

	var b strings.Builder
	b.WriteString(header)
	visible := m.list.Visible()
	for i := range visible {
		abs := m.list.RelToAbs(i)
		b.WriteString("\n")
		b.WriteString(m.renderCard(m.items[abs], m.list.IsSelected(abs)))
	}
	if len(m.items) > len(visible) {
		b.WriteString("\n")
		b.WriteString(m.line(MutedStyle.Render(m.loc.Number(m.list.Selected()+1) + " / " + m.loc.Number(len(m.items)))))
	}
	return b.String()
}

func (m GalleryModel) renderCard(card cards.Card, selected bool) string {
	typeInfo := card.TypeInfo()
	prioInfo := card.PriorityInfo()
	inner := components.BoxContentWidth(m.width)

	var b strings.Builder
	b.WriteString(MutedStyle.Render(m.loc.T(typeInfo.LabelKey)))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(tagColor(prioInfo.Color)).Render(cards.Stars(card.Priority)))
	b.WriteString("\n\n")

	b.WriteString(m.renderDescription(card.Description, inner))

	if len(card.Tags) > 0 {
		chips := make([]string, 0, len(card.Tags))
		for _, t := range card.Tags {
			chips = append(chips, TagChipStyle.Render(components.SanitizeOneLine(t)+" 🏷️"))
		}
		b.WriteString("\n\n")
		b.WriteString(strings.Join(chips, " "))
	}

	if date := m.loc.FormatDate(card.CreatedAt); date != "" {
		b.WriteString("\n\n")
		b.WriteString(MutedStyle.Render("📅 " + date))
	}

	content := b.String()
	if m.loc.RTL() {
		content = components.AlignLines(content, m.width)
	}
	title := components.SanitizeOneLine(card.Title) + " " + typeInfo.Icon
	return components.AccentBox(title, content, m.width, tagColor(typeInfo.Color), selected)
}

// renderDescription renders the description as Markdown, falling back to
// wrapped plain text when no renderer is available.
func (m GalleryModel) renderDescription(desc string, width int) string {
	desc = components.SanitizeText(desc)
	if m.renderer != nil && !m.loc.RTL() {
		if out, err := m.renderer.Render(desc); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	if width > 0 {
		desc = lipgloss.NewStyle().Width(width).Render(desc)
	}
	return NormalStyle.Render(desc)
}

func (m GalleryModel) renderConfirm() string {
	card, ok := m.ctrl.Deck().Get(m.pendingID)
	if !ok {
		return ""
	}
	typeInfo := card.TypeInfo()
	prioInfo := card.PriorityInfo()
	rows := []components.TableRow{
		{Label: m.loc.T("form.type"), Value: m.loc.T(typeInfo.LabelKey) + " " + typeInfo.Icon},
		{Label: m.loc.T("form.priority"), Value: m.loc.T(prioInfo.LabelKey) + " " + cards.Stars(card.Priority), ValueColor: tagColor(prioInfo.Color)},
	}
	return components.ConfirmPreviewDialog(
		m.loc.Tf("gallery.delete_title", components.SanitizeOneLine(card.Title)),
		m.loc.T("gallery.confirm_delete"),
		m.loc.T("dialog.hint"),
		rows,
		m.width,
	)
}

func (m GalleryModel) line(s string) string {
	if m.loc.RTL() {
		return components.AlignLines(s, m.width)
	}
	return s
}

func (m GalleryModel) hints() []string {
	if m.confirming {
		return []string{
			components.Hint("y", m.loc.T("hint.confirm")),
			components.Hint("n", m.loc.T("hint.cancel")),
		}
	}
	hints := make([]string, 0, 4)
	if len(m.items) > 0 {
		hints = append(hints,
			components.Hint("↑/↓", m.loc.T("hint.scroll")),
			components.Hint("d", m.loc.T("hint.delete")),
		)
	}
	return append(hints,
		components.Hint("esc", m.loc.T("hint.back")),
		components.Hint("q", m.loc.T("hint.quit")),
	)
}
