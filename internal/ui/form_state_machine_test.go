package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gravitrone/flashcards/cli/internal/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormTypingMirrorsIntoDraft(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := fillFormKeys(NewFormModel(ctrl, testLocale()))

	d := ctrl.Draft()
	assert.Equal(t, "Verbs", d.Title)
	assert.Equal(t, "Irregular verbs", d.Description)
	assert.Equal(t, string(cards.TypeEducation), d.Type)
	assert.Equal(t, "3", d.Priority)
	assert.Equal(t, []string{"grammar"}, d.Tags)
	assert.Equal(t, "", d.TagInput)
	assert.Equal(t, "", m.tag.Value())
	assert.True(t, d.IsValid())
}

func TestFormKeepsLongPastedText(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := NewFormModel(ctrl, testLocale())
	title := strings.Repeat("t", 200)
	desc := strings.Repeat("d", 600)
	tag := strings.Repeat("g", 60)

	m, _ = m.Update(keyRunes(title))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(keyRunes(desc))
	m, _ = m.setFocus(fieldTags)
	m, _ = m.Update(keyRunes(tag))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	d := ctrl.Draft()
	assert.Equal(t, title, d.Title)
	assert.Equal(t, desc, d.Description)
	assert.Equal(t, []string{tag}, d.Tags)
}

func TestFormEnterInTagFieldNeverSubmits(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := fillFormKeys(NewFormModel(ctrl, testLocale()))
	require.Equal(t, fieldTags, m.focus)

	m, _ = m.Update(keyRunes("verbs"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, cards.StateEditing, ctrl.State())
	assert.Equal(t, []string{"grammar", "verbs"}, ctrl.Draft().Tags)
}

func TestFormDuplicateTagStaysInInput(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := fillFormKeys(NewFormModel(ctrl, testLocale()))

	m, _ = m.Update(keyRunes("grammar"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"grammar"}, ctrl.Draft().Tags)
	assert.Equal(t, "grammar", m.tag.Value())
	assert.Equal(t, "grammar", ctrl.Draft().TagInput)
}

func TestFormTagInputIgnoresTypingWhenFull(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := NewFormModel(ctrl, testLocale())
	m, _ = m.setFocus(fieldTags)

	for _, tag := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		m, _ = m.Update(keyRunes(tag))
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	require.Len(t, ctrl.Draft().Tags, cards.MaxTags)

	m, _ = m.Update(keyRunes("h"))
	assert.Equal(t, "", m.tag.Value())
	assert.Equal(t, 0, ctrl.Draft().TagsRemaining())
}

func TestFormBackspaceOnEmptyTagInputRemovesLastTag(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := NewFormModel(ctrl, testLocale())
	m, _ = m.setFocus(fieldTags)
	for _, tag := range []string{"a", "b"} {
		m, _ = m.Update(keyRunes(tag))
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, []string{"a"}, ctrl.Draft().Tags)

	m, _ = m.Update(keyRunes("c"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", m.tag.Value())
	assert.Equal(t, []string{"a"}, ctrl.Draft().Tags, "backspace with text edits the input")
}

func TestFormChipCursorRemovesSelectedTag(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := NewFormModel(ctrl, testLocale())
	m, _ = m.setFocus(fieldTags)
	for _, tag := range []string{"a", "b", "c"} {
		m, _ = m.Update(keyRunes(tag))
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.tagCursor)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.tagCursor)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, []string{"a", "c"}, ctrl.Draft().Tags)
	assert.Equal(t, 1, m.tagCursor)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.tagCursor, "cursor wraps")
}

func TestFormCtrlDRemovesLastTag(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := NewFormModel(ctrl, testLocale())
	m, _ = m.setFocus(fieldTags)
	m, _ = m.Update(keyRunes("a"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(keyRunes("b"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.Equal(t, []string{"a"}, ctrl.Draft().Tags)
}

func TestFormRemoveThenAddRestoresCapacity(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := NewFormModel(ctrl, testLocale())
	m, _ = m.setFocus(fieldTags)
	for _, tag := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		m, _ = m.Update(keyRunes(tag))
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(keyRunes("z"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "z"}, ctrl.Draft().Tags)
}

func TestFormTypeSelectorCyclesThroughUnset(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := NewFormModel(ctrl, testLocale())
	m, _ = m.setFocus(fieldType)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, string(cards.TypeFun), ctrl.Draft().Type)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "", ctrl.Draft().Type)

	for _, want := range []cards.CardType{cards.TypeEducation, cards.TypeReminder, cards.TypeExercise} {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
		assert.Equal(t, string(want), ctrl.Draft().Type)
	}
}

func TestFormPrioritySelectorWraps(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := NewFormModel(ctrl, testLocale())
	m, _ = m.setFocus(fieldPriority)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "5", ctrl.Draft().Priority)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "", ctrl.Draft().Priority)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "1", ctrl.Draft().Priority)
}

func TestFormFocusNavigation(t *testing.T) {
	m := NewFormModel(testController(cards.ModeGallery), testLocale())
	assert.Equal(t, fieldTitle, m.focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldTags, m.focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldTitle, m.focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, fieldDescription, m.focus)

	m, _ = m.setFocus(fieldType)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, fieldPriority, m.focus)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, fieldType, m.focus)
}

func TestFormSubmitInvalidIsNoop(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := NewFormModel(ctrl, testLocale())
	m, _ = m.Update(keyRunes("only title"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Equal(t, cards.StateEditing, ctrl.State())
}

func TestFormSubmitStartsDelayAndIgnoresInputWhileBusy(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := fillFormKeys(NewFormModel(ctrl, testLocale()))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Equal(t, cards.StateSubmitting, ctrl.State())

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	m, _ = m.Update(keyRunes("x"))
	assert.Equal(t, []string{"grammar"}, ctrl.Draft().Tags)
	assert.Equal(t, "", m.tag.Value())
	assert.Equal(t, 0, ctrl.Deck().Len())
}

func TestSubmitAfterDeliversDoneMessage(t *testing.T) {
	msg := submitAfter(0)()
	done, ok := msg.(submitDoneMsg)
	require.True(t, ok)
	assert.False(t, done.at.IsZero())
}

func TestFormSyncFromDraftClearsWidgets(t *testing.T) {
	ctrl := testController(cards.ModeAlert)
	m := fillFormKeys(NewFormModel(ctrl, testLocale()))
	m, _ = m.Update(keyRunes("pending"))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	_, ok := ctrl.Complete(fixedNow)
	require.True(t, ok)

	m, _ = m.syncFromDraft()
	assert.Equal(t, "", m.title.Value())
	assert.Equal(t, "", m.desc.Value())
	assert.Equal(t, "", m.tag.Value())
	assert.Equal(t, fieldTitle, m.focus)
	assert.False(t, m.hasInput())
}

func TestFormHasInput(t *testing.T) {
	ctrl := testController(cards.ModeGallery)
	m := NewFormModel(ctrl, testLocale())
	assert.False(t, m.hasInput())

	m, _ = m.Update(keyRunes("x"))
	assert.True(t, m.hasInput())
}
