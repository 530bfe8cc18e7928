package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"christoffel-menu/config"
	"christoffel-menu/models"
	"christoffel-menu/services"
)

func newScreen(feedback string) Model {
	cfg := config.Default().Screen
	cfg.Feedback = feedback
	return New(services.NewMenuForm(), cfg, nil)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	right    = tea.KeyMsg{Type: tea.KeyRight}
	left     = tea.KeyMsg{Type: tea.KeyLeft}
	ctrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestScreen_AddSoupOfTheDay(t *testing.T) {
	m := newScreen(config.FeedbackInline)

	m = press(t, m,
		typed("Soup of the Day"), tab,
		typed("Seasonal vegetable soup"), tab,
		typed("45"), tab,
		right, right, right, // placeholder -> Hors D'Oeurves -> Amuse-Bouche -> Soup
		tab, enter,
	)

	form := m.Form()
	require.Equal(t, 1, form.Count())
	assert.Equal(t, models.MenuEntry{
		Name: "Soup of the Day", Description: "Seasonal vegetable soup", Price: 45, Course: "Soup",
	}, form.Entries()[0])
	assert.Equal(t, models.FormDraft{}, form.Draft())

	view := m.View()
	assert.Contains(t, view, "Total: 1")
	assert.Contains(t, view, "Soup of the Day - Seasonal vegetable soup - R45 - Soup")
	assert.Contains(t, view, SuccessMessage)
	assert.Contains(t, view, models.CoursePlaceholder)

	// The acknowledgement is shown once.
	m = press(t, m, tab)
	assert.NotContains(t, m.View(), SuccessMessage)
}

func TestScreen_InlineErrors(t *testing.T) {
	m := newScreen(config.FeedbackInline)
	m = press(t, m, ctrlS)

	view := m.View()
	assert.Contains(t, view, services.MsgNameRequired)
	assert.Contains(t, view, services.MsgDescriptionRequired)
	assert.Contains(t, view, services.MsgPriceInvalid)
	assert.Contains(t, view, services.MsgCourseRequired)
	assert.Contains(t, view, "Total: 0")

	// Typing into name clears only the name error.
	m = press(t, m, typed("B"))
	view = m.View()
	assert.NotContains(t, view, services.MsgNameRequired)
	assert.Contains(t, view, services.MsgDescriptionRequired)
}

func TestScreen_SilentDiscardsWithoutFeedback(t *testing.T) {
	m := newScreen(config.FeedbackSilent)
	m = press(t, m, typed("Brie"), ctrlS)

	view := m.View()
	assert.NotContains(t, view, services.MsgDescriptionRequired)
	assert.Equal(t, 0, m.Form().Count())
	assert.Equal(t, "Brie", m.Form().Draft().Name)

	m = press(t, m, tab, typed("Aged"), tab, typed("30"), tab, left, left, left, ctrlS)
	require.Equal(t, 1, m.Form().Count())
	assert.Equal(t, "Cheese", m.Form().Entries()[0].Course)
	assert.NotContains(t, m.View(), SuccessMessage)
}

func TestScreen_CourseCycleWrapsToPlaceholder(t *testing.T) {
	m := newScreen(config.FeedbackInline)
	m = press(t, m, shiftTab, shiftTab) // save -> course
	require.Equal(t, focusCourse, m.focus)

	m = press(t, m, left)
	assert.Equal(t, "Mignardise", m.Form().Draft().Course)
	m = press(t, m, right)
	assert.Equal(t, "", m.Form().Draft().Course)
	assert.Contains(t, m.View(), models.CoursePlaceholder)
}

func TestScreen_FocusCycle(t *testing.T) {
	m := newScreen(config.FeedbackInline)
	for i := 1; i <= focusCount; i++ {
		m = press(t, m, tab)
		assert.Equal(t, i%focusCount, m.focus)
	}
	m = press(t, m, shiftTab)
	assert.Equal(t, focusSave, m.focus)
}

func TestScreen_EnterAdvancesFocus(t *testing.T) {
	m := newScreen(config.FeedbackInline)
	m = press(t, m, enter, enter, enter)
	assert.Equal(t, focusCourse, m.focus)
	assert.Equal(t, 0, m.Form().Count())
}

func TestScreen_Quit(t *testing.T) {
	m := newScreen(config.FeedbackInline)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestScreen_ResumesDraft(t *testing.T) {
	form := services.NewMenuForm()
	form.SetName("Terrine")
	form.SetCourse("Appetizer")

	m := New(form, config.Default().Screen, nil)
	assert.Equal(t, "Terrine", m.inputs[focusName].Value())
	assert.Contains(t, m.View(), "Appetizer")
}
