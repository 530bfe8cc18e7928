package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"christoffel-menu/config"
	"christoffel-menu/services"
)

func TestCourseKeyboard(t *testing.T) {
	kb := courseKeyboard()
	// placeholder row, six rows of two courses, back row
	assert.Len(t, kb.InlineKeyboard, 8)
	assert.Equal(t, "Select a course", kb.InlineKeyboard[0][0].Text)
	assert.Equal(t, "Hors D'Oeurves", kb.InlineKeyboard[1][0].Text)
	assert.Equal(t, "Mignardise", kb.InlineKeyboard[6][1].Text)
}

func TestParseCourseData(t *testing.T) {
	tests := []struct {
		data string
		want string
		ok   bool
	}{
		{cbCoursePrefix + "0", "", true},
		{cbCoursePrefix + "8", "Palate", true},
		{cbCoursePrefix + "12", "Mignardise", true},
		{cbCoursePrefix + "13", "", false},
		{cbCoursePrefix + "x", "", false},
	}
	for _, tt := range tests {
		got, ok := parseCourseData(tt.data)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseCourseData(%q) = %q, %v, want %q, %v", tt.data, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRenderCard_EmptyForm(t *testing.T) {
	card := renderCard(services.NewMenuForm(), config.Default().Screen)
	assert.Contains(t, card, "Christoffel")
	assert.Contains(t, card, "Total: 0")
	assert.Contains(t, card, "(no dishes yet)")
	assert.Contains(t, card, "Name: —")
	assert.Contains(t, card, "Courses: Select a course")
}

func TestRenderList_Currency(t *testing.T) {
	form := services.NewMenuForm()
	form.SetName("Tart")
	form.SetDescription("Lemon")
	form.SetPrice("12.5")
	form.SetCourse("Dessert")
	_, err := form.Submit()
	assert.NoError(t, err)

	cfg := config.Default().Screen
	cfg.Currency = "$"
	assert.Contains(t, renderList(form, cfg), "• Tart - Lemon - $12.5 - Dessert")
}
