package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourses_FixedTable(t *testing.T) {
	cs := Courses()
	assert.Len(t, cs, 12)
	assert.Equal(t, "Hors D'Oeurves", cs[0].Name)
	assert.Equal(t, "Mignardise", cs[11].Name)
	for i, c := range cs {
		assert.Equal(t, i+1, c.ID)
	}

	// The returned slice is a copy.
	cs[0].Name = "changed"
	assert.Equal(t, "Hors D'Oeurves", Courses()[0].Name)
}

func TestCourseLookup(t *testing.T) {
	c, ok := CourseByName("Palate")
	assert.True(t, ok)
	assert.Equal(t, "Cleanser", c.Type)

	_, ok = CourseByName("")
	assert.False(t, ok)
	_, ok = CourseByName("soup")
	assert.False(t, ok)

	c, ok = CourseByID(3)
	assert.True(t, ok)
	assert.Equal(t, "Soup", c.Name)
	_, ok = CourseByID(0)
	assert.False(t, ok)
	_, ok = CourseByID(13)
	assert.False(t, ok)
}

func TestMenuEntryLine(t *testing.T) {
	tests := []struct {
		entry MenuEntry
		want  string
	}{
		{
			MenuEntry{Name: "Soup of the Day", Description: "Seasonal vegetable soup", Course: "Soup", Price: 45},
			"Soup of the Day - Seasonal vegetable soup - R45 - Soup",
		},
		{
			MenuEntry{Name: "Tart", Description: "Lemon", Course: "Dessert", Price: 12.5},
			"Tart - Lemon - R12.5 - Dessert",
		},
	}
	for _, tt := range tests {
		got := tt.entry.Line(DefaultCurrency)
		if got != tt.want {
			t.Errorf("Line() = %q, want %q", got, tt.want)
		}
	}
}

func TestValidationErrorsClone(t *testing.T) {
	v := ValidationErrors{FieldName: "Dish name is required"}
	c := v.Clone()
	delete(c, FieldName)
	assert.Contains(t, v, FieldName)
}
