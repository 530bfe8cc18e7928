package services

import (
	"fmt"

	"christoffel-menu/models"
)

// MenuForm is the state behind one menu-entry screen: the draft being edited,
// the errors from the last submit and the accepted entries. It is owned by a
// single screen and is not safe for concurrent use.
type MenuForm struct {
	draft   models.FormDraft
	errs    models.ValidationErrors
	entries []models.MenuEntry
}

func NewMenuForm() *MenuForm {
	return &MenuForm{errs: models.ValidationErrors{}}
}

// SetName and the other setters replace the value and clear that field's
// error.
func (f *MenuForm) SetName(v string) {
	f.draft.Name = v
	delete(f.errs, models.FieldName)
}

func (f *MenuForm) SetDescription(v string) {
	f.draft.Description = v
	delete(f.errs, models.FieldDescription)
}

func (f *MenuForm) SetPrice(v string) {
	f.draft.PriceText = v
	delete(f.errs, models.FieldPrice)
}

func (f *MenuForm) SetCourse(v string) {
	f.draft.Course = v
	delete(f.errs, models.FieldCourse)
}

// Set updates a field by name.
func (f *MenuForm) Set(field models.Field, v string) error {
	switch field {
	case models.FieldName:
		f.SetName(v)
	case models.FieldDescription:
		f.SetDescription(v)
	case models.FieldPrice:
		f.SetPrice(v)
	case models.FieldCourse:
		f.SetCourse(v)
	default:
		return fmt.Errorf("set %q: %w", field, ErrUnknownField)
	}
	return nil
}

// Value returns the current draft text of a field.
func (f *MenuForm) Value(field models.Field) string {
	switch field {
	case models.FieldName:
		return f.draft.Name
	case models.FieldDescription:
		return f.draft.Description
	case models.FieldPrice:
		return f.draft.PriceText
	case models.FieldCourse:
		return f.draft.Course
	}
	return ""
}

func (f *MenuForm) Draft() models.FormDraft { return f.draft }

func (f *MenuForm) Errors() models.ValidationErrors { return f.errs.Clone() }

// Error returns the message for field, or "" when it is valid.
func (f *MenuForm) Error(field models.Field) string { return f.errs[field] }

func (f *MenuForm) Entries() []models.MenuEntry {
	out := make([]models.MenuEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

func (f *MenuForm) Count() int { return len(f.entries) }

// Submit validates the draft. On failure the errors are recorded and a
// *ValidationError is returned; the entries and the draft are left as they
// were. On success the entry is appended and the draft and errors are reset.
func (f *MenuForm) Submit() (models.MenuEntry, error) {
	entry, errs := ValidateDraft(f.draft)
	f.errs = errs
	if len(errs) > 0 {
		return models.MenuEntry{}, &ValidationError{Errors: errs.Clone()}
	}
	f.entries = append(f.entries, entry)
	f.draft = models.FormDraft{}
	return entry, nil
}
