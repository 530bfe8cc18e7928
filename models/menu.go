package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the prefix shown before prices in the menu list.
const DefaultCurrency = "R"

// MenuEntry is an accepted dish. Entries are only produced by a successful
// form submission and are never edited afterwards.
type MenuEntry struct {
	Name        string
	Description string
	Course      string
	Price       float64
}

// Line renders the entry the way the menu list shows it:
// "name - description - R45 - course".
func (e MenuEntry) Line(currency string) string {
	return fmt.Sprintf("%s - %s - %s%s - %s", e.Name, e.Description, currency, FormatPrice(e.Price), e.Course)
}

// FormatPrice prints a price without trailing zeros (45, 12.5).
func FormatPrice(price float64) string {
	return decimal.NewFromFloat(price).String()
}

// FormDraft holds the not-yet-submitted form values.
type FormDraft struct {
	Name        string
	Description string
	PriceText   string
	Course      string
}

// Field names a draft input.
type Field string

const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldPrice       Field = "price"
	FieldCourse      Field = "course"
)

// Fields lists the inputs in the order the form shows them.
var Fields = []Field{FieldName, FieldDescription, FieldPrice, FieldCourse}

// Label is the heading shown above the input.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldDescription:
		return "Description"
	case FieldPrice:
		return "Price"
	case FieldCourse:
		return "Courses"
	}
	return string(f)
}

// ValidationErrors maps a field to its error message.
type ValidationErrors map[Field]string

// Clone returns an independent copy.
func (v ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(v))
	for k, msg := range v {
		out[k] = msg
	}
	return out
}
