package services

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"christoffel-menu/models"
)

const (
	MsgNameRequired        = "Dish name is required"
	MsgDescriptionRequired = "Description is required"
	MsgCourseRequired      = "Course is required"
	MsgPriceInvalid        = "The price must be a positive number"
)

var (
	ErrInvalidDraft = errors.New("invalid menu draft")
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError carries every failed check of one submission.
type ValidationError struct {
	Errors models.ValidationErrors
}

func (e *ValidationError) Error() string {
	var parts []string
	for _, f := range models.Fields {
		if msg, ok := e.Errors[f]; ok {
			parts = append(parts, string(f)+": "+msg)
		}
	}
	return ErrInvalidDraft.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidDraft }

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParsePrice reads the numeric prefix of text ("12.5", " 45 ", "12abc" -> 12).
// ok is false when there is no number or it is not finite.
func ParsePrice(text string) (price float64, ok bool) {
	s := strings.TrimSpace(text)
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ValidateDraft runs all four checks independently. When errs is empty the
// returned entry holds the trimmed and parsed values.
func ValidateDraft(d models.FormDraft) (models.MenuEntry, models.ValidationErrors) {
	name := strings.TrimSpace(d.Name)
	description := strings.TrimSpace(d.Description)
	price, priceOK := ParsePrice(d.PriceText)

	errs := models.ValidationErrors{}
	if name == "" {
		errs[models.FieldName] = MsgNameRequired
	}
	if description == "" {
		errs[models.FieldDescription] = MsgDescriptionRequired
	}
	if d.Course == "" {
		errs[models.FieldCourse] = MsgCourseRequired
	}
	if !priceOK || price <= 0 {
		errs[models.FieldPrice] = MsgPriceInvalid
	}

	return models.MenuEntry{
		Name:        name,
		Description: description,
		Course:      d.Course,
		Price:       price,
	}, errs
}
