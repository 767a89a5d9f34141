package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

// Validator checks request structs against their validate tags, including the
// custom itemid and slot tags
type Validator struct {
	validate *validator.Validate
}

var defaultValidator = sync.OnceValue(func() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("itemid", validateItemID)
	_ = v.RegisterValidation("slot", validateSlot)
	return &Validator{validate: v}
})

// InitValidator builds the shared validator up front instead of on the first request
func InitValidator() {
	defaultValidator()
}

func GetValidator() *Validator {
	return defaultValidator()
}

func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

var tagMessages = map[string]string{
	"required": "This field is required",
	"itemid":   "Invalid item id",
	"slot":     "Invalid slot",
	"dive":     "Invalid entry",
	"max":      "Must be at most %s",
	"min":      "Must be at least %s",
	"ne":       "Must not be %s",
}

// FormatValidationError maps each failing field (lower-cased JSON-ish name) to a
// readable message without exposing Go struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	fields := make(map[string]string, len(verrs))
	for _, e := range verrs {
		msg, ok := tagMessages[e.Tag()]
		switch {
		case !ok:
			msg = "Invalid value"
		case strings.Contains(msg, "%s"):
			msg = fmt.Sprintf(msg, e.Param())
		}
		fields[strings.ToLower(e.Field())] = msg
	}
	return fields
}

// validateItemID rejects ids containing whitespace or control characters.
// Empty values pass; pair it with "required".
func validateItemID(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	})
}

func validateSlot(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, ok := domain.ParseSlotType(s)
	return ok
}
