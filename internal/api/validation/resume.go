package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateNonBlank rejects strings that are empty or whitespace only.
// The required tag alone lets "   " through, which would produce a
// resume with blank headline fields.
func ValidateNonBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// RegisterResumeValidators registers all resume-related custom validators
func RegisterResumeValidators(v *validator.Validate) {
	v.RegisterValidation("nonblank", ValidateNonBlank)
}
