package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for badge status filters
	_ = v.RegisterValidation("badgestatus", validateBadgeStatus)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// without leaking internal struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "badgestatus":
			errs[field] = "Invalid badge status"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidBadgeStatuses defines the status filters the vendor accepts
var ValidBadgeStatuses = map[string]bool{
	"all":         true,
	"complete":    true,
	"incomplete":  true,
	"not_started": true,
}

// Custom validation function for badge status filters
func validateBadgeStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	// Empty falls back to the default filter
	if status == "" {
		return true
	}
	return ValidBadgeStatuses[strings.ToLower(status)]
}
