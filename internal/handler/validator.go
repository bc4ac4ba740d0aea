package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/growth"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// addressPattern matches ledger addresses: upper-case base32 text
var addressPattern = regexp.MustCompile(`^[A-Z2-7]{1,64}$`)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation("address", validateAddress)
	_ = v.RegisterValidation("action_tag", validateActionTag)

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

// ValidateVar validates a single value against a tag
func (v *Validator) ValidateVar(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
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
		case "address":
			errs[field] = "Invalid account address"
		case "action_tag":
			errs[field] = "Unknown action"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excluded_with":
			errs[field] = fmt.Sprintf("Cannot be combined with %s", strings.ToLower(e.Param()))
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// IsValidAddress reports whether s looks like a ledger address
func IsValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

func validateAddress(fl validator.FieldLevel) bool {
	a := fl.Field().String()
	// empty is handled by 'required'
	if a == "" {
		return true
	}
	return IsValidAddress(a)
}

func validateActionTag(fl validator.FieldLevel) bool {
	_, err := growth.ParseAction(fl.Field().String())
	return err == nil
}
