package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single violation reported back to the client
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldNames maps struct field names to the JSON/form field names clients sent
var fieldNames = map[string]string{
	// Contact form
	"Name":     "name",
	"Email":    "email",
	"LoanType": "loanType",
	"Message":  "message",
	// Career form
	"FullName":   "fullName",
	"Phone":      "phone",
	"Role":       "role",
	"Experience": "experience",
	"Resume":     "resume",
	// Loan application
	"ReferenceID": "referenceId",
	"Mobile":      "mobile",
	"DOB":         "dob",
	"Income":      "income",
	"Employment":  "employment",
	"LoanAmount":  "loanAmount",
	"City":        "city",
}

// FormatValidationErrors converts validator.ValidationErrors into
// field-level violations. Non-validation errors (malformed JSON,
// wrong content type) collapse into a single "body" entry.
func FormatValidationErrors(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Field:   fieldName(e.Field()),
			Message: formatSingleError(e),
		})
	}
	return out
}

func fieldName(structField string) string {
	if name, ok := fieldNames[structField]; ok {
		return name
	}
	// Fallback: lowercase first rune
	return strings.ToLower(structField[:1]) + structField[1:]
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	name := fieldName(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", name, param)
		}
		return fmt.Sprintf("%s must be at least %s", name, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", name, param)
		}
		return fmt.Sprintf("%s must be at most %s", name, param)

	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)

	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces, and common punctuation (. ' - /)", name)

	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number (7-15 digits, with/without +)", name)

	default:
		return fmt.Sprintf("%s is invalid (%s)", name, e.Tag())
	}
}
