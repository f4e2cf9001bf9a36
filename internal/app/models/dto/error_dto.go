package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single field-keyed validation failure.
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"email must be a valid email address"`
}

// ValidationErrorResponse carries a field-keyed list of validation failures.
type ValidationErrorResponse struct {
	Success bool         `json:"success" example:"false"`
	Message string       `json:"message" example:"Validation failed"`
	Errors  []FieldError `json:"errors"`
}

// NewValidationErrorResponse wraps field errors in the failure envelope.
func NewValidationErrorResponse(fieldErrors []FieldError) ValidationErrorResponse {
	return ValidationErrorResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// FieldErrorsFromBinding translates a gin binding error into field-keyed
// errors. Non-validator errors (malformed JSON etc.) map to a single "body"
// entry.
func FieldErrorsFromBinding(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
			Message: messageForTag(fe),
		})
	}
	return fieldErrors
}

func messageForTag(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
