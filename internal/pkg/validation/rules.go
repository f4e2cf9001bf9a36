package validation

import (
	"regexp"
	"strings"

	"github.com/kaan/examportal/internal/app/models/dto"
)

// Login payload limits
const (
	EmailMinLength    = 5
	EmailMaxLength    = 255
	PasswordMinLength = 1
	PasswordMaxLength = 128
)

// EmailPattern is applied after lower-casing, so it only needs lower-case classes.
var EmailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// NormalizeEmail trims and lower-cases an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateLoginInput enforces the login payload shape: a syntactically valid,
// case-normalized email of 5-255 chars and a present password of 1-128 chars.
// It returns the normalized email and a field-keyed list of failures.
func ValidateLoginInput(email, password string) (string, []dto.FieldError) {
	var fieldErrors []dto.FieldError

	normalized := NormalizeEmail(email)
	switch {
	case normalized == "":
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "email", Message: "email is required"})
	case len(normalized) < EmailMinLength:
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "email", Message: "email must be at least 5 characters"})
	case len(normalized) > EmailMaxLength:
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "email", Message: "email must be at most 255 characters"})
	case !EmailPattern.MatchString(normalized):
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "email", Message: "email must be a valid email address"})
	}

	switch {
	case password == "":
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "password", Message: "password is required"})
	case len(password) > PasswordMaxLength:
		fieldErrors = append(fieldErrors, dto.FieldError{Field: "password", Message: "password must be at most 128 characters"})
	}

	return normalized, fieldErrors
}
