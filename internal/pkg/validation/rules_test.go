package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestValidateLoginInputOK(t *testing.T) {
	email, fieldErrors := ValidateLoginInput("Student@Example.com", "secret")
	assert.Empty(t, fieldErrors)
	assert.Equal(t, "student@example.com", email)
}

func TestValidateLoginInput(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		wantField string
	}{
		{"missing email", "", "secret", "email"},
		{"too short email", "a@b", "secret", "email"},
		{"too long email", strings.Repeat("a", 250) + "@example.com", "secret", "email"},
		{"malformed email", "not-an-email", "secret", "email"},
		{"missing password", "user@example.com", "", "password"},
		{"too long password", "user@example.com", strings.Repeat("x", 129), "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fieldErrors := ValidateLoginInput(tt.email, tt.password)
			if assert.Len(t, fieldErrors, 1) {
				assert.Equal(t, tt.wantField, fieldErrors[0].Field)
			}
		})
	}
}

func TestValidateLoginInputCollectsBothFields(t *testing.T) {
	_, fieldErrors := ValidateLoginInput("", "")
	assert.Len(t, fieldErrors, 2)
}
