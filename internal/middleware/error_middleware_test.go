package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kaan/examportal/internal/pkg/apperrors"
	"github.com/kaan/examportal/internal/pkg/auth"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"material not found", apperrors.ErrMaterialNotFound, http.StatusNotFound, `{"success":false,"message":"Material not found"}`},
		{"exam type not found", apperrors.ErrExamTypeNotFound, http.StatusNotFound, `{"success":false,"message":"Exam type not found"}`},
		{"path escape", apperrors.ErrPathEscape, http.StatusBadRequest, `{"success":false,"message":"Invalid filename"}`},
		{"file missing", apperrors.ErrFileNotFound, http.StatusNotFound, `{"success":false,"message":"File not found"}`},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, `{"success":false,"message":"Invalid credentials"}`},
		{"disabled account", apperrors.ErrAccountDisabled, http.StatusUnauthorized, `{"success":false,"message":"Account is disabled"}`},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized, `{"success":false,"message":"Token expired"}`},
		{"bad signature", auth.ErrInvalidSignature, http.StatusUnauthorized, `{"success":false,"message":"Invalid token"}`},
		{"revoked token", apperrors.ErrTokenRevoked, http.StatusUnauthorized, `{"success":false,"message":"Invalid token"}`},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, `{"success":false,"message":"Email already exists"}`},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, `{"success":false,"message":"Permission denied"}`},
		{"conflict with message", apperrors.NewConflictError("Department has academic periods and cannot be deleted"), http.StatusConflict, `{"success":false,"message":"Department has academic periods and cannot be deleted"}`},
		{"bad request with message", apperrors.NewBadRequestError("At least one option must be marked correct"), http.StatusBadRequest, `{"success":false,"message":"At least one option must be marked correct"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// Unknown errors never leak their details to the client.
func TestHandleAPIErrorOpaqueInternal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	HandleAPIError(c, errors.New("pq: connection refused on 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rec.Body.String())
}
