package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kaan/examportal/internal/app/models/dto"
	"github.com/kaan/examportal/internal/pkg/apperrors"
	"github.com/kaan/examportal/internal/pkg/auth"
	"github.com/kaan/examportal/internal/pkg/logger"
)

// HandleAPIError translates service errors into HTTP responses. Controllers
// delegate every non-binding error here so the sentinel-to-status mapping
// lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	if errors.As(err, &custom) && custom.Message != "" {
		message = custom.Message
	}

	respond := func(status int, fallback string) {
		if message == "" {
			message = fallback
		}
		c.JSON(status, dto.NewErrorResponse(message))
	}

	switch {
	case errors.Is(err, apperrors.ErrExamTypeNotFound):
		respond(http.StatusNotFound, "Exam type not found")
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		respond(http.StatusNotFound, "Department not found")
	case errors.Is(err, apperrors.ErrAcademicPeriodNotFound):
		respond(http.StatusNotFound, "Academic period not found")
	case errors.Is(err, apperrors.ErrMaterialNotFound):
		respond(http.StatusNotFound, "Material not found")
	case errors.Is(err, apperrors.ErrDocumentNotFound):
		respond(http.StatusNotFound, "Document not found")
	case errors.Is(err, apperrors.ErrQuestionNotFound):
		respond(http.StatusNotFound, "Question not found")
	case errors.Is(err, apperrors.ErrFileNotFound):
		respond(http.StatusNotFound, "File not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(http.StatusNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrPathEscape):
		respond(http.StatusBadRequest, "Invalid filename")
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		respond(http.StatusBadRequest, "Invalid request")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(http.StatusUnauthorized, "Account is disabled")
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, auth.ErrExpiredToken):
		respond(http.StatusUnauthorized, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenNotFound),
		errors.Is(err, apperrors.ErrTokenRevoked),
		errors.Is(err, auth.ErrInvalidSignature),
		errors.Is(err, auth.ErrClaimMismatch):
		respond(http.StatusUnauthorized, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(http.StatusForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(http.StatusConflict, "Email already exists")
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrHasChildren):
		respond(http.StatusConflict, "Conflict")
	default:
		// Details stay server-side; the response message is opaque.
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
