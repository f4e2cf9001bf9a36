package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Identity errors
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Content hierarchy errors
var (
	ErrExamTypeNotFound       = errors.New("exam type not found")
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrAcademicPeriodNotFound = errors.New("academic period not found")
	ErrMaterialNotFound       = errors.New("material not found")
	ErrDocumentNotFound       = errors.New("document not found")
	ErrQuestionNotFound       = errors.New("question not found")
	ErrHasChildren            = errors.New("entity has child rows and cannot be deleted")
)

// File serving errors
var (
	ErrPathEscape   = errors.New("path escapes storage root")
	ErrFileNotFound = errors.New("file not found")
)

// NewNotFoundError creates a CustomError for a missing resource.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a CustomError for conflict situations.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewBadRequestError creates a CustomError for malformed input.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// CustomError carries a sentinel plus a response-facing message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the sentinel for errors.Is.
func (e *CustomError) Unwrap() error {
	return e.Err
}
