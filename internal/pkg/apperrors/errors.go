package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrValidationFailed      = errors.New("validation failed")
	ErrBadRequest            = errors.New("bad request")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrCredentialsRequired = NewCustomError(ErrValidationFailed, "Name and password are required")
)

// User errors
var (
	ErrUserNotFound      = NewCustomError(ErrResourceNotFound, "user not found")
	ErrUserAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "user already exists")
)

// Event errors
var (
	ErrEventNotFound    = NewCustomError(ErrResourceNotFound, "event not found")
	ErrInvalidEventDate = NewCustomError(ErrValidationFailed, "date must use the YYYY-MM-DD HH:MM:SS format")
)

// File errors
var (
	ErrFileNotFound    = NewCustomError(ErrResourceNotFound, "file not found")
	ErrBlobMissing     = NewCustomError(ErrResourceNotFound, "stored file content is missing")
	ErrNoFilePart      = NewCustomError(ErrBadRequest, "No file part")
	ErrNoFileSelected  = NewCustomError(ErrBadRequest, "No file selected")
	ErrInvalidFilename = NewCustomError(ErrBadRequest, "Invalid file name")
)

// NewValidationError wraps ErrValidationFailed with a user facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// Message returns the user facing message of err, falling back to err.Error()
func Message(err error) string {
	var custom *CustomError
	if errors.As(err, &custom) {
		return custom.Error()
	}
	return err.Error()
}
