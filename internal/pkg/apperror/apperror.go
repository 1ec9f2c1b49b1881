package apperror

import "net/http"

// AppError is an error that knows which HTTP status it maps to.
// The underlying error, if any, is kept for logging but never exposed.
type AppError struct {
	Code    int    // HTTP status code (e.g. 400, 404)
	Message string // User-facing error message
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest creates a 400 AppError.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message)
}

// NotFound creates a 404 AppError.
func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message)
}

// Internal creates a 500 AppError.
func Internal(message string) *AppError {
	return New(http.StatusInternalServerError, message)
}
