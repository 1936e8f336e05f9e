package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// ApiError is the error type services hand back across the handler boundary.
// The middleware in error_handler.go translates it into the error envelope.
type ApiError struct {
	StatusCode int
	Message    string
	Data       interface{}
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(statusCode int, message string) *ApiError {
	return &ApiError{StatusCode: statusCode, Message: message}
}

// BadRequest names the offending field so the client can repair the request.
func BadRequest(message string) *ApiError {
	return NewApiError(fiber.StatusBadRequest, message)
}

// NotFound covers both the genuinely absent and the foreign-owned resource;
// callers must not be able to tell the two apart.
func NotFound(message string) *ApiError {
	return NewApiError(fiber.StatusNotFound, message)
}

// Internal wraps a persistence-layer failure; cause rides along as opaque
// envelope data.
func Internal(message string, cause error) *ApiError {
	e := NewApiError(fiber.StatusInternalServerError, message)
	if cause != nil {
		e.Data = cause.Error()
	}
	return e
}
