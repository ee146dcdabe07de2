// Package errors defines the structured failures the core reports to its
// callers. Every operation surfaces either a not-found condition or a
// generic failure; nothing here ever escalates to a panic.
package errors

import (
	"net/http"

	"github.com/go-chi/render"
)

// APIError is a structured, renderable failure.
type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Render implements render.Renderer for chi/render.
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates an APIError with the given parameters.
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NotFound marks a missing source file or an export over an empty history.
func NotFound(message string) *APIError {
	return New(http.StatusNotFound, "NOT_FOUND", message)
}

// Internal marks any other failure during load, aggregation or export.
func Internal(message string) *APIError {
	return New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", message)
}

// InternalWithCause attaches the underlying error text as details.
func InternalWithCause(message string, err error) *APIError {
	e := Internal(message)
	if err != nil {
		e.Details = err.Error()
	}
	return e
}

// Validation marks a malformed request parameter.
func Validation(message string) *APIError {
	return New(http.StatusBadRequest, "VALIDATION_FAILED", message)
}

// AsAPIError converts any error into an APIError, wrapping unknown errors
// as a generic failure with the given message.
func AsAPIError(err error, fallbackMessage string) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return InternalWithCause(fallbackMessage, err)
}
