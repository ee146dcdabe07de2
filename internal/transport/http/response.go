// Package http contains the thin HTTP plumbing around the analytics
// adapters and the history store: routing, request-parameter extraction and
// JSON serialization. All domain logic lives below this layer.
package http

import (
	"net/http"

	"github.com/go-chi/render"

	apierrors "storelens/internal/errors"
)

// Response is the uniform envelope of every read/query operation.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
}

func respondData(w http.ResponseWriter, r *http.Request, data any) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, Response{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, r *http.Request, message, id string) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, Response{Success: true, Message: message, ID: id})
}

// respondError converts any error into the failure envelope, wrapping
// unexpected errors with the endpoint's fallback message.
func respondError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	apiErr := apierrors.AsAPIError(err, fallbackMessage)
	render.Status(r, apiErr.StatusCode)
	render.JSON(w, r, Response{Success: false, Message: apiErr.Message})
}
