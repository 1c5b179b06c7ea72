package api

import (
	"fmt"

	"github.com/stitchdesk/stitchdesk/internal/common"
)

// APIError is an unclassified backend failure: any error status that is not
// 401, 404 or 422. Message carries whatever the backend supplied, falling
// back to the HTTP status text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// ValidationError is the backend's 422 response with the field→message-list
// mapping intact, so callers can attribute errors to specific inputs.
// It matches common.ErrValidation via errors.Is.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return "validation error"
}

func (e *ValidationError) Unwrap() error {
	return common.ErrValidation
}

// errorBody is the generic error payload shape returned by the backend.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}
