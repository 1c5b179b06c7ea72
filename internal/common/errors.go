// Package common defines shared constants and sentinel errors used across
// the StitchDesk client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Transport-level errors (no usable response was received).
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors. ErrUnauthorized means the backend rejected the
	// credential; the stored token has already been cleared by the time
	// callers see it.
	ErrUnauthorized = errors.New("unauthorized")

	// Resource-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors (the backend rejected specific fields).
	ErrValidation = errors.New("validation error")

	// Configuration errors.
	ErrMissingBaseURL = errors.New("base API URL is required")
)
