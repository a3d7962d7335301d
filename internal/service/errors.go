package service

import "errors"

// Common service errors
var (
	// ErrInvalidInput is returned when a request parameter is not supported
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a named recipient is not found
	ErrNotFound = errors.New("resource not found")

	// ErrLogUnavailable is returned when the notification log database is disabled
	ErrLogUnavailable = errors.New("notification log not available")
)
