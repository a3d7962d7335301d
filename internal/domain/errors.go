package domain

import (
	"errors"
	"fmt"
)

// APIError represents a standardized API error with HTTP status code
type APIError struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Title
}

// ValidationMessages maps validator tags to user-friendly messages
var ValidationMessages = map[string]string{
	"required": "This field is required",
	"email":    "Must be a valid email address",
	"max":      "Exceeds maximum length",
	"min":      "Below minimum length",
	"gte":      "Must be greater than or equal to minimum value",
	"lte":      "Must be less than or equal to maximum value",
	"oneof":    "Must be one of the allowed values",
	"dive":     "Contains an invalid entry",
}

// GetValidationMessage returns a human-readable message for a validation tag
func GetValidationMessage(tag string) string {
	if msg, ok := ValidationMessages[tag]; ok {
		return msg
	}
	return "Validation failed: " + tag
}

// Common error types for RFC 7807 Problem Details
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeNotFound      = "not_found"
	ErrorTypeBadRequest    = "bad_request"
	ErrorTypeConflict      = "conflict"
	ErrorTypeInternal      = "internal_error"
	ErrorTypeFilter        = "filter_error"
	ErrorTypeQuery         = "query_error"
	ErrorTypeDataFormat    = "data_format_error"
	ErrorTypeUnavailable   = "service_unavailable"
	ErrorTypeNotConfirmed  = "confirmation_required"
	ErrorTypeTooManyEmails = "too_many_recipients"
)

var (
	// ErrNoData is returned when the filters matched no rows. It is not a failure.
	ErrNoData = errors.New("no data matched the filters")

	// ErrViewUnavailable is returned when no delivery view connection is configured
	ErrViewUnavailable = errors.New("delivery view not available")

	// ErrSendNotConfirmed is returned when a send request lacks explicit confirmation
	ErrSendNotConfirmed = errors.New("send requires confirmation")

	// ErrUnknownNotificationKind is returned for an unsupported notification kind
	ErrUnknownNotificationKind = errors.New("unknown notification kind")

	// ErrTooManyRecipients is returned when a send exceeds the configured recipient limit
	ErrTooManyRecipients = errors.New("too many recipients")
)

// FilterValidationError reports a filter value that cannot be interpreted.
type FilterValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *FilterValidationError) Error() string {
	if e.Field == "" {
		return "invalid filter: " + e.Reason
	}
	return fmt.Sprintf("invalid filter %s=%v: %s", e.Field, e.Value, e.Reason)
}

// QueryExecutionError wraps a failure of the delivery view query. No partial
// data accompanies it.
type QueryExecutionError struct {
	Op  string
	Err error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *QueryExecutionError) Unwrap() error {
	return e.Err
}

// DataFormatError reports a value the normalizer could not coerce. It aborts
// the whole pipeline run.
type DataFormatError struct {
	Row    int
	Column string
	Value  interface{}
	Reason string
}

func (e *DataFormatError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("data format error in column %q: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("data format error at row %d column %q (value %v): %s", e.Row, e.Column, e.Value, e.Reason)
}

// AttachmentGenerationError reports a spreadsheet or calendar build failure.
type AttachmentGenerationError struct {
	Kind string
	Err  error
}

func (e *AttachmentGenerationError) Error() string {
	return fmt.Sprintf("failed to generate %s attachment: %v", e.Kind, e.Err)
}

func (e *AttachmentGenerationError) Unwrap() error {
	return e.Err
}

// DataQualityNotice is a degraded-output warning shown next to best-effort
// results when optional columns are missing. It is never returned as an error.
type DataQualityNotice struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
