// Defines the API error object and structured validation errors.

package notion

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a Notion API error response.
// Reference: https://developers.notion.com/reference/status-codes
type ErrorCode string

const (
	ErrCodeInvalidJSON         ErrorCode = "invalid_json"
	ErrCodeInvalidRequestURL   ErrorCode = "invalid_request_url"
	ErrCodeInvalidRequest      ErrorCode = "invalid_request"
	ErrCodeValidationError     ErrorCode = "validation_error"
	ErrCodeMissingVersion      ErrorCode = "missing_version"
	ErrCodeUnauthorized        ErrorCode = "unauthorized"
	ErrCodeRestrictedResource  ErrorCode = "restricted_resource"
	ErrCodeObjectNotFound      ErrorCode = "object_not_found"
	ErrCodeConflictError       ErrorCode = "conflict_error"
	ErrCodeRateLimited         ErrorCode = "rate_limited"
	ErrCodeInternalServerError ErrorCode = "internal_server_error"
	ErrCodeServiceUnavailable  ErrorCode = "service_unavailable"
	ErrCodeDatabaseUnavailable ErrorCode = "database_connection_unavailable"
	ErrCodeGatewayTimeout      ErrorCode = "gateway_timeout"
)

// APIError is the error object returned by the Notion API.
// Reference: https://developers.notion.com/reference/errors
type APIError struct {
	Object  string    `json:"object"` // Always "error".
	Status  int       `json:"status"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

// Retryable reports whether the error indicates a transient condition
// worth retrying.
func (e *APIError) Retryable() bool {
	switch e.Code {
	case ErrCodeRateLimited, ErrCodeInternalServerError, ErrCodeServiceUnavailable,
		ErrCodeDatabaseUnavailable, ErrCodeGatewayTimeout, ErrCodeConflictError:
		return true
	}
	return false
}

// ValidationError reports a model field that fails validation.
type ValidationError struct {
	// Field is the JSON path of the offending field, e.g.
	// "properties.Due date.date.end".
	Field string
	// Reason is a human-readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// MissingField returns a ValidationError for a required field that is
// absent or empty.
func MissingField(field string) error {
	return &ValidationError{Field: field, Reason: "required field is missing"}
}

// InvalidField returns a ValidationError for a field with an invalid
// value.
func InvalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// prefixField rewraps a ValidationError from a nested object with the
// parent field path prepended. Non-validation errors pass through.
func prefixField(prefix string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		f := ve.Field
		if f == "" {
			f = prefix
		} else {
			f = prefix + "." + f
		}
		return &ValidationError{Field: f, Reason: ve.Reason}
	}
	return fmt.Errorf("%s: %w", prefix, err)
}
