// Package errors provides standardized error handling for the interview
// backend. Errors carry a stable code so HTTP handlers and logs agree on
// what went wrong.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Evaluation pipeline errors. These are always recovered internally by
	// the orchestrator and never reach an HTTP response.
	ErrCodeRemoteUnavailable    ErrorCode = "REMOTE_UNAVAILABLE"
	ErrCodeMalformedModelReply  ErrorCode = "MALFORMED_MODEL_REPLY"

	// Boundary errors, surfaced as structured responses.
	ErrCodeInvalidJurisdiction ErrorCode = "INVALID_JURISDICTION"
	ErrCodeMissingInput        ErrorCode = "MISSING_INPUT"

	// Startup / catalog errors.
	ErrCodeCatalogLoadFailed   ErrorCode = "CATALOG_LOAD_FAILED"
	ErrCodeConfigurationFailed ErrorCode = "CONFIGURATION_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewRemoteUnavailableError creates a retryable error for a network failure,
// timeout, or non-2xx status from the inference endpoint.
func NewRemoteUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRemoteUnavailable,
		Message:   "Inference endpoint unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewRemoteStatusError creates a retryable error carrying the HTTP status
// returned by the inference endpoint.
func NewRemoteStatusError(statusCode int, body string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRemoteUnavailable,
		Message:   fmt.Sprintf("Inference endpoint returned status %d", statusCode),
		Details:   body,
		Retryable: true,
		Metadata:  map[string]interface{}{"statusCode": statusCode},
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedModelReplyError creates a non-retryable error for a reply the
// parser could not use. The raw reply is kept in Details for diagnostics.
func NewMalformedModelReplyError(details string, raw string) *StandardError {
	e := &StandardError{
		Code:      ErrCodeMalformedModelReply,
		Message:   "Unexpected response format from model",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
	if raw != "" {
		e.Metadata = map[string]interface{}{"rawResponse": raw}
	}
	return e
}

// NewInvalidJurisdictionError creates a non-retryable error for an
// unsupported country code.
func NewInvalidJurisdictionError(countryCode string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidJurisdiction,
		Message:   "Tax brackets not available for country",
		Details:   fmt.Sprintf("countryCode: %s", countryCode),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingInputError creates a non-retryable error for a missing or empty
// required field.
func NewMissingInputError(field string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingInput,
		Message:   fmt.Sprintf("Missing required field: %s", field),
		Details:   fmt.Sprintf("field: %s", field),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogLoadFailedError creates an error for an unreadable or invalid
// question catalog.
func NewCatalogLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogLoadFailed,
		Message:   "Question catalog load failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigurationError creates a fatal startup configuration error.
func NewConfigurationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigurationFailed,
		Message:   "Invalid configuration",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatus maps an error code to the HTTP status the boundary should
// respond with. Pipeline errors never surface, but an exhaustive mapping
// keeps the handlers honest if one ever leaks.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidJurisdiction, ErrCodeMissingInput:
		return http.StatusBadRequest
	case ErrCodeRemoteUnavailable:
		return http.StatusBadGateway
	case ErrCodeCatalogLoadFailed, ErrCodeConfigurationFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 4. Utility Functions
// ==========================

// AsStandardError normalizes any error to a *StandardError.
func AsStandardError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "REMOTE") || strings.Contains(codeStr, "MODEL"):
		return "AI"
	case strings.Contains(codeStr, "JURISDICTION") || strings.Contains(codeStr, "INPUT"):
		return "VALIDATION"
	case strings.Contains(codeStr, "CATALOG") || strings.Contains(codeStr, "CONFIGURATION"):
		return "STARTUP"
	default:
		return "OTHER"
	}
}
