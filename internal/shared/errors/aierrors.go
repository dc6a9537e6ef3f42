package errors

import (
	"errors"
	"net/http"
)

// AI enrichment error types. These are only surfaced for operations whose
// entire purpose is the AI call (reply drafting, daily summaries,
// recategorization). Advisory enrichment paths swallow failures and fall
// back to defaults instead.
const (
	ErrorTypeAIMisconfigured ErrorType = "ai_misconfigured"
	ErrorTypeAIUnavailable   ErrorType = "ai_unavailable"
	ErrorTypeAIRateLimited   ErrorType = "ai_rate_limited"
)

// NewAIMisconfiguredError creates an error for a missing or disabled AI
// configuration. The caller can act on this by configuring the provider.
func NewAIMisconfiguredError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeAIMisconfigured,
		Message: message,
		Code:    http.StatusInternalServerError,
		Details: firstDetail(details),
	}
}

// NewAIUnavailableError creates an error for a transient provider failure.
// The caller can act on this by retrying later.
func NewAIUnavailableError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeAIUnavailable,
		Message: message,
		Code:    http.StatusServiceUnavailable,
		Details: firstDetail(details),
	}
}

// NewAIRateLimitedError creates an error for provider-side rate limiting.
func NewAIRateLimitedError(message string, details ...string) *AppError {
	return &AppError{
		Type:    ErrorTypeAIRateLimited,
		Message: message,
		Code:    http.StatusTooManyRequests,
		Details: firstDetail(details),
	}
}

// IsAIError reports whether err carries one of the AI error types.
func IsAIError(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	switch appErr.Type {
	case ErrorTypeAIMisconfigured, ErrorTypeAIUnavailable, ErrorTypeAIRateLimited:
		return true
	}
	return false
}
