package core

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors surfaced by providers. The client layer never
// translates these; they reach callers exactly as a handle returned them.
type ErrorCode string

const (
	ErrRateLimited     ErrorCode = "rate_limited"
	ErrContentFiltered ErrorCode = "content_filtered"
	ErrBadRequest      ErrorCode = "bad_request"
	ErrTransient       ErrorCode = "transient"
	ErrProviderError   ErrorCode = "provider_error"
	ErrTimeout         ErrorCode = "timeout"
	ErrCanceled        ErrorCode = "canceled"
)

// AIError provides rich context for failures originating inside a provider.
type AIError struct {
	Code      ErrorCode
	Message   string
	Status    int
	Retryable bool
	wrapped   error
}

func (e *AIError) Error() string {
	if e == nil {
		return ""
	}
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.wrapped)
	}
	return e.Message
}

func (e *AIError) Unwrap() error { return e.wrapped }

// WrapError creates an AIError with the provided code, passing through
// values that already carry one.
func WrapError(err error, code ErrorCode) *AIError {
	if err == nil {
		return nil
	}
	var ai *AIError
	if errors.As(err, &ai) {
		return ai
	}
	return &AIError{Code: code, Message: err.Error(), wrapped: err}
}

// NewError builds an AIError explicitly.
func NewError(code ErrorCode, message string) *AIError {
	return &AIError{Code: code, Message: message}
}

func classify(code ErrorCode) func(error) bool {
	return func(err error) bool {
		var ai *AIError
		if err == nil {
			return false
		}
		if errors.As(err, &ai) {
			return ai.Code == code
		}
		return false
	}
}

// Helper predicates for common error handling patterns.
var (
	IsRateLimited     = classify(ErrRateLimited)
	IsContentFiltered = classify(ErrContentFiltered)
	IsBadRequest      = classify(ErrBadRequest)
	IsTransient       = classify(ErrTransient)
	IsTimeout         = classify(ErrTimeout)
	IsCanceled        = classify(ErrCanceled)
)
