package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapError(t *testing.T) {
	base := errors.New("connection reset")
	wrapped := WrapError(base, ErrTransient)

	if wrapped.Code != ErrTransient {
		t.Errorf("expected code %q, got %q", ErrTransient, wrapped.Code)
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to the original")
	}

	// Wrapping an AIError keeps the original code.
	again := WrapError(fmt.Errorf("outer: %w", wrapped), ErrProviderError)
	if again.Code != ErrTransient {
		t.Errorf("expected original code to survive, got %q", again.Code)
	}
}

func TestWrapErrorNil(t *testing.T) {
	if got := WrapError(nil, ErrTransient); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestClassifiers(t *testing.T) {
	err := NewError(ErrRateLimited, "slow down")

	if !IsRateLimited(err) {
		t.Error("expected IsRateLimited to match")
	}
	if IsTimeout(err) {
		t.Error("IsTimeout should not match a rate-limit error")
	}
	if IsRateLimited(errors.New("plain")) {
		t.Error("plain errors should not classify")
	}
	if IsRateLimited(nil) {
		t.Error("nil should not classify")
	}
}
