package llm

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrUnknownModel is returned when a model alias is not registered.
	ErrUnknownModel = errors.New("model alias not registered")

	// ErrNoModel is returned when no model is specified and no default is set.
	ErrNoModel = errors.New("no model specified")

	// errNilInstance marks a factory that returned neither an instance nor
	// an error.
	errNilInstance = errors.New("factory returned nil provider instance")
)

// ConfigError reports an invalid registry at client construction: a model
// entry referencing a provider key absent from the provider mapping, or a
// nil factory.
type ConfigError struct {
	Model     string   // The model alias with the bad reference
	Provider  string   // The provider key it referenced
	Reason    string   // Optional detail beyond the missing key
	Available []string // Registered provider keys
}

func (e *ConfigError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "unknown provider"
	}
	return fmt.Sprintf("model %q: %s %q (available providers: %v)", e.Model, reason, e.Provider, e.Available)
}

// UnknownModelError provides detailed information about alias resolution
// failures during Generate.
type UnknownModelError struct {
	Model     string   // The alias that failed to resolve
	Err       error    // ErrUnknownModel or ErrNoModel
	Available []string // Registered model aliases
}

func (e *UnknownModelError) Error() string {
	if len(e.Available) > 0 {
		return fmt.Sprintf("model %q: %v (available models: %v)", e.Model, e.Err, e.Available)
	}
	return fmt.Sprintf("model %q: %v", e.Model, e.Err)
}

func (e *UnknownModelError) Unwrap() error {
	return e.Err
}

// ProviderInitError wraps a provider factory failure. The failure is never
// cached: a subsequent call for the same provider key re-runs the factory.
type ProviderInitError struct {
	Provider string
	Err      error
}

func (e *ProviderInitError) Error() string {
	return fmt.Sprintf("provider %q: init: %v", e.Provider, e.Err)
}

func (e *ProviderInitError) Unwrap() error {
	return e.Err
}
