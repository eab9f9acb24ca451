package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/C41M50N/llm/core"
)

// MockProvider is a configurable mock implementation of
// core.ProviderInstance for testing. Every handle it hands out shares the
// provider's configured response and call log.
type MockProvider struct {
	mu sync.Mutex

	// Configurable response
	Response *core.Result

	// Error injection
	GenerateErr error

	// Call tracking
	ModelCalls    []string
	GenerateCalls []core.Request

	// Custom handler (overrides default behavior)
	OnGenerate func(ctx context.Context, req core.Request) (*core.Result, error)
}

// NewMockProvider creates a MockProvider with sensible defaults.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Response: &core.Result{
			Text:  "mock response",
			Usage: &core.Usage{InputTokens: 10, OutputTokens: 5},
		},
	}
}

// Model implements core.ProviderInstance.
func (m *MockProvider) Model(id string) core.ModelHandle {
	m.mu.Lock()
	m.ModelCalls = append(m.ModelCalls, id)
	m.mu.Unlock()
	return &mockHandle{provider: m, model: id}
}

type mockHandle struct {
	provider *MockProvider
	model    string
}

func (h *mockHandle) Generate(ctx context.Context, req core.Request) (*core.Result, error) {
	m := h.provider
	m.mu.Lock()
	m.GenerateCalls = append(m.GenerateCalls, req)
	m.mu.Unlock()

	if m.OnGenerate != nil {
		return m.OnGenerate(ctx, req)
	}
	if m.GenerateErr != nil {
		return nil, m.GenerateErr
	}
	return m.Response, nil
}

// Reset clears all tracked calls.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ModelCalls = nil
	m.GenerateCalls = nil
}

// SetTextResponse configures a plain-text response.
func (m *MockProvider) SetTextResponse(text string) {
	m.Response = &core.Result{
		Text:  text,
		Usage: &core.Usage{InputTokens: 10, OutputTokens: 5},
	}
}

// SetObjectResponse configures a structured response.
func (m *MockProvider) SetObjectResponse(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.Response = &core.Result{
		Object: data,
		Usage:  &core.Usage{InputTokens: 10, OutputTokens: 5},
	}
	return nil
}

// SetUsage overrides the reported usage; nil models a provider that reports
// none.
func (m *MockProvider) SetUsage(usage *core.Usage) {
	m.Response.Usage = usage
}
