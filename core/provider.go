package core

import "context"

// ProviderInstance is a resolved provider: a source of model handles for a
// single vendor or endpoint. Instances are produced by factories registered
// with the client and are cached after first resolution, so implementations
// must be safe for concurrent use.
type ProviderInstance interface {
	// Model binds an underlying model id and returns its handle. Binding is
	// synchronous and performs no I/O.
	Model(id string) ModelHandle
}

// ModelHandle is the invocable reference to one underlying model. Generate
// is the only operation this layer consumes from the SDK.
type ModelHandle interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// ProviderInstanceFunc adapts a plain binding function to ProviderInstance.
type ProviderInstanceFunc func(id string) ModelHandle

// Model implements ProviderInstance.
func (f ProviderInstanceFunc) Model(id string) ModelHandle { return f(id) }

// ModelHandleFunc adapts a plain generation function to ModelHandle.
type ModelHandleFunc func(ctx context.Context, req Request) (*Result, error)

// Generate implements ModelHandle.
func (f ModelHandleFunc) Generate(ctx context.Context, req Request) (*Result, error) {
	return f(ctx, req)
}
