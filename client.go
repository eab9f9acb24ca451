// Package llm is a thin typed convenience layer over pluggable
// text-generation providers. Callers register named provider factories and
// named model aliases (provider key + underlying model id + optional cost
// rates); the Client resolves aliases, lazily constructs and caches provider
// instances, invokes the underlying model, and reports timing and cost
// metadata for every call.
package llm

import (
	"context"
	"io"
	"os"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/C41M50N/llm/core"
)

// Client is the entry point for generation across configured providers. It
// owns the runtime cache of resolved provider instances; the registry it was
// built from is immutable for the client's lifetime.
type Client struct {
	providers map[string]ProviderFactory
	models    map[string]ModelEntry
	defaults  ClientDefaults

	mu    sync.RWMutex
	cache map[string]core.ProviderInstance
	group singleflight.Group

	logw io.Writer
}

// ClientDefaults holds default values applied to requests that leave the
// corresponding field unset.
type ClientDefaults struct {
	Model           string   // Default model alias if none specified
	Temperature     *float64 // Default sampling temperature
	MaxOutputTokens int      // Default output token cap
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// New builds a Client from the given registry. Every model entry's provider
// key is validated against the provider mapping up front; a bad
// cross-reference fails here with *ConfigError rather than at first use. No
// provider factory runs during construction.
func New(cfg Config, opts ...ClientOption) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		providers: make(map[string]ProviderFactory, len(cfg.Providers)),
		models:    make(map[string]ModelEntry, len(cfg.Models)),
		cache:     make(map[string]core.ProviderInstance),
		logw:      os.Stderr,
	}
	for key, factory := range cfg.Providers {
		c.providers[key] = factory
	}
	for alias, entry := range cfg.Models {
		c.models[alias] = entry
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// resolveProvider returns the cached instance for key, running the factory
// on first use. Concurrent first uses are collapsed into a single factory
// run; a factory failure is returned as *ProviderInitError and never cached,
// so a later call retries from scratch.
func (c *Client) resolveProvider(ctx context.Context, key string) (core.ProviderInstance, error) {
	c.mu.RLock()
	instance, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return instance, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		// Re-check under the flight: a previous caller may have populated
		// the cache between our read and the group admission.
		c.mu.RLock()
		instance, ok := c.cache[key]
		c.mu.RUnlock()
		if ok {
			return instance, nil
		}

		factory := c.providers[key]
		instance, err := factory(ctx)
		if err != nil {
			return nil, &ProviderInitError{Provider: key, Err: err}
		}
		if instance == nil {
			return nil, &ProviderInitError{Provider: key, Err: errNilInstance}
		}

		c.mu.Lock()
		c.cache[key] = instance
		c.mu.Unlock()
		return instance, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(core.ProviderInstance), nil
}

// resolveModel maps a model alias to an invocable handle plus its registry
// entry. Default-model fallback happens in Generate so the resolved alias is
// available for logging and span attributes.
func (c *Client) resolveModel(ctx context.Context, alias string) (core.ModelHandle, ModelEntry, error) {
	if alias == "" {
		return nil, ModelEntry{}, &UnknownModelError{Model: alias, Err: ErrNoModel}
	}

	entry, ok := c.models[alias]
	if !ok {
		return nil, ModelEntry{}, &UnknownModelError{
			Model:     alias,
			Err:       ErrUnknownModel,
			Available: modelAliases(c.models),
		}
	}

	instance, err := c.resolveProvider(ctx, entry.Provider)
	if err != nil {
		return nil, ModelEntry{}, err
	}
	return instance.Model(entry.ModelID), entry, nil
}

// Models returns the registered model aliases.
func (c *Client) Models() []string {
	return modelAliases(c.models)
}

// Providers returns the registered provider keys.
func (c *Client) Providers() []string {
	return providerKeys(c.providers)
}

// HasModel checks if a model alias is registered.
func (c *Client) HasModel(alias string) bool {
	_, ok := c.models[alias]
	return ok
}

// ModelEntry returns the registry entry for an alias.
func (c *Client) ModelEntry(alias string) (ModelEntry, bool) {
	entry, ok := c.models[alias]
	return entry, ok
}
