package llm

import (
	"context"
	"sort"

	"github.com/C41M50N/llm/core"
)

// ProviderFactory constructs a provider instance. Factories run at most once
// per provider key for the lifetime of a client and must be pure: a retried
// factory (after a failure) has to be safe to run again from scratch.
type ProviderFactory func(ctx context.Context) (core.ProviderInstance, error)

// ModelCosts holds per-token pricing in USD per 1,000,000 tokens.
type ModelCosts struct {
	InputUSD  float64 `json:"input" yaml:"input"`
	OutputUSD float64 `json:"output" yaml:"output"`
}

// ModelEntry binds a model alias to a provider key, an underlying model id,
// and optional pricing. A nil Costs means pricing is not configured, which
// is distinct from a configured price of zero.
type ModelEntry struct {
	Provider string      `json:"provider" yaml:"provider"`
	ModelID  string      `json:"model" yaml:"model"`
	Costs    *ModelCosts `json:"costs,omitempty" yaml:"costs,omitempty"`
}

// Config is the static registry a client is built from: provider factories
// keyed by provider name and model entries keyed by alias. The client copies
// both maps at construction; later mutation of the originals has no effect.
type Config struct {
	Providers map[string]ProviderFactory
	Models    map[string]ModelEntry
}

// validate checks every model's cross-reference into the provider mapping.
// Factories are not executed here.
func (c Config) validate() error {
	for _, entry := range sortedEntries(c.Models) {
		factory, ok := c.Providers[entry.Provider]
		if !ok {
			return &ConfigError{
				Model:     entry.alias,
				Provider:  entry.Provider,
				Available: providerKeys(c.Providers),
			}
		}
		if factory == nil {
			return &ConfigError{
				Model:     entry.alias,
				Provider:  entry.Provider,
				Reason:    "nil provider factory",
				Available: providerKeys(c.Providers),
			}
		}
	}
	return nil
}

type aliasedEntry struct {
	ModelEntry
	alias string
}

// sortedEntries walks model entries in alias order so validation errors are
// deterministic.
func sortedEntries(models map[string]ModelEntry) []aliasedEntry {
	entries := make([]aliasedEntry, 0, len(models))
	for alias, entry := range models {
		entries = append(entries, aliasedEntry{ModelEntry: entry, alias: alias})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].alias < entries[j].alias })
	return entries
}

func providerKeys(providers map[string]ProviderFactory) []string {
	keys := make([]string, 0, len(providers))
	for key := range providers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func modelAliases(models map[string]ModelEntry) []string {
	aliases := make([]string, 0, len(models))
	for alias := range models {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
