// Package config loads the declarative half of a client registry: a YAML
// catalog of model aliases with their provider keys, underlying model ids,
// and optional pricing. Provider factories stay in code; the catalog only
// names them.
package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/C41M50N/llm"
)

// Catalog represents a model catalog sourced from disk.
//
//	models:
//	  fast:
//	    provider: groq
//	    model: llama-3.3-70b-versatile
//	  smart:
//	    provider: anthropic
//	    model: claude-sonnet-4-5
//	    costs:
//	      input: 3.0
//	      output: 15.0
type Catalog struct {
	Models map[string]Model `json:"models" yaml:"models"`
}

// Model is one catalog entry. Costs are USD per 1,000,000 tokens and may be
// omitted entirely when pricing is not tracked for the alias.
type Model struct {
	Provider string `json:"provider" yaml:"provider"`
	Model    string `json:"model" yaml:"model"`
	Costs    *Costs `json:"costs,omitempty" yaml:"costs,omitempty"`
}

// Costs mirrors llm.ModelCosts in catalog form.
type Costs struct {
	Input  float64 `json:"input" yaml:"input"`
	Output float64 `json:"output" yaml:"output"`
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}

// Parse decodes catalog YAML and checks that every entry names a provider
// and a model id. Whether the provider key actually exists is llm.New's
// call, since only the caller knows the factory set.
func Parse(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for _, alias := range sortedAliases(catalog.Models) {
		entry := catalog.Models[alias]
		if entry.Provider == "" {
			return nil, fmt.Errorf("model %q: missing provider", alias)
		}
		if entry.Model == "" {
			return nil, fmt.Errorf("model %q: missing model id", alias)
		}
	}
	return &catalog, nil
}

// ModelEntries converts the catalog into the registry form llm.New accepts.
func (c *Catalog) ModelEntries() map[string]llm.ModelEntry {
	entries := make(map[string]llm.ModelEntry, len(c.Models))
	for alias, m := range c.Models {
		entry := llm.ModelEntry{Provider: m.Provider, ModelID: m.Model}
		if m.Costs != nil {
			entry.Costs = &llm.ModelCosts{InputUSD: m.Costs.Input, OutputUSD: m.Costs.Output}
		}
		entries[alias] = entry
	}
	return entries
}

// Aliases returns the catalog's aliases in sorted order.
func (c *Catalog) Aliases() []string {
	return sortedAliases(c.Models)
}

func sortedAliases(models map[string]Model) []string {
	aliases := make([]string, 0, len(models))
	for alias := range models {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
