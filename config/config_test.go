package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleCatalog = `
models:
  fast:
    provider: groq
    model: llama-3.3-70b-versatile
  smart:
    provider: anthropic
    model: claude-sonnet-4-5
    costs:
      input: 3.0
      output: 15.0
`

func TestParse(t *testing.T) {
	catalog, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(catalog.Models) != 2 {
		t.Fatalf("expected 2 models, got %d", len(catalog.Models))
	}

	fast := catalog.Models["fast"]
	if fast.Provider != "groq" || fast.Model != "llama-3.3-70b-versatile" {
		t.Errorf("unexpected entry %+v", fast)
	}
	if fast.Costs != nil {
		t.Errorf("fast should have no pricing, got %+v", fast.Costs)
	}

	smart := catalog.Models["smart"]
	if smart.Costs == nil {
		t.Fatal("smart should have pricing")
	}
	if smart.Costs.Input != 3.0 || smart.Costs.Output != 15.0 {
		t.Errorf("unexpected pricing %+v", smart.Costs)
	}
}

func TestParseMissingProvider(t *testing.T) {
	_, err := Parse([]byte("models:\n  fast:\n    model: some-model\n"))
	if err == nil {
		t.Fatal("expected error for missing provider")
	}
}

func TestParseMissingModelID(t *testing.T) {
	_, err := Parse([]byte("models:\n  fast:\n    provider: groq\n"))
	if err == nil {
		t.Fatal("expected error for missing model id")
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("models: [not a map"))
	if err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	catalog, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(catalog.Models) != 2 {
		t.Errorf("expected 2 models, got %d", len(catalog.Models))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestModelEntries(t *testing.T) {
	catalog, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	entries := catalog.ModelEntries()
	smart, ok := entries["smart"]
	if !ok {
		t.Fatal("expected smart entry")
	}
	if smart.Provider != "anthropic" || smart.ModelID != "claude-sonnet-4-5" {
		t.Errorf("unexpected entry %+v", smart)
	}
	if smart.Costs == nil || smart.Costs.InputUSD != 3.0 || smart.Costs.OutputUSD != 15.0 {
		t.Errorf("unexpected costs %+v", smart.Costs)
	}
	if fast := entries["fast"]; fast.Costs != nil {
		t.Errorf("fast should carry no costs, got %+v", fast.Costs)
	}
}

func TestAliasesSorted(t *testing.T) {
	catalog, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	aliases := catalog.Aliases()
	if len(aliases) != 2 || aliases[0] != "fast" || aliases[1] != "smart" {
		t.Errorf("expected sorted [fast smart], got %v", aliases)
	}
}
