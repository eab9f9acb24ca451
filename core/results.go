package core

import "encoding/json"

// Usage captures token accounting reported by providers for a single call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Result represents a single generation response from a model handle.
type Result struct {
	Text string `json:"text"`

	// Object carries schema-validated structured output when the request
	// asked for it.
	Object json.RawMessage `json:"object,omitempty"`

	// Usage is nil when the provider reports no token accounting; callers
	// default the counts to zero.
	Usage *Usage `json:"usage,omitempty"`
}
