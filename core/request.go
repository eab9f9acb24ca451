package core

import "github.com/C41M50N/llm/schema"

// Request represents a single generation request handed to a model handle.
type Request struct {
	Model string `json:"model,omitempty"`

	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`

	// Temperature is nil when the caller did not set one; providers treat
	// absence and zero differently, so the distinction is preserved.
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"max_output_tokens,omitempty"`

	// OutputSchema requests structured output. The schema is opaque to this
	// layer and validated by the provider.
	OutputSchema *schema.Schema `json:"output_schema,omitempty"`
}

// Clone returns a copy of the request with its pointer fields duplicated.
func (r Request) Clone() Request {
	clone := r
	if r.Temperature != nil {
		t := *r.Temperature
		clone.Temperature = &t
	}
	return clone
}
