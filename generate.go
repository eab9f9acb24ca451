package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/C41M50N/llm/core"
	"github.com/C41M50N/llm/obs"
	"github.com/C41M50N/llm/schema"
)

// GenerateParams describes a single generation call.
type GenerateParams struct {
	// Model is the registered alias to invoke. Falls back to the client's
	// default model when empty.
	Model string `json:"model"`

	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`

	// Output requests structured output against the given schema. The schema
	// is passed through to the provider untouched.
	Output *schema.Schema `json:"output,omitempty"`

	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"max_output_tokens,omitempty"`

	// LogKey enables the one-line generation summary, tagged with this key.
	LogKey string `json:"log_key,omitempty"`
}

// GenerateMetadata reports timing, usage, and cost for one call.
type GenerateMetadata struct {
	RequestID string `json:"request_id"`

	// ResponseTimeMS covers the model invocation only; lazy provider
	// resolution on first use is excluded.
	ResponseTimeMS int64 `json:"response_time_ms"`

	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`

	// Cost is nil when the model entry has no configured rates. Absence
	// means "not configured", not "free".
	Cost *CostBreakdown `json:"cost,omitempty"`
}

// GenerateResponse is the result of a generation call. Object is set exactly
// when the request carried an output schema; Text carries the plain result
// otherwise.
type GenerateResponse struct {
	Text     string           `json:"text"`
	Object   json.RawMessage  `json:"object,omitempty"`
	Metadata GenerateMetadata `json:"metadata"`
}

// Generate resolves the model alias, invokes the underlying model, and
// returns its output with timing and cost metadata. Resolution failures
// surface as *UnknownModelError or *ProviderInitError; anything the provider
// itself returns propagates unchanged, with no retry or translation.
func (c *Client) Generate(ctx context.Context, params GenerateParams) (*GenerateResponse, error) {
	alias := params.Model
	if alias == "" {
		alias = c.defaults.Model
	}
	handle, entry, err := c.resolveModel(ctx, alias)
	if err != nil {
		return nil, err
	}

	req := core.Request{
		Model:           entry.ModelID,
		Prompt:          params.Prompt,
		System:          params.System,
		Temperature:     params.Temperature,
		MaxOutputTokens: params.MaxOutputTokens,
		OutputSchema:    params.Output,
	}
	if req.Temperature == nil {
		req.Temperature = c.defaults.Temperature
	}
	if req.MaxOutputTokens == 0 {
		req.MaxOutputTokens = c.defaults.MaxOutputTokens
	}

	requestID := uuid.NewString()
	ctx, rec := obs.StartRequest(ctx, "llm.generate",
		attribute.String("llm.request_id", requestID),
		attribute.String("llm.model_alias", alias),
		attribute.String("llm.provider", entry.Provider),
		attribute.String("llm.model", entry.ModelID),
	)

	start := time.Now()
	result, err := handle.Generate(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		rec.End(err, obs.UsageTokens{})
		return nil, err
	}

	inputTokens, outputTokens := 0, 0
	if result.Usage != nil {
		inputTokens = result.Usage.InputTokens
		outputTokens = result.Usage.OutputTokens
	}
	cost := entry.Costs.Breakdown(inputTokens, outputTokens)

	usage := obs.UsageTokens{InputTokens: inputTokens, OutputTokens: outputTokens}
	if cost != nil {
		usage.CostUSD = cost.TotalUSD
	}
	rec.End(nil, usage)

	if params.LogKey != "" {
		c.emitLog(params.LogKey, alias, elapsed, cost)
	}

	resp := &GenerateResponse{
		Text: result.Text,
		Metadata: GenerateMetadata{
			RequestID:      requestID,
			ResponseTimeMS: elapsed.Milliseconds(),
			InputTokens:    inputTokens,
			OutputTokens:   outputTokens,
			Cost:           cost,
		},
	}
	if params.Output != nil {
		resp.Object = result.Object
	}
	return resp, nil
}

// GenerateTyped generates structured output and decodes it into T. The
// params must carry an output schema; validation against it is the
// provider's job, so this only unmarshals.
func GenerateTyped[T any](ctx context.Context, c *Client, params GenerateParams) (T, GenerateMetadata, error) {
	var out T
	if params.Output == nil {
		return out, GenerateMetadata{}, fmt.Errorf("generate typed: params.Output schema is required")
	}
	resp, err := c.Generate(ctx, params)
	if err != nil {
		return out, GenerateMetadata{}, err
	}
	if err := json.Unmarshal(resp.Object, &out); err != nil {
		return out, resp.Metadata, fmt.Errorf("decode structured output: %w", err)
	}
	return out, resp.Metadata, nil
}
