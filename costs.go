package llm

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const tokensPerPriceUnit = 1_000_000

// CostBreakdown is the USD cost of a single call, derived from reported
// token usage and the model entry's configured rates.
type CostBreakdown struct {
	InputUSD  float64 `json:"input_cost_usd"`
	OutputUSD float64 `json:"output_cost_usd"`
	TotalUSD  float64 `json:"total_cost_usd"`
}

// Breakdown computes the cost of a call from token counts. A nil receiver
// (pricing not configured) yields nil, never a zeroed breakdown.
func (c *ModelCosts) Breakdown(inputTokens, outputTokens int) *CostBreakdown {
	if c == nil {
		return nil
	}
	in := float64(inputTokens) / tokensPerPriceUnit * c.InputUSD
	out := float64(outputTokens) / tokensPerPriceUnit * c.OutputUSD
	return &CostBreakdown{
		InputUSD:  in,
		OutputUSD: out,
		TotalUSD:  in + out,
	}
}

// usd renders amounts the way the log line wants them: en-US, dollar sign,
// exactly four fraction digits. Rounding happens only here; metadata keeps
// full float64 precision.
var usd = message.NewPrinter(language.AmericanEnglish)

// FormatUSD formats an amount as US-dollar currency with 4 fraction digits.
func FormatUSD(amount float64) string {
	return usd.Sprintf("$%.4f", amount)
}
