package llm

import (
	"fmt"
	"time"
)

// emitLog writes the one-line generation summary. Logging is best effort: a
// misbehaving writer must never fail the generation that triggered it, so
// write errors are discarded and panics recovered.
func (c *Client) emitLog(logKey, alias string, elapsed time.Duration, cost *CostBreakdown) {
	defer func() { _ = recover() }()

	suffix := ""
	if cost != nil {
		suffix = fmt.Sprintf(" cost: %s (in: %s, out: %s)",
			FormatUSD(cost.TotalUSD), FormatUSD(cost.InputUSD), FormatUSD(cost.OutputUSD))
	}
	_, _ = fmt.Fprintf(c.logw, "[LLM][%s] %.2fs using %s%s\n", logKey, elapsed.Seconds(), alias, suffix)
}
