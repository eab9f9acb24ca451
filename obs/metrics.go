package obs

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	metricsOnce      sync.Once
	requestCounter   metric.Int64Counter
	latencyHistogram metric.Float64Histogram
	inputTokensHist  metric.Int64Histogram
	outputTokensHist metric.Int64Histogram
	costHistogram    metric.Float64Histogram
)

func installMetrics(m meter) {
	metricsOnce.Do(func() {
		if m == nil {
			return
		}
		requestCounter, _ = m.Int64Counter("llm.requests", metric.WithDescription("Total generation requests"))
		latencyHistogram, _ = m.Float64Histogram("llm.request.latency_ms", metric.WithDescription("Generation latency (ms)"))
		inputTokensHist, _ = m.Int64Histogram("llm.tokens.input", metric.WithDescription("Input tokens"))
		outputTokensHist, _ = m.Int64Histogram("llm.tokens.output", metric.WithDescription("Output tokens"))
		costHistogram, _ = m.Float64Histogram("llm.cost_usd", metric.WithDescription("Per-call cost (USD)"))
	})
}

type meter interface {
	Int64Counter(string, ...metric.Int64CounterOption) (metric.Int64Counter, error)
	Float64Histogram(string, ...metric.Float64HistogramOption) (metric.Float64Histogram, error)
	Int64Histogram(string, ...metric.Int64HistogramOption) (metric.Int64Histogram, error)
}

func recordRequest(attrs ...attribute.KeyValue) {
	if requestCounter != nil {
		requestCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	}
}

func recordLatency(ms float64, attrs ...attribute.KeyValue) {
	if latencyHistogram != nil {
		latencyHistogram.Record(context.Background(), ms, metric.WithAttributes(attrs...))
	}
}

func recordUsage(usage UsageTokens, attrs ...attribute.KeyValue) {
	ctx := context.Background()
	if inputTokensHist != nil {
		inputTokensHist.Record(ctx, int64(usage.InputTokens), metric.WithAttributes(attrs...))
	}
	if outputTokensHist != nil {
		outputTokensHist.Record(ctx, int64(usage.OutputTokens), metric.WithAttributes(attrs...))
	}
	if costHistogram != nil && usage.CostUSD > 0 {
		costHistogram.Record(ctx, usage.CostUSD, metric.WithAttributes(attrs...))
	}
}
