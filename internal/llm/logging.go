package llm

import (
	"context"
	"time"

	"github.com/abhisek/educontent/internal/logger"
)

// LoggingProvider is a decorator that writes one structured log line per
// LLM call: purpose, model, token usage, latency and estimated cost.
type LoggingProvider struct {
	inner  Provider
	vendor string
	log    *logger.Logger
}

// WithLogging wraps p so that every Generate call is logged to log.
func WithLogging(p Provider, vendor string, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{inner: p, vendor: vendor, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	kv := []interface{}{
		"provider", l.vendor,
		"model", l.inner.ModelID(),
		"purpose", PurposeFrom(ctx),
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if req.Schema != nil {
		kv = append(kv, "schema", req.Schema.Name)
	}

	if err != nil {
		l.log.Warn("llm request failed", append(kv, "error", err)...)
		return nil, err
	}

	kv = append(kv,
		"served_by", resp.Model,
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"stop_reason", resp.StopReason,
	)
	if c := LookupCost(l.inner.ModelID()); c != nil {
		kv = append(kv, "cost_usd", c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
	}
	l.log.Info("llm request completed", kv...)

	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
