package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/wliu/gradewise/internal/store"
)

// auditor records one event per provider round trip: purpose, model,
// latency, token usage and estimated cost. A failing audit log warns
// on stderr and never fails the call itself.
type auditor struct {
	inner    Provider
	provider string
	log      store.LLMLogRepo
}

// WithAudit wraps a provider so every call lands in the audit log.
// name is the configured provider name (anthropic, openai, gemini).
func WithAudit(p Provider, name string, log store.LLMLogRepo) Provider {
	return &auditor{inner: p, provider: name, log: log}
}

func (a *auditor) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := a.inner.Generate(ctx, req)

	rec := store.LLMCallData{
		Provider:  a.provider,
		Model:     a.inner.ModelID(),
		Purpose:   req.Purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if rec.Purpose == "" {
		rec.Purpose = "unspecified"
	}
	if resp != nil {
		if resp.Model != "" {
			rec.Model = resp.Model
		}
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
		rec.CostUSD = costUSD(rec.Model, resp.Usage)
	}
	if err != nil {
		rec.Error = err.Error()
	}

	if logErr := a.log.AppendLLMCall(ctx, rec); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM call not recorded: %v\n", logErr)
	}
	return resp, err
}

func (a *auditor) ModelID() string { return a.inner.ModelID() }
