package llm

import (
	"context"
	"fmt"

	"github.com/wliu/gradewise/internal/store"
)

// NewProvider builds the configured provider, wires it into the audit
// log when one is given, and wraps the result in the retry policy.
// Retried attempts each produce their own audit record.
func NewProvider(ctx context.Context, cfg Config, log store.LLMLogRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if log != nil {
		base = WithAudit(base, cfg.Provider, log)
	}
	return WithRetry(base, cfg.Retry), nil
}
