package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func anthropicTestProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicMessageJSON(text, stopReason string) map[string]any {
	return map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stopReason,
		"usage": map[string]any{
			"input_tokens":  50,
			"output_tokens": 30,
		},
	}
}

func TestAnthropicGenerate(t *testing.T) {
	p := anthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessageJSON(`{"answer":"468"}`, "end_turn"))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "你是一名小学老师。",
		Messages:  []Message{{Role: RoleUser, Content: "出一道题"}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"answer":"468"}` {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 50 || resp.Usage.OutputTokens != 30 || resp.Usage.TotalTokens != 80 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.Truncated {
		t.Error("end_turn reported as truncated")
	}
}

func TestAnthropicTruncation(t *testing.T) {
	p := anthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessageJSON(`{"answer":`, "max_tokens"))
	})

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "出一道题"}},
		MaxTokens: 8,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !resp.Truncated {
		t.Error("max_tokens stop not reported as truncated")
	}
}

func TestAnthropicRateLimited(t *testing.T) {
	p := anthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "rate_limit_error", "message": "rate limit exceeded"},
		})
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "出一道题"}},
		MaxTokens: 100,
	})
	var f *Fault
	if !errors.As(err, &f) || f.Kind != FaultRateLimited {
		t.Fatalf("err = %v, want rate-limited fault", err)
	}
}

func TestAnthropicServerError(t *testing.T) {
	p := anthropicTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "internal error"},
		})
	})

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "出一道题"}},
		MaxTokens: 100,
	})
	var f *Fault
	if !errors.As(err, &f) || f.Kind != FaultUnavailable {
		t.Fatalf("err = %v, want unavailable fault", err)
	}
}

func TestAnthropicAliases(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"}, // pass-through
	}
	for _, tt := range tests {
		if got := canonicalModel(tt.in, anthropicAliases); got != tt.want {
			t.Errorf("canonicalModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnthropicTurns(t *testing.T) {
	turns := anthropicTurns([]Message{
		{Role: RoleUser, Content: "出一道题"},
		{Role: RoleAssistant, Content: "好的"},
	})
	if len(turns) != 2 {
		t.Fatalf("turns = %d, want 2", len(turns))
	}
	if turns[0].Role != anthropic.MessageParamRoleUser || turns[1].Role != anthropic.MessageParamRoleAssistant {
		t.Errorf("roles = %s, %s", turns[0].Role, turns[1].Role)
	}
}
