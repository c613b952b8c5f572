package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func openaiTestProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cc := openai.DefaultConfig("test-key")
	cc.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(cc),
		model:  "gpt-4o-mini",
	}
}

func openaiCompletionJSON(content, finishReason string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finishReason,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 20,
			"total_tokens":      60,
		},
	}
}

func TestOpenAIGenerate(t *testing.T) {
	p := openaiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaiCompletionJSON(`{"answer":"468"}`, "stop"))
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
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 20 || resp.Usage.TotalTokens != 60 {
		t.Errorf("usage = %+v", resp.Usage)
	}
	if resp.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", resp.Model)
	}
	if resp.Truncated {
		t.Error("stop reported as truncated")
	}
}

func TestOpenAITruncation(t *testing.T) {
	p := openaiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openaiCompletionJSON(`{"answer":`, "length"))
	})

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "出一道题"}},
		MaxTokens: 8,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !resp.Truncated {
		t.Error("length stop not reported as truncated")
	}
}

func TestOpenAIRateLimited(t *testing.T) {
	p := openaiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limit exceeded", "type": "requests"},
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

func TestOpenAIServerError(t *testing.T) {
	p := openaiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "internal error", "type": "server_error"},
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

func TestOpenAITurnsPutSystemFirst(t *testing.T) {
	turns := openaiTurns(Request{
		System: "你是一名小学老师。",
		Messages: []Message{
			{Role: RoleUser, Content: "出一道题"},
			{Role: RoleAssistant, Content: "好的"},
		},
	})
	if len(turns) != 3 {
		t.Fatalf("turns = %d, want 3", len(turns))
	}
	if turns[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("first role = %q, want system", turns[0].Role)
	}
	if turns[1].Role != openai.ChatMessageRoleUser || turns[2].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("roles = %q, %q", turns[1].Role, turns[2].Role)
	}
}

func TestOpenAITurnsWithoutSystem(t *testing.T) {
	turns := openaiTurns(Request{Messages: []Message{{Role: RoleUser, Content: "出一道题"}}})
	if len(turns) != 1 || turns[0].Role != openai.ChatMessageRoleUser {
		t.Errorf("turns = %+v", turns)
	}
}
