package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockReplaysResponsesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`), Usage: Usage{InputTokens: 12, OutputTokens: 3, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "一"}}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(first.Content) != `{"n":1}` || first.Usage.InputTokens != 12 {
		t.Errorf("first = %s, %d input tokens", first.Content, first.Usage.InputTokens)
	}

	second, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(second.Content) != `{"n":2}` {
		t.Errorf("second = %s", second.Content)
	}
}

func TestMockRecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		Purpose: PurposeQuestionGen,
		System:  "出题老师",
	})

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	if mock.Calls[0].Purpose != PurposeQuestionGen || mock.Calls[0].System != "出题老师" {
		t.Errorf("recorded request = %+v", mock.Calls[0])
	}
}

func TestMockEmptyQueueIsUnavailable(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(context.Background(), Request{})
	var f *Fault
	if !errors.As(err, &f) || f.Kind != FaultUnavailable {
		t.Fatalf("err = %v, want unavailable fault", err)
	}
}

func TestMockReturnsQueuedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: rateLimited(errors.New("429"))})

	_, err := mock.Generate(context.Background(), Request{})
	var f *Fault
	if !errors.As(err, &f) || f.Kind != FaultRateLimited {
		t.Fatalf("err = %v, want rate-limited fault", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "frontier"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("ANTHROPIC_API_KEY", "a-key")

	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("cfg = %+v, ok = %v, want gemini first", cfg, ok)
	}
}

func TestDiscoverConfigNothingSet(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider discovered")
	}
}
