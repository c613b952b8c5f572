package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // pass-through
	}
	for _, tt := range tests {
		if got := canonicalModel(tt.in, geminiAliases); got != tt.want {
			t.Errorf("canonicalModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGeminiTurns(t *testing.T) {
	turns := geminiTurns([]Message{
		{Role: RoleUser, Content: "出一道题"},
		{Role: RoleAssistant, Content: "好的"},
	})
	if len(turns) != 2 {
		t.Fatalf("turns = %d, want 2", len(turns))
	}
	if turns[0].Role != "user" || turns[1].Role != "model" {
		t.Errorf("roles = %q, %q", turns[0].Role, turns[1].Role)
	}
	if turns[0].Parts[0].Text != "出一道题" {
		t.Errorf("text = %q", turns[0].Parts[0].Text)
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":       map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "integer"},
			"type_label": map[string]any{"type": "string", "enum": []any{"计算题", "应用题"}},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"text", "difficulty"},
	}

	s := geminiSchema(def)

	if s.Type != genai.TypeObject {
		t.Fatalf("type = %s, want OBJECT", s.Type)
	}
	if len(s.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(s.Properties))
	}
	if s.Properties["text"].Type != genai.TypeString {
		t.Errorf("text type = %s", s.Properties["text"].Type)
	}
	if s.Properties["difficulty"].Type != genai.TypeInteger {
		t.Errorf("difficulty type = %s", s.Properties["difficulty"].Type)
	}
	if len(s.Properties["type_label"].Enum) != 2 {
		t.Errorf("enum values = %d, want 2", len(s.Properties["type_label"].Enum))
	}
	if s.Properties["steps"].Type != genai.TypeArray || s.Properties["steps"].Items.Type != genai.TypeString {
		t.Errorf("steps schema = %+v", s.Properties["steps"])
	}
	if len(s.Required) != 2 {
		t.Errorf("required = %v", s.Required)
	}
}

func TestGeminiTruncated(t *testing.T) {
	done := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: "STOP"}},
	}
	if geminiTruncated(done) {
		t.Error("STOP reported as truncated")
	}

	cut := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: "MAX_TOKENS"}},
	}
	if !geminiTruncated(cut) {
		t.Error("MAX_TOKENS not reported as truncated")
	}

	if geminiTruncated(&genai.GenerateContentResponse{}) {
		t.Error("empty response reported as truncated")
	}
}
