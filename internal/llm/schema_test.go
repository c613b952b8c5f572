package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "single-question",
		Description: "One practice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":       map[string]any{"type": "string"},
				"answer":     map[string]any{"type": "string"},
				"difficulty": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			},
			"required": []any{"text", "answer"},
		},
	}
}

func TestSchemaCheckAcceptsValidOutput(t *testing.T) {
	raw := json.RawMessage(`{"text":"345 + 123 = ?","answer":"468","difficulty":2}`)
	if err := questionSchema().Check(raw); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestSchemaCheckAcceptsMissingOptional(t *testing.T) {
	raw := json.RawMessage(`{"text":"1+1=?","answer":"2"}`)
	if err := questionSchema().Check(raw); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestSchemaCheckRejectsMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"text":"1+1=?"}`)
	err := questionSchema().Check(raw)
	var f *Fault
	if !errors.As(err, &f) || f.Kind != FaultBadOutput {
		t.Fatalf("err = %v, want bad-output fault", err)
	}
	if string(f.Output) != string(raw) {
		t.Errorf("fault does not carry the offending output: %s", f.Output)
	}
}

func TestSchemaCheckRejectsWrongType(t *testing.T) {
	raw := json.RawMessage(`{"text":"1+1=?","answer":"2","difficulty":"easy"}`)
	var f *Fault
	if err := questionSchema().Check(raw); !errors.As(err, &f) {
		t.Fatalf("err = %v, want fault", err)
	}
}

func TestSchemaCheckRejectsOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"text":"1+1=?","answer":"2","difficulty":9}`)
	if err := questionSchema().Check(raw); err == nil {
		t.Fatal("expected range violation")
	}
}

func TestSchemaCheckRejectsMalformedJSON(t *testing.T) {
	var f *Fault
	if err := questionSchema().Check(json.RawMessage(`{not json`)); !errors.As(err, &f) || f.Kind != FaultBadOutput {
		t.Fatalf("err = %v, want bad-output fault", err)
	}
	if err := questionSchema().Check(json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty output")
	}
}

func TestSchemaCheckNilSchemaAcceptsAnything(t *testing.T) {
	var s *Schema
	if err := s.Check(json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("Check on nil schema: %v", err)
	}
}

func TestSchemaCheckNestedArrays(t *testing.T) {
	s := &Schema{
		Name: "question-batch",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"text": map[string]any{"type": "string"},
						},
						"required": []any{"text"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}

	valid := json.RawMessage(`{"questions":[{"text":"一"},{"text":"二"}]}`)
	if err := s.Check(valid); err != nil {
		t.Fatalf("Check: %v", err)
	}

	invalid := json.RawMessage(`{"questions":[{"text":1}]}`)
	if err := s.Check(invalid); err == nil {
		t.Fatal("expected item type violation")
	}
}
