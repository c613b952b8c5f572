package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/wliu/gradewise/internal/store"
)

// recordingLog captures audit records in memory.
type recordingLog struct {
	records []store.LLMCallData
	fail    error
}

func (l *recordingLog) AppendLLMCall(_ context.Context, data store.LLMCallData) error {
	if l.fail != nil {
		return l.fail
	}
	l.records = append(l.records, data)
	return nil
}

// fixedProvider returns the same response or error on every call.
type fixedProvider struct {
	resp *Response
	err  error
}

func (p *fixedProvider) Generate(context.Context, Request) (*Response, error) {
	return p.resp, p.err
}

func (p *fixedProvider) ModelID() string { return "gpt-4o-mini" }

func TestAuditRecordsSuccessfulCall(t *testing.T) {
	log := &recordingLog{}
	inner := &fixedProvider{resp: &Response{
		Content: json.RawMessage(`{}`),
		Model:   "gpt-4o-mini",
		Usage:   Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000, TotalTokens: 2_000_000},
	}}
	p := WithAudit(inner, "openai", log)

	if _, err := p.Generate(context.Background(), Request{Purpose: PurposeQuestionGen}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(log.records) != 1 {
		t.Fatalf("records = %d, want 1", len(log.records))
	}
	rec := log.records[0]
	if rec.Provider != "openai" || rec.Model != "gpt-4o-mini" || rec.Purpose != PurposeQuestionGen {
		t.Errorf("record = %+v", rec)
	}
	if !rec.Success || rec.Error != "" {
		t.Errorf("success record carries error: %+v", rec)
	}
	if rec.InputTokens != 1_000_000 || rec.OutputTokens != 1_000_000 {
		t.Errorf("tokens = %d/%d, want 1M/1M", rec.InputTokens, rec.OutputTokens)
	}
	// 1M in + 1M out on gpt-4o-mini: $0.15 + $0.60.
	if rec.CostUSD < 0.74 || rec.CostUSD > 0.76 {
		t.Errorf("cost = %v, want ~0.75", rec.CostUSD)
	}
}

func TestAuditRecordsFailedCall(t *testing.T) {
	log := &recordingLog{}
	p := WithAudit(&fixedProvider{err: unavailable(errors.New("down"))}, "openai", log)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(log.records) != 1 {
		t.Fatalf("records = %d, want 1", len(log.records))
	}
	rec := log.records[0]
	if rec.Success || rec.Error == "" {
		t.Errorf("failure record = %+v", rec)
	}
	if rec.Purpose != "unspecified" {
		t.Errorf("purpose = %q, want unspecified", rec.Purpose)
	}
}

func TestAuditLogFailureDoesNotFailCall(t *testing.T) {
	log := &recordingLog{fail: errors.New("disk full")}
	inner := &fixedProvider{resp: &Response{Content: json.RawMessage(`{}`)}}
	p := WithAudit(inner, "openai", log)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil || resp == nil {
		t.Fatalf("call failed because the audit log did: %v", err)
	}
}

func TestAuditDelegatesModelID(t *testing.T) {
	p := WithAudit(&fixedProvider{}, "openai", &recordingLog{})
	if p.ModelID() != "gpt-4o-mini" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}

func TestCostOfUnknownModelIsZero(t *testing.T) {
	if c := costUSD("mock", Usage{InputTokens: 1000, OutputTokens: 1000}); c != 0 {
		t.Errorf("cost = %v, want 0", c)
	}
}
