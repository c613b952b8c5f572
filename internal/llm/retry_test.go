package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryCfg() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func okResponse() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"ok":true}`)}
}

func TestRetryPassesThroughSuccess(t *testing.T) {
	mock := NewMockProvider(okResponse())
	p := WithRetry(mock, retryCfg())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` || mock.CallCount() != 1 {
		t.Errorf("content = %s, calls = %d", resp.Content, mock.CallCount())
	}
}

func TestRetryRecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: unavailable(errors.New("down"))},
		okResponse(),
	)
	p := WithRetry(mock, retryCfg())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` || mock.CallCount() != 2 {
		t.Errorf("content = %s, calls = %d", resp.Content, mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: unavailable(errors.New("down"))},
		MockResponse{Err: unavailable(errors.New("down"))},
		MockResponse{Err: unavailable(errors.New("down"))},
	)
	p := WithRetry(mock, retryCfg())

	_, err := p.Generate(context.Background(), Request{})
	var f *Fault
	if !errors.As(err, &f) || f.Kind != FaultUnavailable {
		t.Fatalf("err = %v, want unavailable fault", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryRerollsBadOutputOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: badOutput(json.RawMessage(`不是JSON`), errors.New("not JSON"))},
		MockResponse{Err: badOutput(json.RawMessage(`不是JSON`), errors.New("not JSON"))},
		okResponse(), // never reached
	)
	p := WithRetry(mock, retryCfg())

	_, err := p.Generate(context.Background(), Request{})
	var f *Fault
	if !errors.As(err, &f) || f.Kind != FaultBadOutput {
		t.Fatalf("err = %v, want bad-output fault", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2 (one re-roll)", mock.CallCount())
	}
}

func TestRetryBadOutputThenRecovery(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: badOutput(json.RawMessage(`{`), errors.New("truncated"))},
		okResponse(),
	)
	p := WithRetry(mock, retryCfg())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: unavailable(errors.New("down"))},
		okResponse(),
	)
	p := WithRetry(mock, retryCfg())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error with canceled context")
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &Fault{Kind: FaultRateLimited, RetryAfter: time.Millisecond}},
		okResponse(),
	)
	p := WithRetry(mock, retryCfg())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryDelegatesModelID(t *testing.T) {
	p := WithRetry(NewMockProvider(), retryCfg())
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q, want mock", p.ModelID())
	}
}

func TestDelayStaysWithinJitterBounds(t *testing.T) {
	r := &retrier{cfg: RetryConfig{
		InitialWait: 100 * time.Millisecond,
		MaxWait:     1 * time.Second,
		Multiplier:  2.0,
	}}

	for attempt := 0; attempt < 5; attempt++ {
		base := float64(100*time.Millisecond) * pow2(attempt)
		if base > float64(time.Second) {
			base = float64(time.Second)
		}
		for i := 0; i < 20; i++ {
			d := float64(r.delay(attempt, unavailable(errors.New("down"))))
			if d < 0.79*base || d > 1.21*base {
				t.Fatalf("attempt %d: delay %v outside ±20%% of %v", attempt, time.Duration(d), time.Duration(base))
			}
		}
	}
}

func pow2(n int) float64 {
	out := 1.0
	for i := 0; i < n; i++ {
		out *= 2
	}
	return out
}
