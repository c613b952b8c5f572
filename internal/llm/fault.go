package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// FaultKind classifies provider failures for retry decisions.
type FaultKind int

const (
	// FaultUnavailable covers network failures and 5xx responses.
	FaultUnavailable FaultKind = iota

	// FaultRateLimited is a 429 from the provider.
	FaultRateLimited

	// FaultBadOutput means the model answered but the output is
	// unusable: not JSON, or JSON that fails the requested schema.
	FaultBadOutput
)

func (k FaultKind) String() string {
	switch k {
	case FaultRateLimited:
		return "rate limited"
	case FaultBadOutput:
		return "bad output"
	default:
		return "unavailable"
	}
}

// Fault is the error type providers return.
type Fault struct {
	Kind FaultKind

	// RetryAfter is the wait the provider asked for, when it sent one.
	// Only meaningful for FaultRateLimited.
	RetryAfter time.Duration

	// Output holds the offending model output for FaultBadOutput.
	Output json.RawMessage

	Err error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("llm: %s: %v", f.Kind, f.Err)
	}
	return "llm: " + f.Kind.String()
}

func (f *Fault) Unwrap() error { return f.Err }

func unavailable(err error) *Fault { return &Fault{Kind: FaultUnavailable, Err: err} }

func rateLimited(err error) *Fault { return &Fault{Kind: FaultRateLimited, Err: err} }

func badOutput(raw json.RawMessage, err error) *Fault {
	return &Fault{Kind: FaultBadOutput, Output: raw, Err: err}
}
