// Package llm is the boundary to the hosted language models that write
// practice questions. It exposes a single Provider interface with
// Anthropic, OpenAI and Gemini implementations behind it, plus
// decorators that add retries and audit logging into the event store.
package llm

import (
	"context"
	"encoding/json"
)

// Purpose labels attached to requests. They end up in the audit log,
// not in the prompt.
const (
	PurposeQuestionGen = "question-gen"
	PurposeDiagnostic  = "diagnostic-test"
)

// Provider produces one structured completion per call.
type Provider interface {
	// Generate sends the request and returns the model output. When the
	// request carries a Schema, Content is JSON already validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider is bound to.
	ModelID() string
}

// Request is a single-completion request.
type Request struct {
	// Purpose labels what the call is for (see the Purpose constants).
	Purpose string

	// System sets the model's role, here the question-writing persona.
	System string

	// Messages is the conversation. Question generation sends a single
	// user turn.
	Messages []Message

	// Schema, when set, switches the provider to structured output and
	// the response content is validated against it before returning.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response is the model output for one request.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// had a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage is the token count the API reported.
	Usage Usage

	// Model is the concrete model that answered, as reported by the API.
	Model string

	// Truncated is set when generation stopped at the MaxTokens budget.
	// Truncated JSON normally also fails schema validation.
	Truncated bool
}

// Usage tracks token consumption for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
