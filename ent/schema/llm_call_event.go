package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMCallEvent records one round trip to an LLM provider: what it was
// for, how long it took and what it cost.
type LLMCallEvent struct {
	ent.Schema
}

func (LLMCallEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMCallEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Configured provider: anthropic, openai, gemini, mock"),
		field.String("model").
			Comment("Concrete model that served the call"),
		field.String("purpose").
			Comment("Caller label: question-gen, diagnostic-test"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock duration of the round trip"),
		field.Float("cost_usd").
			Default(0).
			Comment("Estimated cost from the embedded price table"),
		field.Bool("success").
			Comment("Whether the call returned a usable response"),
		field.String("error_message").
			Default(""),
	}
}

func (LLMCallEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
