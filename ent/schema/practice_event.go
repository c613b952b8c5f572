package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeEvent records one answered question for one student. Per-point
// accuracy statistics and last-practice times are derived by folding over
// these events; the events themselves are never mutated.
type PracticeEvent struct {
	ent.Schema
}

func (PracticeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("student").
			NotEmpty().
			Comment("Student the answer belongs to"),
		field.String("session_id").
			NotEmpty().
			Comment("Groups answers recorded together (one exam or practice run)"),
		field.String("subject").
			NotEmpty().
			Comment("math, chinese, or english"),
		field.Int("grade").
			Comment("Grade level of the practiced point"),
		field.String("point_id").
			NotEmpty().
			Comment("Knowledge point this question exercised"),
		field.String("point_name").
			Comment("Display name at recording time, for rendering without the graph"),
		field.String("question_type").
			Optional().
			Comment("Exam question type, e.g. word_problem"),
		field.Int("difficulty").
			Optional().
			Comment("Question difficulty 1-5"),
		field.Bool("correct").
			Comment("Whether the student answered correctly"),
	}
}

func (PracticeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student", "point_id"),
		index.Fields("session_id"),
	}
}
