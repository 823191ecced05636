package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one answered question: which question, whether the
// answer was right, and how long it took. The table is append-only.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Learner this attempt belongs to"),
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping attempts made in one practice session"),
		field.Int("question_id").
			Comment("Catalog ID of the answered question"),
		field.Bool("correct").
			Comment("Whether the chosen option was the right one"),
		field.Int("duration_secs").
			Min(1).
			Comment("Answer time in whole seconds, clamped to at least 1"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("question_id"),
		index.Fields("session_id"),
	}
}
