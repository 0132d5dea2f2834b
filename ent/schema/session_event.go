package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events for both assessment and
// practice views.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in one view session"),
		field.String("mode").
			NotEmpty().
			Comment("assessment or practice"),
		field.String("action").
			NotEmpty().
			Comment("start, finish or abandon"),
		field.Int("problem_id").
			Default(0).
			Comment("Problem id for practice sessions (0 for assessment)"),
		field.Int("question_count").
			Default(0).
			Comment("Number of questions in an assessment session"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration (on finish/abandon only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("mode"),
	}
}
