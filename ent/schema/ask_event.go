package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AskEvent records doubt-solver questions and whether they got a real
// answer or the synthetic error entry.
type AskEvent struct {
	ent.Schema
}

func (AskEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AskEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Int("problem_id"),
		field.Text("question").
			NotEmpty(),
		field.Bool("answered").
			Comment("False when the thread got the error placeholder"),
		field.String("error_message").
			Default(""),
	}
}

func (AskEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("problem_id"),
	}
}
