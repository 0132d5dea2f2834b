package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionEvent records every graded submission: the code snapshot that
// was actually graded, the verdict, and where it was graded.
type SubmissionEvent struct {
	ent.Schema
}

func (SubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the submission belongs to"),
		field.Int("problem_id").
			Comment("Problem graded (0 for assessment batch)"),
		field.String("problem_title").
			Default("").
			Comment("Title at submission time, for history display"),
		field.String("language").
			Default("").
			Comment("Declared language (practice only)"),
		field.Text("code").
			Comment("The snapshot that was graded, not the live buffer"),
		field.Bool("correct").
			Default(false),
		field.Text("feedback").
			Default(""),
		field.Bool("batch").
			Default(false).
			Comment("True for the assessment finalize submission"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Round trip to the grading collaborator"),
	}
}

func (SubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("problem_id"),
		index.Fields("correct"),
	}
}
