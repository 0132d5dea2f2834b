package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// PlacementEvent records a diagnostic assessment outcome. In local mode
// this is the source of truth for the learner profile; the latest event
// wins.
type PlacementEvent struct {
	ent.Schema
}

func (PlacementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlacementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the assessment ran in"),
		field.String("skill_level").
			Comment("Beginner, Intermediate or Advanced"),
		field.JSON("topic_strength", map[string]float64{}).
			Optional().
			Comment("Per-topic strength 0..1"),
		field.Text("feedback").
			Default(""),
	}
}
