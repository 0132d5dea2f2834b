// Package grader evaluates learner code: single practice submissions and
// the diagnostic assessment batch. Two implementations exist — the remote
// grader delegates to the platform, the local grader asks a language
// model directly — so every screen works the same in online and local
// mode.
package grader

import (
	"context"

	"github.com/smahajan/codequarry/internal/assess"
	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/practice"
)

// Grader evaluates one practice submission.
type Grader interface {
	Grade(ctx context.Context, problem curriculum.Question, code string, lang curriculum.Language) (practice.Verdict, error)
}

// Placement is the outcome of scoring the diagnostic batch: a skill tier
// plus per-topic strength in [0,1].
type Placement struct {
	SkillLevel    curriculum.Difficulty `json:"skill_level"`
	TopicStrength map[string]float64    `json:"topic_strength"`
	Feedback      string                `json:"feedback"`
}

// Assessor scores the full diagnostic answer batch in one step. The batch
// is accepted or rejected whole; on error no placement exists and the
// caller may retry with the same answers.
type Assessor interface {
	Assess(ctx context.Context, batch []assess.BatchItem) (*Placement, error)
}
