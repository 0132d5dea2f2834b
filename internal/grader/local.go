package grader

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/smahajan/codequarry/internal/assess"
	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/llm"
	"github.com/smahajan/codequarry/internal/practice"
)

// Config bounds the model calls made by the local grader.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns grading defaults: enough room for feedback on a
// full diagnostic batch, deterministic output.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0}
}

// Local grades directly against a language model. It is the grading path
// when no platform is configured.
type Local struct {
	provider llm.Provider
	config   Config
}

// NewLocal creates a model-backed grader.
func NewLocal(provider llm.Provider, cfg Config) *Local {
	return &Local{provider: provider, config: cfg}
}

func (l *Local) Grade(ctx context.Context, problem curriculum.Question, code string, lang curriculum.Language) (practice.Verdict, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeGrade)

	resp, err := l.provider.Generate(ctx, llm.Request{
		System:      gradeSystemPrompt,
		Prompt:      buildGradePrompt(problem, code, lang),
		Schema:      VerdictSchema,
		MaxTokens:   l.config.MaxTokens,
		Temperature: l.config.Temperature,
	})
	if err != nil {
		return practice.Verdict{}, fmt.Errorf("grade submission: %w", err)
	}

	var out struct {
		Correct  bool   `json:"correct"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return practice.Verdict{}, fmt.Errorf("parse verdict: %w", err)
	}
	return practice.Verdict{Correct: out.Correct, Message: out.Feedback}, nil
}

func (l *Local) Assess(ctx context.Context, batch []assess.BatchItem) (*Placement, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeAssess)

	resp, err := l.provider.Generate(ctx, llm.Request{
		System:      assessSystemPrompt,
		Prompt:      buildAssessPrompt(batch),
		Schema:      PlacementSchema,
		MaxTokens:   l.config.MaxTokens,
		Temperature: l.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("score assessment: %w", err)
	}

	var p Placement
	if err := json.Unmarshal(resp.Content, &p); err != nil {
		return nil, fmt.Errorf("parse placement: %w", err)
	}
	if !p.SkillLevel.Valid() {
		return nil, fmt.Errorf("placement has unknown skill level %q", p.SkillLevel)
	}
	return &p, nil
}
