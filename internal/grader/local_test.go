package grader

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/smahajan/codequarry/internal/assess"
	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/llm"
)

var testProblem = curriculum.Question{
	ID:          7,
	Title:       "Two Sum",
	Description: "Return indices of two numbers adding to target",
	StarterCode: "def solve():",
}

func TestLocalGrade(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"correct": true, "feedback": "Works, and handles duplicates."}`),
	})
	g := NewLocal(mock, DefaultConfig())

	v, err := g.Grade(context.Background(), testProblem, "def solve(): pass", curriculum.LangPython)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if !v.Correct {
		t.Error("expected correct verdict")
	}
	if v.Message != "Works, and handles duplicates." {
		t.Errorf("unexpected feedback: %q", v.Message)
	}

	req := mock.Calls[0]
	if req.Schema != VerdictSchema {
		t.Error("expected verdict schema on request")
	}
	if !strings.Contains(req.Prompt, "Two Sum") || !strings.Contains(req.Prompt, "def solve(): pass") {
		t.Errorf("prompt missing problem or code:\n%s", req.Prompt)
	}
	if !strings.Contains(req.Prompt, "python") {
		t.Errorf("prompt missing language:\n%s", req.Prompt)
	}
}

func TestLocalGradeProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: provider unavailable
	g := NewLocal(mock, DefaultConfig())

	_, err := g.Grade(context.Background(), testProblem, "x", curriculum.LangPython)
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestLocalAssess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"skill_level": "Intermediate",
			"topic_strength": {"Arrays": 0.8, "Strings": 0.5, "Loops": 0.9},
			"feedback": "Solid loops, weaker string handling."
		}`),
	})
	g := NewLocal(mock, DefaultConfig())

	batch := []assess.BatchItem{
		{Question: "Reverse a string", Code: "def solve(s): return s[::-1]"},
		{Question: "Sum a list", Code: "def solve(xs): return sum(xs)"},
	}
	p, err := g.Assess(context.Background(), batch)
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if p.SkillLevel != curriculum.DifficultyIntermediate {
		t.Errorf("skill level = %q, want Intermediate", p.SkillLevel)
	}
	if p.TopicStrength["Loops"] != 0.9 {
		t.Errorf("Loops strength = %v, want 0.9", p.TopicStrength["Loops"])
	}

	prompt := mock.Calls[0].Prompt
	for _, want := range []string{"Question 1: Reverse a string", "Question 2: Sum a list", "s[::-1]"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("assess prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestLocalAssessRejectsUnknownTier(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"skill_level": "Wizard", "topic_strength": {}, "feedback": ""}`),
	})
	g := NewLocal(mock, DefaultConfig())

	_, err := g.Assess(context.Background(), []assess.BatchItem{{Question: "q", Code: "c"}})
	if err == nil {
		t.Fatal("expected error for out-of-set skill level")
	}
}
