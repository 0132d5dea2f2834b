package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/llm"
)

const helpSystemPrompt = `You are a programming tutor helping a student who is stuck on a problem.

Rules:
- Give a helpful, educational answer to the student's question.
- Guide toward the solution: explain the concept, point at the flaw, suggest the next step. Do not hand over the full solution unless the student has clearly already found it and asks to verify.
- Refer to the student's own code when it is relevant to the question.
- Keep the answer focused on the question asked. Plain text, no markdown.`

// Config bounds the model calls made by the local assistant.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns defaults tuned for conversational replies.
func DefaultConfig() Config {
	return Config{MaxTokens: 768, Temperature: 0.4}
}

// Local answers questions directly against a language model.
type Local struct {
	provider llm.Provider
	config   Config
}

// NewLocal creates a model-backed assistant.
func NewLocal(provider llm.Provider, cfg Config) *Local {
	return &Local{provider: provider, config: cfg}
}

func (l *Local) Ask(ctx context.Context, problem curriculum.Question, code, question string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeAsk)

	resp, err := l.provider.Generate(ctx, llm.Request{
		System:      helpSystemPrompt,
		Prompt:      buildHelpPrompt(problem, code, question),
		MaxTokens:   l.config.MaxTokens,
		Temperature: l.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("ask assistant: %w", err)
	}
	return strings.TrimSpace(string(resp.Content)), nil
}

func buildHelpPrompt(problem curriculum.Question, code, question string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %s\n", problem.Title)
	fmt.Fprintf(&b, "Description: %s\n\n", problem.Description)
	b.WriteString("Student's current code:\n")
	b.WriteString(code)
	b.WriteString("\n\nStudent's question: ")
	b.WriteString(question)
	return b.String()
}
