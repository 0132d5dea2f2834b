package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a hosted language model. CodeQuarry talks to a model
// for three purposes — grading a submission, scoring the diagnostic
// assessment, and answering learner questions — all single-turn, so the
// request shape is one system prompt plus one user prompt.
type Provider interface {
	// Generate sends the prompt and returns the model output. When the
	// request carries a Schema the provider uses its native structured
	// output mechanism and the returned Content is schema-validated JSON;
	// otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request is a single-turn generation request.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user-turn content.
	Prompt string

	// Schema, when set, constrains the output to JSON conforming to it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Schema names a JSON Schema for structured output. Name is kebab-case
// (used as the schema/tool name by the providers), Definition is the
// schema document as a map.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model output.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// bytes otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
