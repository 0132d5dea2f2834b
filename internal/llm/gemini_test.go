package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct":  map[string]any{"type": "boolean"},
			"feedback": map[string]any{"type": "string"},
			"skill_level": map[string]any{
				"type": "string",
				"enum": []any{"Beginner", "Intermediate", "Advanced"},
			},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "number"},
			},
		},
		"required": []any{"correct", "feedback"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["correct"].Type != "BOOLEAN" {
		t.Fatalf("expected BOOLEAN for correct, got %s", schema.Properties["correct"].Type)
	}
	if schema.Properties["feedback"].Type != "STRING" {
		t.Fatalf("expected STRING for feedback, got %s", schema.Properties["feedback"].Type)
	}
	if len(schema.Properties["skill_level"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["skill_level"].Enum))
	}
	if schema.Properties["strengths"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for strengths, got %s", schema.Properties["strengths"].Type)
	}
	if schema.Properties["strengths"].Items.Type != "NUMBER" {
		t.Fatalf("expected NUMBER for strengths items, got %s", schema.Properties["strengths"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
