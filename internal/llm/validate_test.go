package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func verdictSchema() *Schema {
	return &Schema{
		Name: "test-verdict",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"correct", "feedback"},
			"properties": map[string]any{
				"correct":  map[string]any{"type": "boolean"},
				"feedback": map[string]any{"type": "string"},
			},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"correct": true, "feedback": "nice"}`)
	if err := validateResponse(verdictSchema(), raw); err != nil {
		t.Errorf("validateResponse: %v", err)
	}
}

func TestValidateResponse_MissingField(t *testing.T) {
	raw := json.RawMessage(`{"correct": true}`)
	err := validateResponse(verdictSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"correct": tru`)
	err := validateResponse(verdictSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Errorf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json at all`)); err != nil {
		t.Errorf("validateResponse with nil schema: %v", err)
	}
}
