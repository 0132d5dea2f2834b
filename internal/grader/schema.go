package grader

import "github.com/smahajan/codequarry/internal/llm"

// VerdictSchema defines the JSON schema for submission evaluation responses.
var VerdictSchema = &llm.Schema{
	Name:        "submission-verdict",
	Description: "Correctness verdict and feedback for one code submission",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"correct": map[string]any{
				"type":        "boolean",
				"description": "Whether the code solves the stated problem",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Constructive feedback for the learner, 1-3 sentences",
			},
		},
		"required":             []any{"correct", "feedback"},
		"additionalProperties": false,
	},
}

// PlacementSchema defines the JSON schema for diagnostic assessment responses.
var PlacementSchema = &llm.Schema{
	Name:        "skill-placement",
	Description: "Skill tier placement derived from a diagnostic answer batch",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skill_level": map[string]any{
				"type":        "string",
				"enum":        []any{"Beginner", "Intermediate", "Advanced"},
				"description": "Overall skill tier",
			},
			"topic_strength": map[string]any{
				"type":        "object",
				"description": "Per-topic strength from 0.0 (weak) to 1.0 (strong)",
				"additionalProperties": map[string]any{
					"type":    "number",
					"minimum": 0,
					"maximum": 1,
				},
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Short summary of strengths and weaknesses",
			},
		},
		"required":             []any{"skill_level", "topic_strength", "feedback"},
		"additionalProperties": false,
	},
}
