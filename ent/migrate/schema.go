// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AskEventsColumns holds the columns for the "ask_events" table.
	AskEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "problem_id", Type: field.TypeInt},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "answered", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// AskEventsTable holds the schema information for the "ask_events" table.
	AskEventsTable = &schema.Table{
		Name:       "ask_events",
		Columns:    AskEventsColumns,
		PrimaryKey: []*schema.Column{AskEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "askevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AskEventsColumns[1]},
			},
			{
				Name:    "askevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AskEventsColumns[2]},
			},
			{
				Name:    "askevent_problem_id",
				Unique:  false,
				Columns: []*schema.Column{AskEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PlacementEventsColumns holds the columns for the "placement_events" table.
	PlacementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "skill_level", Type: field.TypeString},
		{Name: "topic_strength", Type: field.TypeJSON, Nullable: true},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// PlacementEventsTable holds the schema information for the "placement_events" table.
	PlacementEventsTable = &schema.Table{
		Name:       "placement_events",
		Columns:    PlacementEventsColumns,
		PrimaryKey: []*schema.Column{PlacementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "placementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[1]},
			},
			{
				Name:    "placementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlacementEventsColumns[2]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "problem_id", Type: field.TypeInt, Default: 0},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_mode",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SubmissionEventsColumns holds the columns for the "submission_events" table.
	SubmissionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "problem_id", Type: field.TypeInt},
		{Name: "problem_title", Type: field.TypeString, Default: ""},
		{Name: "language", Type: field.TypeString, Default: ""},
		{Name: "code", Type: field.TypeString, Size: 2147483647},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "batch", Type: field.TypeBool, Default: false},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
	}
	// SubmissionEventsTable holds the schema information for the "submission_events" table.
	SubmissionEventsTable = &schema.Table{
		Name:       "submission_events",
		Columns:    SubmissionEventsColumns,
		PrimaryKey: []*schema.Column{SubmissionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "submissionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[1]},
			},
			{
				Name:    "submissionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[2]},
			},
			{
				Name:    "submissionevent_problem_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[4]},
			},
			{
				Name:    "submissionevent_correct",
				Unique:  false,
				Columns: []*schema.Column{SubmissionEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AskEventsTable,
		LlmRequestEventsTable,
		PlacementEventsTable,
		SessionEventsTable,
		SubmissionEventsTable,
	}
)

func init() {
}
