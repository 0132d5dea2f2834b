// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AskEvent is the predicate function for askevent builders.
type AskEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PlacementEvent is the predicate function for placementevent builders.
type PlacementEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// SubmissionEvent is the predicate function for submissionevent builders.
type SubmissionEvent func(*sql.Selector)
