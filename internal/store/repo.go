package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit     int // max results (0 = unlimited)
	ProblemID int // filter by problem id (0 = all)
}

// SessionEventData records a session lifecycle transition.
type SessionEventData struct {
	SessionID     string
	Mode          string // "assessment" or "practice"
	Action        string // "start", "finish", "abandon"
	ProblemID     int
	QuestionCount int
	DurationSecs  int
}

// SubmissionEventData records one graded submission.
type SubmissionEventData struct {
	SessionID    string
	ProblemID    int
	ProblemTitle string
	Language     string
	Code         string
	Correct      bool
	Feedback     string
	Batch        bool
	LatencyMs    int64
}

// SubmissionRecord is a stored submission as read back for history.
type SubmissionRecord struct {
	Sequence     int64
	Timestamp    time.Time
	ProblemID    int
	ProblemTitle string
	Language     string
	Correct      bool
	Feedback     string
	Batch        bool
}

// AskEventData records one doubt-solver exchange.
type AskEventData struct {
	SessionID    string
	ProblemID    int
	Question     string
	Answered     bool
	ErrorMessage string
}

// PlacementEventData records a diagnostic assessment outcome.
type PlacementEventData struct {
	SessionID     string
	SkillLevel    string
	TopicStrength map[string]float64
	Feedback      string
}

// PlacementRecord is a stored placement as read back for the profile.
type PlacementRecord struct {
	Sequence      int64
	Timestamp     time.Time
	SkillLevel    string
	TopicStrength map[string]float64
	Feedback      string
}

// LLMRequestEventData records one direct model call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to the local event log.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendSubmissionEvent(ctx context.Context, data SubmissionEventData) error
	AppendAskEvent(ctx context.Context, data AskEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	AppendPlacement(ctx context.Context, data PlacementEventData) error

	// QuerySubmissions returns submissions newest first.
	QuerySubmissions(ctx context.Context, opts QueryOpts) ([]SubmissionRecord, error)

	// LatestPlacement returns the most recent placement, or nil when the
	// assessment has never completed.
	LatestPlacement(ctx context.Context) (*PlacementRecord, error)

	// CountSolved returns the number of distinct problems with at least
	// one correct non-batch submission.
	CountSolved(ctx context.Context) (int, error)

	// Reset deletes every event. Irreversible; used by progress reset.
	Reset(ctx context.Context) error
}
