package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/smahajan/codequarry/ent"
	"github.com/smahajan/codequarry/ent/llmrequestevent"
)

// LLMRecord is a stored model call as read back for inspection.
type LLMRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsage aggregates model calls by purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates model calls by model ID, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LLMLog provides read access to the model-call log. Kept separate from
// EventRepo: only the CLI inspection commands need it.
type LLMLog interface {
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRecord, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// LLMLog returns an LLMLog backed by this store.
func (s *Store) LLMLog() LLMLog {
	return &llmLog{client: s.client}
}

type llmLog struct {
	client *ent.Client
}

var _ LLMLog = (*llmLog)(nil)

func (l *llmLog) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRecord, error) {
	q := l.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	records := make([]LLMRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, recordFromRow(row))
	}
	return records, nil
}

func (l *llmLog) GetLLMEvent(ctx context.Context, id int) (*LLMRecord, error) {
	row, err := l.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	rec := recordFromRow(row)
	return &rec, nil
}

func (l *llmLog) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatencyMs float64 `json:"avg_latency_ms"`
	}
	err := l.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
			func(s *sql.Selector) string {
				return sql.As(sql.Avg(s.C(llmrequestevent.FieldLatencyMs)), "avg_latency_ms")
			},
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage: %w", err)
	}

	usage := make([]LLMUsage, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, LLMUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatencyMs),
		})
	}
	return usage, nil
}

func (l *llmLog) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"calls"`
		InputTokens  int    `json:"input_tokens"`
		OutputTokens int    `json:"output_tokens"`
	}
	err := l.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate model usage: %w", err)
	}

	usage := make([]LLMModelUsage, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, LLMModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		})
	}
	return usage, nil
}

func recordFromRow(row *ent.LLMRequestEvent) LLMRecord {
	return LLMRecord{
		ID:           row.ID,
		Sequence:     row.Sequence,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
	}
}
