package store

import (
	"context"
	"fmt"

	"github.com/smahajan/codequarry/ent"
	"github.com/smahajan/codequarry/ent/placementevent"
	"github.com/smahajan/codequarry/ent/submissionevent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetMode(data.Mode).
		SetAction(data.Action).
		SetProblemID(data.ProblemID).
		SetQuestionCount(data.QuestionCount).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSubmissionEvent(ctx context.Context, data SubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SubmissionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetProblemID(data.ProblemID).
		SetProblemTitle(data.ProblemTitle).
		SetLanguage(data.Language).
		SetCode(data.Code).
		SetCorrect(data.Correct).
		SetFeedback(data.Feedback).
		SetBatch(data.Batch).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAskEvent(ctx context.Context, data AskEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AskEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetProblemID(data.ProblemID).
		SetQuestion(data.Question).
		SetAnswered(data.Answered).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save ask event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendPlacement(ctx context.Context, data PlacementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PlacementEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSkillLevel(data.SkillLevel).
		SetTopicStrength(data.TopicStrength).
		SetFeedback(data.Feedback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save placement event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestPlacement(ctx context.Context) (*PlacementRecord, error) {
	row, err := r.client.PlacementEvent.Query().
		Order(ent.Desc(placementevent.FieldSequence)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query placement: %w", err)
	}
	return &PlacementRecord{
		Sequence:      row.Sequence,
		Timestamp:     row.Timestamp,
		SkillLevel:    row.SkillLevel,
		TopicStrength: row.TopicStrength,
		Feedback:      row.Feedback,
	}, nil
}

func (r *eventRepo) CountSolved(ctx context.Context) (int, error) {
	ids, err := r.client.SubmissionEvent.Query().
		Where(
			submissionevent.Correct(true),
			submissionevent.Batch(false),
		).
		Select(submissionevent.FieldProblemID).
		Ints(ctx)
	if err != nil {
		return 0, fmt.Errorf("count solved: %w", err)
	}

	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return len(seen), nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	if _, err := r.client.SubmissionEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset submissions: %w", err)
	}
	if _, err := r.client.SessionEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset sessions: %w", err)
	}
	if _, err := r.client.AskEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset asks: %w", err)
	}
	if _, err := r.client.PlacementEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset placements: %w", err)
	}
	if _, err := r.client.LLMRequestEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset llm requests: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySubmissions(ctx context.Context, opts QueryOpts) ([]SubmissionRecord, error) {
	q := r.client.SubmissionEvent.Query().
		Order(ent.Desc(submissionevent.FieldSequence))

	if opts.ProblemID != 0 {
		q = q.Where(submissionevent.ProblemID(opts.ProblemID))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}

	records := make([]SubmissionRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, SubmissionRecord{
			Sequence:     row.Sequence,
			Timestamp:    row.Timestamp,
			ProblemID:    row.ProblemID,
			ProblemTitle: row.ProblemTitle,
			Language:     row.Language,
			Correct:      row.Correct,
			Feedback:     row.Feedback,
			Batch:        row.Batch,
		})
	}
	return records, nil
}
