package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" on in-memory databases, so it is
		// not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQuerySubmissions(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i, data := range []SubmissionEventData{
		{SessionID: "s1", ProblemID: 7, ProblemTitle: "Two Sum", Language: "python", Code: "x", Correct: false, Feedback: "wrong output"},
		{SessionID: "s1", ProblemID: 7, ProblemTitle: "Two Sum", Language: "python", Code: "y", Correct: true, Feedback: "accepted"},
		{SessionID: "s2", ProblemID: 9, ProblemTitle: "Reverse", Language: "java", Code: "z", Correct: true, Feedback: "accepted"},
	} {
		if err := repo.AppendSubmissionEvent(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	// Newest first.
	all, err := repo.QuerySubmissions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	if all[0].ProblemID != 9 {
		t.Errorf("all[0].ProblemID = %d, want newest first", all[0].ProblemID)
	}
	if all[0].Sequence <= all[2].Sequence {
		t.Errorf("sequence ordering broken: %d <= %d", all[0].Sequence, all[2].Sequence)
	}

	// Filtered by problem.
	filtered, err := repo.QuerySubmissions(ctx, QueryOpts{ProblemID: 7})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("filtered len = %d, want 2", len(filtered))
	}

	// Limited.
	limited, err := repo.QuerySubmissions(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited len = %d, want 1", len(limited))
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Mode: "practice", Action: "start", ProblemID: 7}); err != nil {
		t.Fatalf("session event: %v", err)
	}
	if err := repo.AppendAskEvent(ctx, AskEventData{SessionID: "s1", ProblemID: 7, Question: "what is a stack?", Answered: true}); err != nil {
		t.Fatalf("ask event: %v", err)
	}
	if err := repo.AppendSubmissionEvent(ctx, SubmissionEventData{SessionID: "s1", ProblemID: 7, Code: "x"}); err != nil {
		t.Fatalf("submission event: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "ask", Success: true}); err != nil {
		t.Fatalf("llm event: %v", err)
	}

	subs, err := repo.QuerySubmissions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("len = %d", len(subs))
	}
	// The submission was the third event appended, so its global sequence
	// must be 3.
	if subs[0].Sequence != 3 {
		t.Errorf("sequence = %d, want 3 (shared counter across types)", subs[0].Sequence)
	}
}

func TestPlacementLatestWins(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	none, err := repo.LatestPlacement(ctx)
	if err != nil {
		t.Fatalf("latest placement: %v", err)
	}
	if none != nil {
		t.Fatal("expected nil placement before any assessment")
	}

	first := PlacementEventData{SessionID: "s1", SkillLevel: "Beginner", TopicStrength: map[string]float64{"Arrays": 0.2}}
	if err := repo.AppendPlacement(ctx, first); err != nil {
		t.Fatalf("append placement: %v", err)
	}
	second := PlacementEventData{SessionID: "s2", SkillLevel: "Intermediate", TopicStrength: map[string]float64{"Arrays": 0.7}, Feedback: "improving"}
	if err := repo.AppendPlacement(ctx, second); err != nil {
		t.Fatalf("append placement: %v", err)
	}

	got, err := repo.LatestPlacement(ctx)
	if err != nil {
		t.Fatalf("latest placement: %v", err)
	}
	if got == nil || got.SkillLevel != "Intermediate" {
		t.Fatalf("latest = %+v, want Intermediate", got)
	}
	if got.TopicStrength["Arrays"] != 0.7 {
		t.Errorf("topic strength = %v, want 0.7", got.TopicStrength["Arrays"])
	}
}

func TestCountSolvedDistinctCorrect(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	events := []SubmissionEventData{
		{SessionID: "s1", ProblemID: 1, Code: "a", Correct: true},
		{SessionID: "s1", ProblemID: 1, Code: "a2", Correct: true}, // same problem again
		{SessionID: "s1", ProblemID: 2, Code: "b", Correct: false},
		{SessionID: "s1", ProblemID: 3, Code: "c", Correct: true},
		{SessionID: "s1", ProblemID: 0, Code: "batch", Correct: true, Batch: true}, // batch excluded
	}
	for _, e := range events {
		if err := repo.AppendSubmissionEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	n, err := repo.CountSolved(ctx)
	if err != nil {
		t.Fatalf("count solved: %v", err)
	}
	if n != 2 {
		t.Errorf("solved = %d, want 2", n)
	}
}

func TestResetWipesEverything(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	if err := repo.AppendSubmissionEvent(ctx, SubmissionEventData{SessionID: "s1", ProblemID: 1, Code: "a", Correct: true}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendPlacement(ctx, PlacementEventData{SessionID: "s1", SkillLevel: "Advanced"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	subs, err := repo.QuerySubmissions(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("submissions after reset = %d, want 0", len(subs))
	}
	p, err := repo.LatestPlacement(ctx)
	if err != nil {
		t.Fatalf("latest placement: %v", err)
	}
	if p != nil {
		t.Error("placement survived reset")
	}
}
