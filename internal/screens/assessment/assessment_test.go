package assessment

import (
	"context"
	"errors"
	"testing"

	"github.com/smahajan/codequarry/internal/assess"
	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/grader"
	"github.com/smahajan/codequarry/internal/router"
	"github.com/smahajan/codequarry/internal/store"
)

// mockAssessor implements grader.Assessor for testing.
type mockAssessor struct {
	placement *grader.Placement
	err       error
	batches   [][]assess.BatchItem
}

func (m *mockAssessor) Assess(_ context.Context, batch []assess.BatchItem) (*grader.Placement, error) {
	m.batches = append(m.batches, batch)
	if m.err != nil {
		return nil, m.err
	}
	return m.placement, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	placements    []store.PlacementEventData
	submissions   []store.SubmissionEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSubmissionEvent(_ context.Context, data store.SubmissionEventData) error {
	m.submissions = append(m.submissions, data)
	return nil
}
func (m *mockEventRepo) AppendAskEvent(_ context.Context, _ store.AskEventData) error { return nil }
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AppendPlacement(_ context.Context, data store.PlacementEventData) error {
	m.placements = append(m.placements, data)
	return nil
}
func (m *mockEventRepo) QuerySubmissions(_ context.Context, _ store.QueryOpts) ([]store.SubmissionRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestPlacement(_ context.Context) (*store.PlacementRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) CountSolved(_ context.Context) (int, error) { return 0, nil }
func (m *mockEventRepo) Reset(_ context.Context) error              { return nil }

func testQuestions() []curriculum.Question {
	return []curriculum.Question{
		{ID: 101, Title: "One", Description: "first", StarterCode: "a"},
		{ID: 102, Title: "Two", Description: "second", StarterCode: "b"},
	}
}

// loadedScreen returns a screen with questions loaded and the session started.
func loadedScreen(t *testing.T, asr grader.Assessor, events store.EventRepo) *AssessmentScreen {
	t.Helper()
	s := New(nil, nil, asr, nil, events, "test-session")
	updated, _ := s.handleQuestionsLoaded(questionsLoadedMsg{Questions: testQuestions()})
	return updated.(*AssessmentScreen)
}

func TestQuestionsLoadedSeedsState(t *testing.T) {
	s := loadedScreen(t, &mockAssessor{}, nil)

	if s.state == nil {
		t.Fatal("expected state after load")
	}
	if s.state.Current().ID != 101 {
		t.Errorf("current = %d, want 101", s.state.Current().ID)
	}
	if s.editor.Value() != "a" {
		t.Errorf("editor seeded with %q, want starter code", s.editor.Value())
	}
}

func TestQuestionsLoadError(t *testing.T) {
	s := New(nil, nil, &mockAssessor{}, nil, nil, "test-session")
	updated, _ := s.handleQuestionsLoaded(questionsLoadedMsg{Err: errors.New("network down")})
	s = updated.(*AssessmentScreen)

	if s.state != nil {
		t.Fatal("expected no state on load error")
	}
	if s.errMsg == "" {
		t.Error("expected error message")
	}
}

func TestAdvanceReseedsEditorFromStore(t *testing.T) {
	s := loadedScreen(t, &mockAssessor{}, nil)

	s.editor.SetValue("my answer one")
	updated, _ := s.advance()
	s = updated.(*AssessmentScreen)

	if s.state.Current().ID != 102 {
		t.Fatalf("current = %d, want 102", s.state.Current().ID)
	}
	if s.editor.Value() != "b" {
		t.Errorf("editor = %q, want starter code of question two", s.editor.Value())
	}
	// The answer recorded for question one survives the transition.
	batch := s.state.Batch()
	if batch[0].Code != "my answer one" {
		t.Errorf("batch[0].Code = %q, want the recorded edit", batch[0].Code)
	}
}

func TestFinalizeSubmitsSnapshotInOrder(t *testing.T) {
	asr := &mockAssessor{placement: &grader.Placement{SkillLevel: curriculum.DifficultyBeginner}}
	s := loadedScreen(t, asr, nil)

	s.editor.SetValue("answer one")
	updated, _ := s.advance() // to question two
	s = updated.(*AssessmentScreen)
	s.editor.SetValue("answer two")

	updated, cmd := s.advance() // finalize
	s = updated.(*AssessmentScreen)
	if !s.state.Submitting() {
		t.Fatal("expected submitting state")
	}
	if cmd == nil {
		t.Fatal("expected finalize command")
	}

	// An edit made after the snapshot must not leak into the batch.
	s.editor.SetValue("late edit")
	s.state.SetAnswer("late edit")

	msg := cmd() // run the async submit
	result, ok := msg.(batchResultMsg)
	if !ok {
		t.Fatalf("got %T, want batchResultMsg", msg)
	}
	if result.Err != nil {
		t.Fatalf("finalize: %v", result.Err)
	}

	if len(asr.batches) != 1 {
		t.Fatalf("batches = %d, want 1", len(asr.batches))
	}
	got := asr.batches[0]
	if got[0].Question != "first" || got[0].Code != "answer one" {
		t.Errorf("batch[0] = %+v", got[0])
	}
	if got[1].Question != "second" || got[1].Code != "answer two" {
		t.Errorf("batch[1] = %+v, want the pre-snapshot value", got[1])
	}
}

func TestAdvanceBlockedWhileSubmitting(t *testing.T) {
	s := loadedScreen(t, &mockAssessor{}, nil)

	s.advance() // to question two
	s.advance() // finalize, submitting now pending

	updated, cmd := s.advance()
	s = updated.(*AssessmentScreen)
	if cmd != nil {
		t.Error("expected no command for blocked advance")
	}
	if !s.state.Submitting() {
		t.Error("submitting flag lost")
	}
}

func TestFinalizeFailureAllowsRetry(t *testing.T) {
	asr := &mockAssessor{err: errors.New("gateway timeout")}
	s := loadedScreen(t, asr, nil)

	s.advance()
	updated, cmd := s.advance()
	s = updated.(*AssessmentScreen)

	msg := cmd()
	updated, _ = s.Update(msg)
	s = updated.(*AssessmentScreen)

	if s.state.Submitting() {
		t.Error("expected submitting cleared after failure")
	}
	if s.state.Complete() {
		t.Error("session must not complete on failure")
	}
	if s.errMsg == "" {
		t.Error("expected error notice")
	}

	// Retry issues a second batch.
	asr.err = nil
	updated, cmd = s.advance()
	s = updated.(*AssessmentScreen)
	if cmd == nil {
		t.Fatal("expected retry finalize command")
	}
	cmd()
	if len(asr.batches) != 2 {
		t.Errorf("batches = %d, want 2", len(asr.batches))
	}
}

func TestBatchSuccessRecordsPlacement(t *testing.T) {
	events := &mockEventRepo{}
	asr := &mockAssessor{placement: &grader.Placement{
		SkillLevel:    curriculum.DifficultyAdvanced,
		TopicStrength: map[string]float64{"Arrays": 1},
	}}
	s := loadedScreen(t, asr, events)

	s.advance()
	updated, cmd := s.advance()
	s = updated.(*AssessmentScreen)

	msg := cmd()
	updated, followUp := s.Update(msg)
	s = updated.(*AssessmentScreen)

	if !s.state.Complete() {
		t.Fatal("expected completed session")
	}
	if followUp == nil {
		t.Fatal("expected follow-up command")
	}
	// The follow-up records the outcome and then navigates.
	nav := followUp()
	if _, ok := nav.(router.ReplaceScreenMsg); !ok {
		t.Errorf("got %T, want ReplaceScreenMsg (no back navigation into a finished assessment)", nav)
	}

	if len(events.placements) != 1 {
		t.Fatalf("placements = %d, want 1", len(events.placements))
	}
	if events.placements[0].SkillLevel != "Advanced" {
		t.Errorf("skill level = %q", events.placements[0].SkillLevel)
	}
	var sawFinish bool
	for _, e := range events.sessionEvents {
		if e.Action == "finish" {
			sawFinish = true
		}
	}
	if !sawFinish {
		t.Error("expected a finish session event")
	}
}
