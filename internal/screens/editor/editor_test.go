package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/practice"
	"github.com/smahajan/codequarry/internal/store"
)

type mockGrader struct {
	verdict practice.Verdict
	err     error
	graded  []string
}

func (m *mockGrader) Grade(_ context.Context, _ curriculum.Question, code string, _ curriculum.Language) (practice.Verdict, error) {
	m.graded = append(m.graded, code)
	if m.err != nil {
		return practice.Verdict{}, m.err
	}
	return m.verdict, nil
}

type mockAssistant struct {
	reply string
	err   error
	asked []string
}

func (m *mockAssistant) Ask(_ context.Context, _ curriculum.Question, _ string, question string) (string, error) {
	m.asked = append(m.asked, question)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

type mockEventRepo struct {
	submissions []store.SubmissionEventData
	asks        []store.AskEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSubmissionEvent(_ context.Context, data store.SubmissionEventData) error {
	m.submissions = append(m.submissions, data)
	return nil
}
func (m *mockEventRepo) AppendAskEvent(_ context.Context, data store.AskEventData) error {
	m.asks = append(m.asks, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AppendPlacement(_ context.Context, _ store.PlacementEventData) error {
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

var problem = curriculum.Question{
	ID:          7,
	Title:       "Two Sum",
	Description: "Find the pair",
	StarterCode: "def solve():",
}

func TestSubmitGradesSnapshotNotLiveBuffer(t *testing.T) {
	g := &mockGrader{verdict: practice.Verdict{Correct: true, Message: "nice"}}
	e := New(problem, nil, g, nil, nil, "test-session")

	e.code.SetValue("version one")
	updated, cmd := e.submit()
	e = updated.(*EditorScreen)
	if cmd == nil {
		t.Fatal("expected grading command")
	}

	// Edit while the request is in flight.
	e.code.SetValue("version two")
	e.state.SetCode("version two")

	msg := cmd()
	v, ok := msg.(verdictMsg)
	if !ok {
		t.Fatalf("got %T", msg)
	}
	if len(g.graded) != 1 || g.graded[0] != "version one" {
		t.Errorf("graded %v, want the snapshot", g.graded)
	}

	updated, _ = e.Update(v)
	e = updated.(*EditorScreen)
	if r := e.state.Result(); r == nil || !r.Correct {
		t.Errorf("result = %+v", r)
	}
	// The live buffer keeps the newer edit.
	if e.state.Code() != "version two" {
		t.Errorf("code = %q", e.state.Code())
	}
}

func TestSecondSubmitRejectedWhilePending(t *testing.T) {
	g := &mockGrader{}
	e := New(problem, nil, g, nil, nil, "test-session")

	updated, cmd := e.submit()
	e = updated.(*EditorScreen)
	if cmd == nil {
		t.Fatal("first submit should issue")
	}

	updated, cmd2 := e.submit()
	e = updated.(*EditorScreen)
	if cmd2 != nil {
		t.Error("second submit must be rejected while pending")
	}
	if e.notice == "" {
		t.Error("expected a rejection notice")
	}
}

func TestStaleVerdictDiscardedAfterRetry(t *testing.T) {
	g := &mockGrader{verdict: practice.Verdict{Correct: false, Message: "old"}}
	e := New(problem, nil, g, nil, nil, "test-session")

	// First submission fails in transport; pending clears.
	e.submit()
	failed := verdictMsg{Attempt: 1, Err: errors.New("timeout")}
	updated, _ := e.Update(failed)
	e = updated.(*EditorScreen)
	if e.state.Pending() {
		t.Fatal("pending should clear on failure")
	}

	// Second submission issues while the first response is still in
	// transit somewhere.
	g.verdict = practice.Verdict{Correct: true, Message: "new"}
	updated, cmd2 := e.submit()
	e = updated.(*EditorScreen)
	if cmd2 == nil {
		t.Fatal("resubmit should issue")
	}

	// The first response finally arrives: stale, must be dropped.
	stale := verdictMsg{Attempt: 1, Verdict: practice.Verdict{Correct: false, Message: "old"}}
	updated, _ = e.Update(stale)
	e = updated.(*EditorScreen)
	if e.state.Result() != nil {
		t.Error("stale verdict must not surface")
	}

	// The second response applies.
	msg := cmd2()
	updated, _ = e.Update(msg)
	e = updated.(*EditorScreen)
	if r := e.state.Result(); r == nil || r.Message != "new" {
		t.Errorf("result = %+v, want the latest verdict", r)
	}
}

func TestVerdictRecordsSubmissionEvent(t *testing.T) {
	events := &mockEventRepo{}
	g := &mockGrader{verdict: practice.Verdict{Correct: true, Message: "solid"}}
	e := New(problem, nil, g, nil, events, "test-session")

	e.code.SetValue("final code")
	updated, cmd := e.submit()
	e = updated.(*EditorScreen)

	updated, followUp := e.Update(cmd())
	e = updated.(*EditorScreen)
	if followUp == nil {
		t.Fatal("expected event-recording command")
	}
	followUp()

	if len(events.submissions) != 1 {
		t.Fatalf("submissions = %d", len(events.submissions))
	}
	sub := events.submissions[0]
	if sub.Code != "final code" || !sub.Correct || sub.ProblemID != 7 {
		t.Errorf("event = %+v", sub)
	}
}

func TestAskAppendsOptimisticallyAndResolves(t *testing.T) {
	ast := &mockAssistant{reply: "Consider a hash map."}
	e := New(problem, nil, nil, ast, nil, "test-session")
	e.focus = focusChat

	e.ask.Model.SetValue("  how do I speed this up?  ")
	updated, cmd := e.askQuestion()
	e = updated.(*EditorScreen)
	if cmd == nil {
		t.Fatal("expected ask command")
	}

	// User entry visible before the reply arrives.
	entries := e.state.Conversation.Entries()
	if len(entries) != 1 || entries[0].Speaker != practice.SpeakerUser {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].Text != "how do I speed this up?" {
		t.Errorf("question not trimmed: %q", entries[0].Text)
	}
	if e.ask.Value() != "" {
		t.Error("input should clear after send")
	}

	updated, _ = e.Update(cmd())
	e = updated.(*EditorScreen)
	entries = e.state.Conversation.Entries()
	if len(entries) != 2 || entries[1].Text != "Consider a hash map." {
		t.Errorf("entries = %+v", entries)
	}
}

func TestAskWhitespaceRejected(t *testing.T) {
	e := New(problem, nil, nil, &mockAssistant{}, nil, "test-session")
	e.focus = focusChat

	e.ask.Model.SetValue("   ")
	updated, cmd := e.askQuestion()
	e = updated.(*EditorScreen)
	if cmd != nil {
		t.Error("whitespace question must not send")
	}
	if e.state.Conversation.Len() != 0 {
		t.Error("nothing should append for rejected input")
	}
}

func TestAskFailureAppendsErrorNotice(t *testing.T) {
	events := &mockEventRepo{}
	ast := &mockAssistant{err: errors.New("unreachable")}
	e := New(problem, nil, nil, ast, events, "test-session")
	e.focus = focusChat

	e.ask.Model.SetValue("help")
	updated, cmd := e.askQuestion()
	e = updated.(*EditorScreen)

	updated, followUp := e.Update(cmd())
	e = updated.(*EditorScreen)

	entries := e.state.Conversation.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want user + error notice", len(entries))
	}
	if entries[1].Text != practice.ErrorNotice {
		t.Errorf("entries[1] = %q", entries[1].Text)
	}

	if followUp != nil {
		followUp()
	}
	if len(events.asks) != 1 || events.asks[0].Answered {
		t.Errorf("ask events = %+v", events.asks)
	}
}

func TestLanguageCycles(t *testing.T) {
	e := New(problem, nil, nil, nil, nil, "test-session")
	if e.state.Language != curriculum.LangPython {
		t.Fatalf("default language = %s", e.state.Language)
	}
	e.state.Language = e.state.Language.Next()
	if e.state.Language != curriculum.LangJava {
		t.Errorf("next = %s, want java", e.state.Language)
	}
}

func TestFreshProblemReplacesUntouchedStarter(t *testing.T) {
	e := New(problem, nil, nil, nil, nil, "test-session")

	fresh := problem
	fresh.Description = "Find the pair summing to the target"
	fresh.StarterCode = "def solve(nums, target):"

	updated, _ := e.Update(problemLoadedMsg{Problem: fresh})
	e = updated.(*EditorScreen)

	if e.state.Problem.Description != fresh.Description {
		t.Errorf("description = %q, want platform copy", e.state.Problem.Description)
	}
	if e.state.Code() != fresh.StarterCode {
		t.Errorf("code = %q, want reseeded starter", e.state.Code())
	}
	if e.code.Value() != fresh.StarterCode {
		t.Errorf("editor buffer = %q, want reseeded starter", e.code.Value())
	}
}

func TestFreshProblemKeepsTypedCode(t *testing.T) {
	e := New(problem, nil, nil, nil, nil, "test-session")
	typed := "def solve():\n    return 42"
	e.code.SetValue(typed)
	e.state.SetCode(typed)

	fresh := problem
	fresh.StarterCode = "def solve(nums):"

	updated, _ := e.Update(problemLoadedMsg{Problem: fresh})
	e = updated.(*EditorScreen)

	if e.state.Code() != typed {
		t.Errorf("code = %q, typed code must survive the refresh", e.state.Code())
	}
	if e.state.Problem.StarterCode != fresh.StarterCode {
		t.Errorf("problem metadata should still update, got %q", e.state.Problem.StarterCode)
	}
}

func TestFreshProblemLoadFailureKeepsDashboardCopy(t *testing.T) {
	e := New(problem, nil, nil, nil, nil, "test-session")

	updated, _ := e.Update(problemLoadedMsg{Err: errors.New("connection refused")})
	e = updated.(*EditorScreen)

	if e.state.Problem.Title != "Two Sum" {
		t.Errorf("problem = %q, want the dashboard copy", e.state.Problem.Title)
	}
	if e.state.Code() != "def solve():" {
		t.Errorf("code = %q, want the dashboard starter", e.state.Code())
	}
}
