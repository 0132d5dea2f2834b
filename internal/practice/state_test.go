package practice

import (
	"testing"

	"github.com/smahajan/codequarry/internal/curriculum"
)

func problem7() curriculum.Question {
	return curriculum.Question{
		ID:          7,
		Title:       "Two Sum",
		Description: "Find two numbers adding to a target.",
		StarterCode: "def two_sum(nums, target):\n    pass",
	}
}

func TestNewState_SeedsStarterCode(t *testing.T) {
	s := NewState(problem7(), curriculum.LangPython)
	if got := s.Code(); got != problem7().StarterCode {
		t.Errorf("Code() = %q, want starter code", got)
	}
	if s.Pending() {
		t.Error("new state must not be pending")
	}
	if s.Result() != nil {
		t.Error("new state must have no result")
	}
}

func TestBeginSubmit_SnapshotAtIssueTime(t *testing.T) {
	s := NewState(problem7(), curriculum.LangPython)
	s.SetCode("x")

	attempt, snapshot, ok := s.BeginSubmit()
	if !ok {
		t.Fatal("BeginSubmit rejected with nothing pending")
	}
	if snapshot != "x" {
		t.Fatalf("snapshot = %q, want %q", snapshot, "x")
	}

	// Edit while the submission is in flight.
	s.SetCode("y")
	if got := s.Code(); got != "y" {
		t.Errorf("Code() = %q, local edit must be visible immediately", got)
	}
	// The issued snapshot is unaffected.
	if snapshot != "x" {
		t.Errorf("snapshot mutated to %q", snapshot)
	}

	s.ResolveSubmit(attempt, Verdict{Correct: false, Message: "graded x"})
	if s.Result().Message != "graded x" {
		t.Errorf("result = %+v, must reflect code at issue time", s.Result())
	}
}

func TestBeginSubmit_AtMostOneInFlight(t *testing.T) {
	s := NewState(problem7(), curriculum.LangPython)

	_, _, ok := s.BeginSubmit()
	if !ok {
		t.Fatal("first BeginSubmit rejected")
	}
	if _, _, ok := s.BeginSubmit(); ok {
		t.Error("second BeginSubmit must be rejected while pending")
	}
}

func TestBeginSubmit_ClearsPriorResultBeforeIssue(t *testing.T) {
	s := NewState(problem7(), curriculum.LangPython)
	a1, _, _ := s.BeginSubmit()
	s.ResolveSubmit(a1, Verdict{Correct: false, Message: "wrong output"})

	_, _, ok := s.BeginSubmit()
	if !ok {
		t.Fatal("resubmit rejected after prior resolution")
	}
	if s.Result() != nil {
		t.Error("prior result must be cleared at issue time, not on resolution")
	}
}

func TestStaleResolutionDiscarded(t *testing.T) {
	s := NewState(problem7(), curriculum.LangPython)
	s.SetCode("x")
	a1, _, _ := s.BeginSubmit()

	// Transport-level failure clears pending; the remote response for a1
	// is still in flight somewhere.
	s.FailSubmit(a1)

	s.SetCode("y")
	a2, code2, ok := s.BeginSubmit()
	if !ok {
		t.Fatal("resubmit rejected")
	}
	if code2 != "y" {
		t.Fatalf("second snapshot = %q, want %q", code2, "y")
	}

	// The stale a1 response finally arrives. It must be discarded.
	if applied := s.ResolveSubmit(a1, Verdict{Correct: false, Message: "wrong output"}); applied {
		t.Error("stale verdict was applied")
	}
	if s.Result() != nil {
		t.Errorf("result = %+v, stale verdict leaked into state", s.Result())
	}
	if !s.Pending() {
		t.Error("pending for a2 must survive the stale resolution")
	}

	if applied := s.ResolveSubmit(a2, Verdict{Correct: true, Message: "accepted"}); !applied {
		t.Error("current verdict was rejected")
	}
	if s.Result() == nil || s.Result().Message != "accepted" {
		t.Errorf("final result = %+v, must correspond to the y submission", s.Result())
	}
}

func TestFailSubmit_ClearsPendingKeepsResultCleared(t *testing.T) {
	s := NewState(problem7(), curriculum.LangPython)
	a1, _, _ := s.BeginSubmit()

	if applied := s.FailSubmit(a1); !applied {
		t.Fatal("FailSubmit for current attempt rejected")
	}
	if s.Pending() {
		t.Error("pending must reset after failure")
	}
	if s.Result() != nil {
		t.Error("result must stay cleared after failure")
	}

	// Stale failures are ignored too.
	a2, _, _ := s.BeginSubmit()
	if applied := s.FailSubmit(a1); applied {
		t.Error("stale FailSubmit was applied")
	}
	if !s.Pending() {
		t.Error("pending for the newer attempt was clobbered")
	}
	s.ResolveSubmit(a2, Verdict{Correct: true, Message: "ok"})
}
