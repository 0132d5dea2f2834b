package assess

import (
	"testing"

	"github.com/smahajan/codequarry/internal/curriculum"
)

func threeQuestions() []curriculum.Question {
	return []curriculum.Question{
		{ID: 1, Title: "Reverse a String", Description: "desc1", StarterCode: "a"},
		{ID: 2, Title: "Find Duplicates", Description: "desc2", StarterCode: "b"},
		{ID: 3, Title: "Valid Parentheses", Description: "desc3", StarterCode: "c"},
	}
}

func TestNewState_EmptySet(t *testing.T) {
	if _, err := NewState(nil); err != ErrNoQuestions {
		t.Errorf("NewState(nil) err = %v, want ErrNoQuestions", err)
	}
}

func TestNewState_SeedsStarterCode(t *testing.T) {
	s, err := NewState(threeQuestions())
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if got := s.Answer(); got != "a" {
		t.Errorf("Answer() = %q, want starter code of first question", got)
	}
}

func TestAdvance_StepsThroughQuestions(t *testing.T) {
	s, _ := NewState(threeQuestions())

	if step := s.Advance(); step != StepNext {
		t.Fatalf("first Advance = %v, want StepNext", step)
	}
	if s.Index() != 1 || s.Current().ID != 2 {
		t.Errorf("after advance: index=%d id=%d", s.Index(), s.Current().ID)
	}

	s.Advance()
	if step := s.Advance(); step != StepFinalize {
		t.Fatalf("Advance on last question = %v, want StepFinalize", step)
	}
	if !s.Submitting() {
		t.Error("Submitting should be true after StepFinalize")
	}
}

func TestAdvance_BlockedWhileSubmitting(t *testing.T) {
	s, _ := NewState(threeQuestions())
	s.Advance()
	s.Advance()
	s.Advance() // StepFinalize

	if step := s.Advance(); step != StepBlocked {
		t.Errorf("Advance while finalize pending = %v, want StepBlocked", step)
	}
}

func TestFinalizeFailure_Retryable(t *testing.T) {
	s, _ := NewState(threeQuestions())
	s.SetAnswer("a-edited")
	s.Advance()
	s.Advance()
	s.Advance()

	s.FinalizeFailed()

	if s.Complete() {
		t.Error("session must not complete after finalize failure")
	}
	if s.Submitting() {
		t.Error("submitting flag must reset after finalize failure")
	}
	if s.Index() != s.Total()-1 {
		t.Errorf("index = %d, session must stay on the last question", s.Index())
	}
	// Earlier answers are untouched.
	batch := s.Batch()
	if batch[0].Code != "a-edited" {
		t.Errorf("batch[0].Code = %q, answer lost across retry", batch[0].Code)
	}
	if step := s.Advance(); step != StepFinalize {
		t.Errorf("retry Advance = %v, want StepFinalize", step)
	}
}

func TestFinalized_Completes(t *testing.T) {
	s, _ := NewState(threeQuestions())
	s.Advance()
	s.Advance()
	s.Advance()
	s.Finalized()

	if !s.Complete() {
		t.Error("Complete() = false after Finalized")
	}
	if step := s.Advance(); step != StepBlocked {
		t.Errorf("Advance after completion = %v, want StepBlocked", step)
	}
}

func TestBatch_OrderAndLatestAnswers(t *testing.T) {
	s, _ := NewState(threeQuestions())

	// Learner edits question 2 and advances through all three.
	s.Advance()
	s.SetAnswer("b2")
	s.Advance()

	batch := s.Batch()
	want := []BatchItem{
		{Question: "desc1", Code: "a"},
		{Question: "desc2", Code: "b2"},
		{Question: "desc3", Code: "c"},
	}
	if len(batch) != len(want) {
		t.Fatalf("batch length = %d, want %d", len(batch), len(want))
	}
	for i := range want {
		if batch[i] != want[i] {
			t.Errorf("batch[%d] = %+v, want %+v", i, batch[i], want[i])
		}
	}
}

func TestBatch_SnapshotIsolation(t *testing.T) {
	s, _ := NewState(threeQuestions())
	snap := s.Batch()

	s.SetAnswer("mutated after snapshot")

	if snap[0].Code != "a" {
		t.Errorf("snapshot[0].Code = %q, later edits must not leak into an issued batch", snap[0].Code)
	}
}

func TestSetAnswer_IgnoredWhenStale(t *testing.T) {
	s, _ := NewState(threeQuestions())
	s.Advance() // now on question 2

	// A stale write for a question id not in this session's set.
	s.SetAnswerFor(999, "late edit")

	if got := s.Answer(); got != "b" {
		t.Errorf("Answer() = %q, active answer disturbed by stale write", got)
	}
}
