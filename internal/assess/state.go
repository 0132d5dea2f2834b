// Package assess implements the diagnostic assessment session: an ordered
// run of questions with per-question answer buffers and a single batch
// submission at the end.
package assess

import (
	"errors"

	"github.com/smahajan/codequarry/internal/answers"
	"github.com/smahajan/codequarry/internal/curriculum"
)

// ErrNoQuestions is returned when the platform serves an empty question set.
var ErrNoQuestions = errors.New("assessment has no questions")

// Step is the outcome of an Advance call.
type Step int

const (
	// StepNext means the session moved to the next question.
	StepNext Step = iota
	// StepFinalize means the session is on the last question and the
	// caller should issue the batch submission.
	StepFinalize
	// StepBlocked means no transition happened: a finalize is already in
	// flight or the session is complete.
	StepBlocked
)

// State is the diagnostic session: ordered questions, answer store,
// current position and submission flag. There is deliberately no way to
// move backwards — revisiting earlier diagnostic questions after seeing
// later ones would bias the skill measurement, so the product forbids it.
type State struct {
	questions  []curriculum.Question
	answers    *answers.Store
	current    int
	complete   bool
	submitting bool
}

// NewState builds a session over the given question order. Every question
// gets an answer entry seeded from its starter code before any interaction
// is possible.
func NewState(questions []curriculum.Question) (*State, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	starters := make(map[int]string, len(questions))
	for _, q := range questions {
		starters[q.ID] = q.StarterCode
	}
	return &State{
		questions: questions,
		answers:   answers.NewStore(starters),
	}, nil
}

// Current returns the active question.
func (s *State) Current() curriculum.Question {
	return s.questions[s.current]
}

// Index returns the zero-based position of the current question.
func (s *State) Index() int { return s.current }

// Total returns the number of questions in the session.
func (s *State) Total() int { return len(s.questions) }

// Complete reports whether the session finished (batch acknowledged).
func (s *State) Complete() bool { return s.complete }

// Submitting reports whether a batch finalize is in flight.
func (s *State) Submitting() bool { return s.submitting }

// Answer returns the current code for the active question.
func (s *State) Answer() string {
	return s.answers.Get(s.Current().ID)
}

// SetAnswer records an edit to the active question's code. Synchronous:
// the next read observes it regardless of any in-flight submission.
func (s *State) SetAnswer(code string) {
	s.answers.Set(s.Current().ID, code)
}

// SetAnswerFor records an edit against an explicit question id. Writes for
// ids outside the session's set are dropped by the answer store.
func (s *State) SetAnswerFor(questionID int, code string) {
	s.answers.Set(questionID, code)
}

// Advance moves the session forward. On intermediate questions it steps to
// the next one. On the last question it flips the submitting flag and
// tells the caller to issue the batch finalize; repeated calls while the
// finalize is pending are blocked so at most one batch is in flight.
func (s *State) Advance() Step {
	if s.complete || s.submitting {
		return StepBlocked
	}
	if s.current < len(s.questions)-1 {
		s.current++
		return StepNext
	}
	s.submitting = true
	return StepFinalize
}

// Finalized marks the session complete after a successful batch ack.
func (s *State) Finalized() {
	s.submitting = false
	s.complete = true
}

// FinalizeFailed resets the submitting flag after a failed batch, leaving
// the session on the last question with all answers intact for a retry.
func (s *State) FinalizeFailed() {
	s.submitting = false
}
