// Package practice implements the single-problem practice session: one
// editable solution, a grade-on-demand submission pipeline, and the
// doubt-solver conversation thread. One State instance exists per editor
// view and is discarded on navigation; nothing here is shared or locked.
package practice

import (
	"github.com/smahajan/codequarry/internal/answers"
	"github.com/smahajan/codequarry/internal/curriculum"
)

// Verdict is the grading outcome for one submission. Transient: it lives
// from the moment a submission resolves until the next submission is
// issued or the learner navigates away.
type Verdict struct {
	Correct bool   `json:"correct"`
	Message string `json:"message"`
}

// State is the practice-session state for one problem.
type State struct {
	Problem      curriculum.Question
	Language     curriculum.Language
	Conversation *Thread

	code    *answers.Store
	pending bool
	attempt int
	result  *Verdict
}

// NewState opens a practice session on the given problem, seeding the
// editor with the problem's starter code.
func NewState(problem curriculum.Question, lang curriculum.Language) *State {
	return &State{
		Problem:      problem,
		Language:     lang,
		Conversation: NewThread(),
		code:         answers.NewStore(map[int]string{problem.ID: problem.StarterCode}),
	}
}

// Code returns the current editor contents.
func (s *State) Code() string {
	return s.code.Get(s.Problem.ID)
}

// SetCode applies a local edit. Synchronous: the next read sees it even
// while a submission is in flight; the in-flight submission itself is
// unaffected because it captured a snapshot at issue time.
func (s *State) SetCode(code string) {
	s.code.Set(s.Problem.ID, code)
}

// Pending reports whether a submission is in flight.
func (s *State) Pending() bool { return s.pending }

// Result returns the latest verdict, or nil if none is displayable.
func (s *State) Result() *Verdict { return s.result }

// BeginSubmit issues a new submission. It is rejected while another
// submission for this problem is pending, keeping at most one in flight.
// On issue the prior verdict is cleared immediately — before the request
// goes out — so the UI can never show a result next to code it does not
// match. The returned code is a copy taken now; later edits do not change
// what gets graded. The attempt token identifies this issue for
// ResolveSubmit/FailSubmit.
func (s *State) BeginSubmit() (attempt int, code string, ok bool) {
	if s.pending {
		return 0, "", false
	}
	s.pending = true
	s.result = nil
	s.attempt++
	return s.attempt, s.Code(), true
}

// ResolveSubmit applies the verdict for the given attempt. A verdict for
// any attempt other than the most recently issued one is stale and is
// discarded: last-issued-wins, not last-resolved-wins. Returns whether
// the verdict was applied.
func (s *State) ResolveSubmit(attempt int, v Verdict) bool {
	if attempt != s.attempt {
		return false
	}
	s.pending = false
	s.result = &v
	return true
}

// FailSubmit clears the pending flag after a transport failure, leaving
// the result cleared. Stale failures are discarded like stale verdicts.
func (s *State) FailSubmit(attempt int) bool {
	if attempt != s.attempt {
		return false
	}
	s.pending = false
	return true
}

// ClearResult drops the displayed verdict, e.g. when dismissing the
// feedback overlay.
func (s *State) ClearResult() {
	s.result = nil
}
