// Package answers holds the editable code buffers for the questions in an
// active session. Edits are applied synchronously so a submission snapshot
// always reflects the latest keystroke.
package answers

// Store maps question ids to the learner's current code text. The key set
// is fixed at construction; writes to unknown keys are dropped, which
// shields the store from stale edit events that land after navigation.
type Store struct {
	code map[int]string
}

// NewStore creates a Store seeded with each question's starter code.
// Every question in the set gets an entry up front, so reads never miss.
func NewStore(starters map[int]string) *Store {
	code := make(map[int]string, len(starters))
	for id, starter := range starters {
		code[id] = starter
	}
	return &Store{code: code}
}

// Get returns the current code for the question, or "" for unknown ids.
func (s *Store) Get(questionID int) string {
	return s.code[questionID]
}

// Set replaces the code for the question. A no-op if the id is not part
// of the active set.
func (s *Store) Set(questionID int, code string) {
	if _, ok := s.code[questionID]; !ok {
		return
	}
	s.code[questionID] = code
}

// Has reports whether the question id belongs to the active set.
func (s *Store) Has(questionID int) bool {
	_, ok := s.code[questionID]
	return ok
}

// Len returns the number of tracked questions.
func (s *Store) Len() int {
	return len(s.code)
}
