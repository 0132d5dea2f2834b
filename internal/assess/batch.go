package assess

// BatchItem pairs a question's description with the learner's final code.
// The grading collaborator correlates items by position, so the slice
// returned by Batch preserves question order exactly.
type BatchItem struct {
	Question string `json:"question"`
	Code     string `json:"code"`
}

// Batch snapshots the full answer set in question order. Values are copied
// out of the answer store at call time; edits made after the snapshot do
// not alter an issued submission.
func (s *State) Batch() []BatchItem {
	items := make([]BatchItem, 0, len(s.questions))
	for _, q := range s.questions {
		items = append(items, BatchItem{
			Question: q.Description,
			Code:     s.answers.Get(q.ID),
		})
	}
	return items
}
