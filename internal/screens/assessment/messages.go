package assessment

import (
	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/grader"
)

// questionsLoadedMsg is sent when the diagnostic question set arrives.
type questionsLoadedMsg struct {
	Questions []curriculum.Question
	Err       error
}

// batchResultMsg is sent when the batch finalize resolves. Placement is
// nil when the platform computed the profile server-side.
type batchResultMsg struct {
	Placement *grader.Placement
	Err       error
}
