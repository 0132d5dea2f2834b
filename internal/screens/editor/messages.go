package editor

import (
	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/practice"
)

// problemLoadedMsg carries the fresh problem fetched from the platform
// when the screen opens.
type problemLoadedMsg struct {
	Problem curriculum.Question
	Err     error
}

// verdictMsg is sent when a grading round trip resolves. Attempt ties the
// result back to the submission that produced it; stale attempts are
// discarded by the session state.
type verdictMsg struct {
	Attempt   int
	Snapshot  string // the code that was actually graded
	Verdict   practice.Verdict
	LatencyMs int64
	Err       error
}

// replyMsg is sent when a doubt-solver round trip resolves.
type replyMsg struct {
	Question string
	Reply    string
	Err      error
}
