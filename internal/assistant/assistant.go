// Package assistant answers learner doubts about the problem they are
// working on. Like the grader it has a platform-backed and a model-backed
// implementation behind one interface.
package assistant

import (
	"context"

	"github.com/smahajan/codequarry/internal/curriculum"
)

// Assistant answers one question about a problem. code is the learner's
// current editor contents, captured when the question was asked.
type Assistant interface {
	Ask(ctx context.Context, problem curriculum.Question, code, question string) (string, error)
}
