package grader

import (
	"context"

	"github.com/smahajan/codequarry/internal/api"
	"github.com/smahajan/codequarry/internal/assess"
	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/practice"
)

// Remote grades through the platform. The platform owns placement, so
// Assess only submits the batch; the resulting profile is read back via
// the dashboard.
type Remote struct {
	client *api.Client
}

// NewRemote creates a platform-backed grader.
func NewRemote(client *api.Client) *Remote {
	return &Remote{client: client}
}

func (r *Remote) Grade(ctx context.Context, problem curriculum.Question, code string, lang curriculum.Language) (practice.Verdict, error) {
	return r.client.SubmitSolution(ctx, problem.ID, code, lang)
}

func (r *Remote) Assess(ctx context.Context, batch []assess.BatchItem) (*Placement, error) {
	if err := r.client.SubmitAssessment(ctx, batch); err != nil {
		return nil, err
	}
	return nil, nil
}
