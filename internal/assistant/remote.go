package assistant

import (
	"context"

	"github.com/smahajan/codequarry/internal/api"
	"github.com/smahajan/codequarry/internal/curriculum"
)

// Remote forwards questions to the platform's doubt-solver endpoint.
type Remote struct {
	client *api.Client
}

// NewRemote creates a platform-backed assistant.
func NewRemote(client *api.Client) *Remote {
	return &Remote{client: client}
}

func (r *Remote) Ask(ctx context.Context, problem curriculum.Question, code, question string) (string, error) {
	return r.client.Ask(ctx, question, code, problem.Description)
}
