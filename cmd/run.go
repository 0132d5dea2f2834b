package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/smahajan/codequarry/internal/api"
	"github.com/smahajan/codequarry/internal/app"
	"github.com/smahajan/codequarry/internal/assistant"
	"github.com/smahajan/codequarry/internal/grader"
	"github.com/smahajan/codequarry/internal/llm"
	"github.com/smahajan/codequarry/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repo: %w", err)
	}

	deps := app.Deps{
		Events:    events,
		SessionID: uuid.New().String(),
	}

	if client, ok := api.FromEnv(); ok {
		// Platform mode: the server grades, assesses and answers.
		remote := grader.NewRemote(client)
		deps.Client = client
		deps.Grader = remote
		deps.Assessor = remote
		deps.Assistant = assistant.NewRemote(client)
		return app.Run(deps)
	}

	// Local mode: a configured model provider does the grading.
	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		return fmt.Errorf("no platform credentials (CODEQUARRY_API_URL, CODEQUARRY_TOKEN) and no model provider configured: %w", err)
	}
	local := grader.NewLocal(provider, grader.DefaultConfig())
	deps.Grader = local
	deps.Assessor = local
	deps.Assistant = assistant.NewLocal(provider, assistant.DefaultConfig())

	return app.Run(deps)
}
