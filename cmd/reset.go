package cmd

import (
	"context"
	"fmt"

	"github.com/smahajan/codequarry/internal/api"
	"github.com/smahajan/codequarry/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all stored progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This erases every stored submission, placement and session.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		repo, err := s.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		ctx := context.Background()
		if client, ok := api.FromEnv(); ok {
			if err := client.ResetProgress(ctx); err != nil {
				return fmt.Errorf("reset platform progress: %w", err)
			}
		}
		if err := repo.Reset(ctx); err != nil {
			return fmt.Errorf("reset local events: %w", err)
		}

		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip confirmation")
}
