package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/smahajan/codequarry/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent graded submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		problemID, _ := cmd.Flags().GetInt("problem")

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
		subs, err := repo.QuerySubmissions(ctx, store.QueryOpts{Limit: limit, ProblemID: problemID})
		if err != nil {
			return fmt.Errorf("query submissions: %w", err)
		}

		if len(subs) == 0 {
			fmt.Println("No submissions yet.")
			return nil
		}

		fmt.Printf("%-19s  %-2s  %-40s  %s\n", "Timestamp", "", "Problem", "Language")
		fmt.Println(strings.Repeat("─", 78))
		for _, sub := range subs {
			mark := "✗"
			if sub.Correct {
				mark = "✓"
			}
			title := sub.ProblemTitle
			if len(title) > 40 {
				title = title[:40]
			}
			fmt.Printf("%-19s  %-2s  %-40s  %s\n",
				sub.Timestamp.Local().Format("2006-01-02 15:04:05"),
				mark,
				title,
				sub.Language,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of submissions to show")
	historyCmd.Flags().IntP("problem", "p", 0, "Filter by problem ID")
}
