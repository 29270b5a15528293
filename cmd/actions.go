package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/avikram/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Inspect recorded agent actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")
		sessionID, _ := cmd.Flags().GetString("session")
		dashboardID, _ := cmd.Flags().GetString("dashboard")
		verbose, _ := cmd.Flags().GetBool("verbose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.Actions()

		var (
			actions []store.AIAction
			hasMore bool
		)
		switch {
		case sessionID != "":
			actions, err = repo.BySession(ctx, sessionID)
		case dashboardID != "":
			actions, err = repo.ByDashboard(ctx, dashboardID)
		default:
			actions, hasMore, err = repo.List(ctx, limit, offset)
		}
		if err != nil {
			return fmt.Errorf("query actions: %w", err)
		}

		if len(actions) == 0 {
			fmt.Println("No agent actions found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-20s  %-12s  %-14s  %-7s  %s\n",
			"Seq", "Timestamp", "Action", "Topic", "Mastery", "Ms", "Session")
		fmt.Println(strings.Repeat("─", 100))

		for _, a := range actions {
			fmt.Printf("%-5d  %-19s  %-20s  %-12s  %-14d  %-7d  %s\n",
				a.Sequence,
				a.Timestamp.Format("2006-01-02 15:04:05"),
				a.ActionType,
				a.Topic,
				a.MasteryLevel,
				a.DurationMs,
				a.SessionID,
			)
			if verbose && a.Reasoning != "" {
				fmt.Printf("       reasoning: %s\n", a.Reasoning)
			}
			if verbose && a.ToolCallData != "" {
				fmt.Printf("       tool call: %s\n", a.ToolCallData)
			}
		}

		if hasMore {
			fmt.Printf("\nMore results available: rerun with --offset %d\n", offset+len(actions))
		}
		return nil
	},
}

func init() {
	actionsCmd.Flags().Int("limit", 50, "Maximum number of actions to show")
	actionsCmd.Flags().Int("offset", 0, "Number of actions to skip (newest first)")
	actionsCmd.Flags().String("session", "", "Show all actions for one session")
	actionsCmd.Flags().String("dashboard", "", "Show all actions for one dashboard")
	actionsCmd.Flags().Bool("verbose", false, "Include reasoning and tool-call payloads")
}
