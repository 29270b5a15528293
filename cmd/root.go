package cmd

import (
	"github.com/avikram/studyloop/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studyloop",
	Short: "Adaptive AI study sessions in the terminal",
	Long:  "Studyloop runs adaptive tutoring sessions: an AI agent picks questions, grades answers, tracks per-topic mastery, and decides when you are done.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYLOOP_DB env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(actionsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STUDYLOOP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
