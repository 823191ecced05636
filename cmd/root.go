package cmd

import (
	"github.com/keleoz/quizpath/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizpath",
	Short: "Adaptive self-study quiz tool",
	Long: "QuizPath — terminal quiz trainer that ranks what to practice next\n" +
		"from your attempt history and plans prerequisite-aware review paths.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZPATH_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to quizpath.yaml")
	rootCmd.PersistentFlags().String("user", "", "Learner ID (overrides config)")
	rootCmd.PersistentFlags().String("data", "", "Directory holding catalog and graph files (overrides config)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Debug-level diagnostics in the log file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
