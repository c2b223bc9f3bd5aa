package cmd

import (
	"github.com/spf13/cobra"

	"github.com/teyvatops/ascend/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "ascend",
	Short: "Character upgrade planner",
	Long:  "Ascend — terminal planner that turns character, weapon, artifact and talent goals into farmable material totals.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ASCEND_DB env var)")

	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ASCEND_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
