// Package cli contains the CLI commands for one-shot report generation,
// built using the Cobra library.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "standup-cli",
	Short: "Generate standup reports from GitHub activity.",
	Long: `standup-cli aggregates a user's GitHub activity (pull requests and
commits) in a repository over a trailing window and turns it into a
concise standup report using an AI summarizer.`,
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
