package cli

import (
	"context"
	"fmt"

	"github.com/gitstandup/gitstandup/internal/services"
	"github.com/gitstandup/gitstandup/pkg/config"
	"github.com/gitstandup/gitstandup/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a standup report for a user in a repository",
	Long: `Fetches the user's pull requests and commits from the GitHub API,
formats them into an activity document and asks the summarizer for a
standup report, which is printed to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Init()
		if verbose, _ := cmd.InheritedFlags().GetBool("verbose"); verbose {
			logger.GetLogger().SetLevel(logrus.DebugLevel)
		}

		owner, _ := cmd.Flags().GetString("owner")
		repo, _ := cmd.Flags().GetString("repo")
		user, _ := cmd.Flags().GetString("user")
		days, _ := cmd.Flags().GetInt("days")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		githubService := services.NewGitHubService(cfg)
		activityService := services.NewActivityService(githubService, cfg)
		reportService := services.NewReportService(cfg)
		geminiService := services.NewGeminiService(cfg)

		// No report history in one-shot mode
		standupService := services.NewStandupService(activityService, reportService, geminiService, nil, cfg)

		report, err := standupService.GenerateReport(context.Background(), owner, repo, user, days)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), report)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("owner", "o", "", "Repository owner (required)")
	reportCmd.Flags().StringP("repo", "r", "", "Repository name (required)")
	reportCmd.Flags().StringP("user", "u", "", "GitHub username to report on (required)")
	reportCmd.Flags().IntP("days", "d", 7, "Trailing window in days (1-30)")

	_ = reportCmd.MarkFlagRequired("owner")
	_ = reportCmd.MarkFlagRequired("repo")
	_ = reportCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(reportCmd)
}
