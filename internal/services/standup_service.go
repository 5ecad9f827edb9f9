package services

import (
	"context"
	"fmt"

	"github.com/gitstandup/gitstandup/internal/models"
	"github.com/gitstandup/gitstandup/pkg/config"
	"github.com/gitstandup/gitstandup/pkg/logger"
)

const (
	minReportDays = 1
	maxReportDays = 30
)

const reportSystemInstruction = `You are an expert software development analyst and standup report generator.

Your task is to analyze GitHub activity data and create a concise, professional standup report.

Analysis guidelines:
1. Focus on meaningful contributions and progress
2. Categorize work into logical groups (features, bugs, refactoring, etc.)
3. Highlight impact and business value
4. Note collaboration patterns (PRs, reviews)
5. Identify productivity trends

Generate a structured report with these sections:

WORK COMPLETED:
- List key accomplishments with brief descriptions
- Group similar tasks together
- Mention notable commits or PRs

IMPACT & VALUE:
- Highlight business/technical value delivered
- Note any performance improvements or bug fixes

COLLABORATION:
- Mention PRs created/reviewed
- Note team interactions

PRODUCTIVITY INSIGHTS:
- Overall activity level
- Code quality indicators
- Development patterns

Keep the tone professional but conversational, suitable for team standups.
Limit the response to 100-200 words maximum.`

// StandupService orchestrates the report pipeline:
// validate -> collect -> format -> summarize.
type StandupService struct {
	activityService *ActivityService
	reportService   *ReportService
	summarizer      Summarizer
	historyService  *ReportHistoryService
	cfg             *config.Config
}

// NewStandupService creates the pipeline. historyService may be nil when no
// report history should be kept (e.g. one-shot CLI runs).
func NewStandupService(activityService *ActivityService, reportService *ReportService, summarizer Summarizer, historyService *ReportHistoryService, cfg *config.Config) *StandupService {
	return &StandupService{
		activityService: activityService,
		reportService:   reportService,
		summarizer:      summarizer,
		historyService:  historyService,
		cfg:             cfg,
	}
}

// GenerateReport produces a standup report for the user's activity in the
// repository over the trailing window. No stage retries; the first failure
// ends the request.
func (s *StandupService) GenerateReport(ctx context.Context, owner, repo, username string, days int) (string, error) {
	if days < minReportDays || days > maxReportDays {
		return "", &models.ValidationError{Field: "days", Message: fmt.Sprintf("must be between %d and %d", minReportDays, maxReportDays)}
	}
	if !s.cfg.GitHubConfigured() {
		return "", &models.ConfigurationError{Missing: "GITHUB_TOKEN"}
	}
	if !s.cfg.GeminiConfigured() {
		return "", &models.ConfigurationError{Missing: "GEMINI_API_KEY"}
	}

	logger.WithFields(map[string]interface{}{
		"owner":    owner,
		"repo":     repo,
		"username": username,
		"days":     days,
	}).Info("Generating standup report")

	summary, err := s.activityService.BuildSummary(ctx, owner, repo, username, days)
	if err != nil {
		return "", fmt.Errorf("failed to collect activity: %w", err)
	}

	document := s.reportService.FormatActivity(summary)
	prompt := fmt.Sprintf("Please analyze the following GitHub activity data and generate a standup report:\n\n%s\n\nFocus on the work done, impact created, and any notable patterns or insights.", document)

	report, err := s.summarizer.Summarize(ctx, reportSystemInstruction, prompt)
	if err != nil {
		return "", err
	}

	if s.historyService != nil {
		if _, err := s.historyService.SaveReport(owner, repo, username, days, report); err != nil {
			// History is best-effort; a storage failure must not fail the request
			logger.WithError(err).Warn("Failed to save report history")
		}
	}

	return report, nil
}
