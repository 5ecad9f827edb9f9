package services

import (
	"fmt"
	"strings"

	"github.com/gitstandup/gitstandup/internal/models"
	"github.com/gitstandup/gitstandup/pkg/config"
)

// ReportService renders an ActivitySummary into the plain-text document
// handed to the summarizer. Output is deterministic: fixed section order,
// no locale-sensitive formatting, dates truncated to the day.
type ReportService struct {
	maxPRDetails     int
	maxCommitDetails int
}

func NewReportService(cfg *config.Config) *ReportService {
	return &ReportService{
		maxPRDetails:     cfg.Report.MaxPRDetails,
		maxCommitDetails: cfg.Report.MaxCommitDetails,
	}
}

// FormatActivity renders the summary. Detail sections are truncated to the
// configured limits but the aggregate counts always reflect the full lists.
func (s *ReportService) FormatActivity(summary *models.ActivitySummary) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("GitHub Activity Report for %s in %s (Last %d days)",
		summary.User, summary.Repository, summary.WindowDays))
	lines = append(lines, strings.Repeat("=", 60))

	prStats := summary.PullRequests
	lines = append(lines, "", "PULL REQUESTS SUMMARY:")
	lines = append(lines, fmt.Sprintf("Total PRs: %d", prStats.Total))
	lines = append(lines, fmt.Sprintf("Open: %d, Closed: %d, Merged: %d", prStats.Open, prStats.Closed, prStats.Merged))

	if len(prStats.Items) > 0 {
		lines = append(lines, "", "PULL REQUESTS DETAILS:")
		for _, pr := range truncate(prStats.Items, s.maxPRDetails) {
			state := "(" + pr.State
			if pr.IsMerged() {
				state += ", merged"
			}
			state += ")"
			lines = append(lines, fmt.Sprintf("• PR #%d: %s %s", pr.Number, pr.Title, state))
			lines = append(lines, fmt.Sprintf("  Created: %s", pr.CreatedAt.Format("2006-01-02")))
		}
	}

	commitStats := summary.Commits
	lines = append(lines, "", "COMMITS SUMMARY:")
	lines = append(lines, fmt.Sprintf("Total Commits: %d", commitStats.Total))

	if len(commitStats.Items) > 0 {
		lines = append(lines, "", "COMMIT DETAILS:")
		for _, commit := range truncate(commitStats.Items, s.maxCommitDetails) {
			lines = append(lines, fmt.Sprintf("• %s: %s (%s)",
				commit.ShortSHA(), commit.Subject(), commit.AuthoredAt.Format("2006-01-02")))
		}
	}

	return strings.Join(lines, "\n")
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
