package models

// PullRequestStats holds aggregate counts plus the full filtered pull request list.
// Merged pull requests also count as closed, so Merged <= Closed <= Total.
type PullRequestStats struct {
	Total  int            `json:"total"`
	Open   int            `json:"open"`
	Closed int            `json:"closed"`
	Merged int            `json:"merged"`
	Items  []*PullRequest `json:"items"`
}

// CommitStats holds the commit count plus the full bounded commit list
type CommitStats struct {
	Total int       `json:"total"`
	Items []*Commit `json:"items"`
}

// ActivitySummary is the aggregated activity of one user in one repository
// over a trailing window. Built once per request and never mutated afterwards.
type ActivitySummary struct {
	User         string           `json:"user"`
	Repository   string           `json:"repository"`
	WindowDays   int              `json:"window_days"`
	PullRequests PullRequestStats `json:"pull_requests"`
	Commits      CommitStats      `json:"commits"`
}

// NewActivitySummary builds a summary with aggregate counts computed from the
// given item lists. Counts always reflect the full lists; rendering limits are
// applied downstream by the formatter.
func NewActivitySummary(user, repository string, windowDays int, prs []*PullRequest, commits []*Commit) *ActivitySummary {
	summary := &ActivitySummary{
		User:       user,
		Repository: repository,
		WindowDays: windowDays,
	}

	summary.PullRequests.Total = len(prs)
	summary.PullRequests.Items = prs
	for _, pr := range prs {
		switch pr.State {
		case PRStateOpen:
			summary.PullRequests.Open++
		case PRStateClosed:
			summary.PullRequests.Closed++
		}
		if pr.IsMerged() {
			summary.PullRequests.Merged++
		}
	}

	summary.Commits.Total = len(commits)
	summary.Commits.Items = commits

	return summary
}
