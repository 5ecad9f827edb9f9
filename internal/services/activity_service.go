package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gitstandup/gitstandup/internal/models"
	"github.com/gitstandup/gitstandup/pkg/config"
	"golang.org/x/sync/errgroup"
)

// Wire shapes of the GitHub REST responses. Only the fields the summary
// needs are decoded; anything else on the payload is ignored.
type apiUser struct {
	Login string `json:"login"`
}

type apiPullRequest struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	State     string     `json:"state"`
	MergedAt  *time.Time `json:"merged_at"`
	CreatedAt time.Time  `json:"created_at"`
	User      *apiUser   `json:"user"`
}

type apiCommit struct {
	SHA    string   `json:"sha"`
	Author *apiUser `json:"author"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

type ActivityService struct {
	github     *GitHubService
	maxCommits int
}

func NewActivityService(github *GitHubService, cfg *config.Config) *ActivityService {
	return &ActivityService{
		github:     github,
		maxCommits: cfg.GitHub.MaxCommits,
	}
}

// ListUserPullRequests fetches every pull request of the repository and keeps
// the ones authored by username, matched case-insensitively. API order
// (newest first) is preserved.
func (s *ActivityService) ListUserPullRequests(ctx context.Context, owner, repo, username string) ([]*models.PullRequest, error) {
	query := url.Values{"state": {"all"}}

	items, err := s.github.FetchPages(ctx, fmt.Sprintf("/repos/%s/%s/pulls", owner, repo), query, 0)
	if err != nil {
		return nil, err
	}

	var prs []*models.PullRequest
	for _, item := range items {
		var pr apiPullRequest
		if err := json.Unmarshal(item, &pr); err != nil {
			return nil, fmt.Errorf("%w: pull request entry: %v", models.ErrMalformedResponse, err)
		}
		if pr.User == nil || !strings.EqualFold(pr.User.Login, username) {
			continue
		}
		prs = append(prs, &models.PullRequest{
			Number:    pr.Number,
			Title:     pr.Title,
			Author:    pr.User.Login,
			State:     pr.State,
			MergedAt:  pr.MergedAt,
			CreatedAt: pr.CreatedAt,
		})
	}

	return prs, nil
}

// ListUserCommits fetches commits authored by username within the trailing
// window. The server filters by author and since; the commit ceiling bounds
// accumulation regardless of how many pages exist upstream.
func (s *ActivityService) ListUserCommits(ctx context.Context, owner, repo, username string, sinceDays int) ([]*models.Commit, error) {
	since := time.Now().UTC().AddDate(0, 0, -sinceDays)
	query := url.Values{
		"author": {username},
		"since":  {since.Format(time.RFC3339)},
	}

	items, err := s.github.FetchPages(ctx, fmt.Sprintf("/repos/%s/%s/commits", owner, repo), query, s.maxCommits)
	if err != nil {
		return nil, err
	}

	var commits []*models.Commit
	for _, item := range items {
		var commit apiCommit
		if err := json.Unmarshal(item, &commit); err != nil {
			return nil, fmt.Errorf("%w: commit entry: %v", models.ErrMalformedResponse, err)
		}
		author := commit.Commit.Author.Name
		if commit.Author != nil {
			author = commit.Author.Login
		}
		commits = append(commits, &models.Commit{
			SHA:        commit.SHA,
			Author:     author,
			Message:    commit.Commit.Message,
			AuthoredAt: commit.Commit.Author.Date,
		})
	}

	return commits, nil
}

// BuildSummary collects pull requests and commits for the user and packages
// them with aggregate counts. The two fetches are independent and run
// concurrently.
func (s *ActivityService) BuildSummary(ctx context.Context, owner, repo, username string, sinceDays int) (*models.ActivitySummary, error) {
	var (
		prs     []*models.PullRequest
		commits []*models.Commit
	)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		prs, err = s.ListUserPullRequests(egCtx, owner, repo, username)
		return err
	})

	eg.Go(func() error {
		var err error
		commits, err = s.ListUserCommits(egCtx, owner, repo, username, sinceDays)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return models.NewActivitySummary(username, owner+"/"+repo, sinceDays, prs, commits), nil
}
