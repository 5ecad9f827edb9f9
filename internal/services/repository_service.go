package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gitstandup/gitstandup/internal/models"
	"github.com/gitstandup/gitstandup/pkg/config"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// RepositoryService validates repository coordinates against the GitHub API
type RepositoryService struct {
	client *github.Client
}

func NewRepositoryService(cfg *config.Config) *RepositoryService {
	httpClient := http.DefaultClient
	if cfg.GitHub.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHub.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	if baseURL, err := url.Parse(strings.TrimSuffix(cfg.GitHub.APIURL, "/") + "/"); err == nil {
		client.BaseURL = baseURL
	}

	return &RepositoryService{client: client}
}

// GetRepository fetches basic repository metadata, returning
// ErrRepositoryNotFound when the repository does not exist or is private
func (s *RepositoryService) GetRepository(ctx context.Context, owner, name string) (*models.RepositoryInfo, error) {
	repo, resp, err := s.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, models.ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("failed to fetch repository: %w", err)
	}

	return &models.RepositoryInfo{
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
	}, nil
}
