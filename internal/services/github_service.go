package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gitstandup/gitstandup/internal/models"
	"github.com/gitstandup/gitstandup/pkg/config"
	"github.com/gitstandup/gitstandup/pkg/logger"
)

// FetchErrorMode controls what a paginated listing does when a page request
// fails mid-sequence.
type FetchErrorMode int

const (
	// FetchErrorsAsExhausted treats a failed page request like an empty page:
	// pagination stops and the items collected so far are returned without error.
	FetchErrorsAsExhausted FetchErrorMode = iota

	// FetchErrorsPropagate returns the partial result together with ErrUpstreamFetch
	FetchErrorsPropagate
)

type GitHubService struct {
	baseURL    string
	token      string
	perPage    int
	errorMode  FetchErrorMode
	httpClient *http.Client
}

func NewGitHubService(cfg *config.Config) *GitHubService {
	errorMode := FetchErrorsAsExhausted
	if cfg.GitHub.PropagateFetchErrors {
		errorMode = FetchErrorsPropagate
	}

	return &GitHubService{
		baseURL:   cfg.GitHub.APIURL,
		token:     cfg.GitHub.Token,
		perPage:   cfg.GitHub.PerPage,
		errorMode: errorMode,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.GitHub.HTTPTimeout) * time.Second,
		},
	}
}

// FetchPages walks a paginated GitHub listing resource and returns the
// flattened array elements of every page fetched. Pagination stops on an
// empty page, on reaching maxItems (0 means unbounded), or on a failed page
// request, which is handled according to the configured FetchErrorMode.
// A body that cannot be decoded as a JSON array is always an error.
func (s *GitHubService) FetchPages(ctx context.Context, path string, query url.Values, maxItems int) ([]json.RawMessage, error) {
	var items []json.RawMessage

	for page := 1; ; page++ {
		pageItems, err := s.fetchPage(ctx, path, query, page)
		if err != nil {
			if errors.Is(err, models.ErrMalformedResponse) || ctx.Err() != nil {
				return items, err
			}
			if s.errorMode == FetchErrorsPropagate {
				return items, fmt.Errorf("%w: %s %v", models.ErrUpstreamFetch, path, err)
			}
			logger.WithError(err).WithField("path", path).Warn("Stopping pagination after fetch failure")
			return items, nil
		}

		if len(pageItems) == 0 {
			return items, nil
		}
		items = append(items, pageItems...)

		if maxItems > 0 && len(items) >= maxItems {
			return items[:maxItems], nil
		}
	}
}

// fetchPage requests a single page and decodes its JSON array body
func (s *GitHubService) fetchPage(ctx context.Context, path string, query url.Values, page int) ([]json.RawMessage, error) {
	params := url.Values{}
	for key, values := range query {
		params[key] = values
	}
	params.Set("per_page", strconv.Itoa(s.perPage))
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var pageItems []json.RawMessage
	if err := json.Unmarshal(body, &pageItems); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedResponse, err)
	}

	return pageItems, nil
}
