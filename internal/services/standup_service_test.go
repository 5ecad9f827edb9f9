package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gitstandup/gitstandup/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSummarizer struct {
	text      string
	err       error
	gotSystem string
	gotDoc    string
}

func (f *fakeSummarizer) Summarize(_ context.Context, systemInstruction, document string) (string, error) {
	f.gotSystem = systemInstruction
	f.gotDoc = document
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// newStandupFixture wires a pipeline against a fake GitHub API and a fake
// summarizer. No report history in these tests.
func newStandupFixture(t *testing.T, pullsBody, commitsBody string, summarizer Summarizer) *StandupService {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/org/repo/pulls", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, pullsBody)
			return
		}
		fmt.Fprint(w, `[]`)
	})
	mux.HandleFunc("/repos/org/repo/commits", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprint(w, commitsBody)
			return
		}
		fmt.Fprint(w, `[]`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	cfg := testConfig(server.URL)
	activityService := NewActivityService(NewGitHubService(cfg), cfg)
	return NewStandupService(activityService, NewReportService(cfg), summarizer, nil, cfg)
}

func TestGenerateReportRejectsOutOfRangeDays(t *testing.T) {
	service := newStandupFixture(t, `[]`, `[]`, &fakeSummarizer{text: "unused"})

	for _, days := range []int{-1, 0, 31, 100} {
		t.Run(fmt.Sprintf("days=%d", days), func(t *testing.T) {
			_, err := service.GenerateReport(context.Background(), "org", "repo", "alice", days)

			var validationErr *models.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "days", validationErr.Field)
		})
	}
}

func TestGenerateReportAcceptsBoundaryDays(t *testing.T) {
	service := newStandupFixture(t, `[]`, `[]`, &fakeSummarizer{text: "report text"})

	for _, days := range []int{1, 30} {
		t.Run(fmt.Sprintf("days=%d", days), func(t *testing.T) {
			report, err := service.GenerateReport(context.Background(), "org", "repo", "alice", days)

			require.NoError(t, err)
			assert.Equal(t, "report text", report)
		})
	}
}

func TestGenerateReportRequiresGitHubToken(t *testing.T) {
	service := newStandupFixture(t, `[]`, `[]`, &fakeSummarizer{text: "unused"})
	service.cfg.GitHub.Token = ""

	_, err := service.GenerateReport(context.Background(), "org", "repo", "alice", 7)

	var configErr *models.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "GITHUB_TOKEN", configErr.Missing)
}

func TestGenerateReportRequiresGeminiKey(t *testing.T) {
	service := newStandupFixture(t, `[]`, `[]`, &fakeSummarizer{text: "unused"})
	service.cfg.Gemini.APIKey = ""

	_, err := service.GenerateReport(context.Background(), "org", "repo", "alice", 7)

	var configErr *models.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "GEMINI_API_KEY", configErr.Missing)
}

func TestGenerateReportPassesFormattedActivityToSummarizer(t *testing.T) {
	commits := fmt.Sprintf(`[%s]`, commitJSON("abc1234def", "alice", "Add feature", "2024-03-02T09:00:00Z"))
	summarizer := &fakeSummarizer{text: "summary"}
	service := newStandupFixture(t, `[]`, commits, summarizer)

	_, err := service.GenerateReport(context.Background(), "org", "repo", "alice", 7)

	require.NoError(t, err)
	assert.Contains(t, summarizer.gotSystem, "standup report")
	assert.Contains(t, summarizer.gotSystem, "PRODUCTIVITY INSIGHTS")
	assert.Contains(t, summarizer.gotDoc, "GitHub Activity Report for alice in org/repo (Last 7 days)")
	assert.Contains(t, summarizer.gotDoc, "Total Commits: 1")
}

func TestGenerateReportSummarizerFailureIsTerminal(t *testing.T) {
	summarizer := &fakeSummarizer{err: fmt.Errorf("%w: boom", models.ErrSummarization)}
	service := newStandupFixture(t, `[]`, `[]`, summarizer)

	report, err := service.GenerateReport(context.Background(), "org", "repo", "alice", 7)

	assert.ErrorIs(t, err, models.ErrSummarization)
	assert.Empty(t, report)
}

func TestGenerateReportSucceedsWithPartialUpstreamOutage(t *testing.T) {
	// Pull request listing errors on page 1; pipeline still succeeds on commits
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/org/repo/pulls", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/repos/org/repo/commits", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" {
			fmt.Fprintf(w, `[%s]`, commitJSON("abc1234def", "alice", "Add feature", "2024-03-02T09:00:00Z"))
			return
		}
		fmt.Fprint(w, `[]`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := testConfig(server.URL)
	activityService := NewActivityService(NewGitHubService(cfg), cfg)
	summarizer := &fakeSummarizer{text: "partial report"}
	service := NewStandupService(activityService, NewReportService(cfg), summarizer, nil, cfg)

	report, err := service.GenerateReport(context.Background(), "org", "repo", "alice", 7)

	require.NoError(t, err)
	assert.Equal(t, "partial report", report)
	assert.Contains(t, summarizer.gotDoc, "Total PRs: 0")
}
