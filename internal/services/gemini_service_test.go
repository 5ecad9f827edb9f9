package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gitstandup/gitstandup/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeReturnsCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.SystemInstruction)
		assert.Contains(t, req.SystemInstruction.Parts[0].Text, "standup report")
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user", req.Contents[0].Role)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "activity data")

		fmt.Fprint(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"  WORK COMPLETED: shipped stuff\n"}]}}]}`)
	}))
	defer server.Close()

	service := NewGeminiService(testConfig(server.URL))
	text, err := service.Summarize(context.Background(), "You are a standup report generator.", "Here is the activity data.")

	require.NoError(t, err)
	assert.Equal(t, "WORK COMPLETED: shipped stuff", text)
}

func TestSummarizeSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"quota exceeded"}}`)
	}))
	defer server.Close()

	service := NewGeminiService(testConfig(server.URL))
	_, err := service.Summarize(context.Background(), "system", "doc")

	assert.ErrorIs(t, err, models.ErrSummarization)
}

func TestSummarizeRejectsEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer server.Close()

	service := NewGeminiService(testConfig(server.URL))
	_, err := service.Summarize(context.Background(), "system", "doc")

	assert.ErrorIs(t, err, models.ErrSummarization)
}

func TestSummarizeRejectsMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	service := NewGeminiService(testConfig(server.URL))
	_, err := service.Summarize(context.Background(), "system", "doc")

	assert.ErrorIs(t, err, models.ErrSummarization)
}
