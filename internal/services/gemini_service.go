package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gitstandup/gitstandup/internal/models"
	"github.com/gitstandup/gitstandup/pkg/config"
)

// Summarizer turns a formatted activity document into free-form report text.
// A single call, no conversational state between calls.
type Summarizer interface {
	Summarize(ctx context.Context, systemInstruction, document string) (string, error)
}

// GeminiService calls the Gemini generateContent REST API
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiService(cfg *config.Config) *GeminiService {
	return &GeminiService{
		apiKey:  cfg.Gemini.APIKey,
		model:   cfg.Gemini.Model,
		baseURL: cfg.Gemini.APIURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Gemini.HTTPTimeout) * time.Second,
		},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Summarize sends the document with the system instruction and returns the
// first candidate's text. Any failure surfaces as ErrSummarization.
func (s *GeminiService) Summarize(ctx context.Context, systemInstruction, document string) (string, error) {
	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemInstruction}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: document}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrSummarization, err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrSummarization, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrSummarization, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrSummarization, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: Gemini API returned status %d", models.ErrSummarization, resp.StatusCode)
	}

	var result geminiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrSummarization, err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates returned", models.ErrSummarization)
	}

	return strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text), nil
}
