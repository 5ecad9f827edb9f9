package models

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamFetch indicates a paginated fetch against the GitHub API failed mid-sequence
	ErrUpstreamFetch = errors.New("upstream fetch failed")

	// ErrMalformedResponse indicates the GitHub API returned a body that could not be decoded
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrRepositoryNotFound indicates the repository does not exist or is not accessible
	ErrRepositoryNotFound = errors.New("repository not found or not accessible")

	// ErrSummarization indicates the text-generation call failed
	ErrSummarization = errors.New("summarization failed")
)

// ValidationError reports a rejected request parameter before any network call is made
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ConfigurationError reports a missing credential
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s not configured", e.Missing)
}
