package models

import (
	"time"
)

const (
	PRStateOpen   = "open"
	PRStateClosed = "closed"
)

// PullRequest represents a GitHub pull request authored by the target user
type PullRequest struct {
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	State     string     `json:"state"`
	MergedAt  *time.Time `json:"merged_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsMerged reports whether the pull request was merged
func (pr *PullRequest) IsMerged() bool {
	return pr.MergedAt != nil
}
