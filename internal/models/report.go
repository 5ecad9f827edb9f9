package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportRecord is a generated standup report kept in history
type ReportRecord struct {
	ID        string    `json:"id"`
	RepoOwner string    `json:"repo_owner"`
	RepoName  string    `json:"repo_name"`
	Username  string    `json:"username"`
	Days      int       `json:"days"`
	Report    string    `json:"report"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReportRecord creates a new ReportRecord with a generated UUID
func NewReportRecord(repoOwner, repoName, username string, days int, report string) *ReportRecord {
	return &ReportRecord{
		ID:        uuid.New().String(),
		RepoOwner: repoOwner,
		RepoName:  repoName,
		Username:  username,
		Days:      days,
		Report:    report,
		CreatedAt: time.Now().UTC(),
	}
}

// RepositoryInfo is the metadata returned by repository validation
type RepositoryInfo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
}
