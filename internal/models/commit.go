package models

import (
	"strings"
	"time"
)

// Commit represents a Git commit authored by the target user
type Commit struct {
	SHA        string    `json:"sha"`
	Author     string    `json:"author"`
	Message    string    `json:"message"`
	AuthoredAt time.Time `json:"authored_at"`
}

// ShortSHA returns the abbreviated commit hash
func (c *Commit) ShortSHA() string {
	if len(c.SHA) <= 7 {
		return c.SHA
	}
	return c.SHA[:7]
}

// Subject returns the first line of the commit message
func (c *Commit) Subject() string {
	if idx := strings.IndexByte(c.Message, '\n'); idx >= 0 {
		return c.Message[:idx]
	}
	return c.Message
}
