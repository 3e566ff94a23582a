package model

import "time"

// Repository is the local mirror of a GitHub repository, keyed by its full
// name ("owner/repo").
type Repository struct {
	FullName      string // canonical ID
	Name          string
	Owner         string
	Description   string
	Private       bool
	DefaultBranch string
	Language      string
	HTMLURL       string
	Stars         int
	Forks         int
	OpenIssues    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	PushedAt      time.Time
	LastSyncedAt  time.Time
}
