package model

import (
	"fmt"
	"time"
)

// Issue is the local mirror of a GitHub issue.
type Issue struct {
	ID           string // canonical ID: ISSUE-{repo}-{number}
	Number       int
	Repository   string // full name
	Title        string
	Body         string
	Author       string
	State        string // open or closed
	Labels       []string
	Assignees    []string
	HTMLURL      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ClosedAt     time.Time
	LastSyncedAt time.Time
}

// IssueID builds the canonical issue ID.
func IssueID(repoFullName string, number int) string {
	return fmt.Sprintf("ISSUE-%s-%d", repoFullName, number)
}
