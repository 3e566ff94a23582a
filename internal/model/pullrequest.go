package model

import (
	"fmt"
	"time"
)

// Pull request states. Merged is distinct from closed: GitHub reports a
// merged PR as closed with the merged flag set.
const (
	PRStateOpen   = "open"
	PRStateClosed = "closed"
	PRStateMerged = "merged"
)

// PullRequest is the local mirror of a GitHub pull request.
type PullRequest struct {
	ID           string // canonical ID: PR-{repo}-{number}
	Number       int
	Repository   string // full name
	Title        string
	Body         string
	Author       string
	State        string
	BaseBranch   string
	HeadBranch   string
	HTMLURL      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ClosedAt     time.Time
	MergedAt     time.Time
	LastSyncedAt time.Time
}

// PullRequestID builds the canonical pull request ID.
func PullRequestID(repoFullName string, number int) string {
	return fmt.Sprintf("PR-%s-%d", repoFullName, number)
}
