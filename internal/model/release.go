package model

import (
	"fmt"
	"time"
)

// Release is the local mirror of a GitHub release.
type Release struct {
	ID           string // canonical ID: REL-{repo}-{tag}
	GitHubID     int64
	TagName      string
	Repository   string // full name
	Title        string
	Body         string
	Author       string
	Draft        bool
	Prerelease   bool
	HTMLURL      string
	PublishedAt  time.Time
	LastSyncedAt time.Time
}

// ReleaseID builds the canonical release ID.
func ReleaseID(repoFullName, tag string) string {
	return fmt.Sprintf("REL-%s-%s", repoFullName, tag)
}
