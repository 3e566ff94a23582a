package manager

import "errors"

var (
	ErrPermissionDenied    = errors.New("permission denied")
	ErrRepositoryNotFound  = errors.New("repository not found")
	ErrPullRequestNotFound = errors.New("pull request not found")
	ErrReleaseNotFound     = errors.New("release not found")
	ErrIssueNotFound       = errors.New("issue not found")
)
