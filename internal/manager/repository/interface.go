package repository

import (
	"context"

	"github-manager/internal/model"
)

// Repository is the composed interface for the local GitHub mirror store.
type Repository interface {
	RepositoryStore
	PullRequestStore
	ReleaseStore
	IssueStore
	AuditLogStore
}

// RepositoryStore holds mirrored repositories keyed by full name.
// GetOne returns a zero-value record (not an error) when nothing matches.
type RepositoryStore interface {
	UpsertRepository(ctx context.Context, record model.Repository) (model.Repository, error)
	GetOneRepository(ctx context.Context, opt GetOneRepositoryOptions) (model.Repository, error)
	ListRepositories(ctx context.Context, opt ListRepositoriesOptions) ([]model.Repository, int, error)
	DeleteRepository(ctx context.Context, fullName string) error
}

// PullRequestStore holds mirrored pull requests keyed by canonical ID.
type PullRequestStore interface {
	UpsertPullRequest(ctx context.Context, record model.PullRequest) (model.PullRequest, error)
	GetOnePullRequest(ctx context.Context, opt GetOnePullRequestOptions) (model.PullRequest, error)
	ListPullRequests(ctx context.Context, opt ListPullRequestsOptions) ([]model.PullRequest, int, error)
}

// ReleaseStore holds mirrored releases keyed by canonical ID.
type ReleaseStore interface {
	UpsertRelease(ctx context.Context, record model.Release) (model.Release, error)
	GetOneRelease(ctx context.Context, opt GetOneReleaseOptions) (model.Release, error)
	ListReleases(ctx context.Context, opt ListReleasesOptions) ([]model.Release, int, error)
	DeleteRelease(ctx context.Context, id string) error
}

// IssueStore holds mirrored issues keyed by canonical ID.
type IssueStore interface {
	UpsertIssue(ctx context.Context, record model.Issue) (model.Issue, error)
	GetOneIssue(ctx context.Context, opt GetOneIssueOptions) (model.Issue, error)
	ListIssues(ctx context.Context, opt ListIssuesOptions) ([]model.Issue, int, error)
}

// AuditLogStore records administrative operations.
type AuditLogStore interface {
	CreateAuditLog(ctx context.Context, entry model.AuditLog) error
	ListAuditLogs(ctx context.Context, opt ListAuditLogsOptions) ([]model.AuditLog, int, error)
}
