package manager

import (
	"context"

	gh "github.com/google/go-github/v55/github"

	"github-manager/internal/model"
	pkggithub "github-manager/pkg/github"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Repositories
	CreateRepository(ctx context.Context, sc model.Scope, input CreateRepositoryInput) (RepositoryOutput, error)
	DeleteRepository(ctx context.Context, sc model.Scope, input DeleteRepositoryInput) error
	ListRepositories(ctx context.Context, sc model.Scope, input ListRepositoriesInput) (ListRepositoriesOutput, error)
	RepositoryStats(ctx context.Context, sc model.Scope) (RepositoryStatsOutput, error)

	// Pull requests
	CreatePullRequest(ctx context.Context, sc model.Scope, input CreatePullRequestInput) (PullRequestOutput, error)
	MergePullRequest(ctx context.Context, sc model.Scope, input MergePullRequestInput) (MergeResultOutput, error)
	ClosePullRequest(ctx context.Context, sc model.Scope, input ClosePullRequestInput) (PullRequestOutput, error)
	PullRequestStats(ctx context.Context, sc model.Scope) (PullRequestStatsOutput, error)

	// Branches
	ListBranches(ctx context.Context, sc model.Scope, input ListBranchesInput) (ListBranchesOutput, error)
	CreateBranch(ctx context.Context, sc model.Scope, input CreateBranchInput) (BranchOutput, error)
	DeleteBranch(ctx context.Context, sc model.Scope, input DeleteBranchInput) error

	// Releases
	CreateRelease(ctx context.Context, sc model.Scope, input CreateReleaseInput) (ReleaseOutput, error)
	DeleteRelease(ctx context.Context, sc model.Scope, input DeleteReleaseInput) error
	ReleaseStats(ctx context.Context, sc model.Scope) (ReleaseStatsOutput, error)

	// Issues
	CreateIssue(ctx context.Context, sc model.Scope, input CreateIssueInput) (IssueOutput, error)
	CloseIssue(ctx context.Context, sc model.Scope, input CloseIssueInput) (IssueOutput, error)
	IssueStats(ctx context.Context, sc model.Scope) (IssueStatsOutput, error)

	// Organizations
	GetOrganization(ctx context.Context, sc model.Scope, org string) (OrganizationOutput, error)

	// Audit
	ListAuditLogs(ctx context.Context, sc model.Scope, input ListAuditLogsInput) (ListAuditLogsOutput, error)

	// Mirror upserts. Idempotent: replaying the same payload leaves the
	// mirror unchanged. Called by webhook dispatch and the sync jobs.
	SyncRepository(ctx context.Context, repo *gh.Repository) (model.Repository, error)
	DropRepository(ctx context.Context, fullName string) error
	SyncPullRequest(ctx context.Context, repoFullName string, pr *gh.PullRequest) (model.PullRequest, error)
	SyncRelease(ctx context.Context, repoFullName string, release *gh.RepositoryRelease) (model.Release, error)
	DropRelease(ctx context.Context, repoFullName, tag string) error
	SyncIssue(ctx context.Context, repoFullName string, issue *gh.Issue) (model.Issue, error)

	// Background sync jobs. Each returns the number of records synced.
	SyncAllRepositories(ctx context.Context, sc model.Scope) (int, error)
	SyncRepositoryPullRequests(ctx context.Context, sc model.Scope, repoFullName, state string) (int, error)
	SyncRepositoryReleases(ctx context.Context, sc model.Scope, repoFullName string) (int, error)
	SyncRepositoryIssues(ctx context.Context, sc model.Scope, repoFullName, state string) (int, error)
}

// GitHubClient is the slice of the GitHub API client the manager uses.
// Satisfied by *pkg/github.Client.
type GitHubClient interface {
	CreateRepository(ctx context.Context, in pkggithub.CreateRepositoryInput) (*gh.Repository, error)
	DeleteRepository(ctx context.Context, owner, repo string) error
	GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, error)
	ListRepositories(ctx context.Context, org string, opts pkggithub.ListOptions) ([]*gh.Repository, error)

	CreatePullRequest(ctx context.Context, owner, repo string, in pkggithub.CreatePullRequestInput) (*gh.PullRequest, error)
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error)
	ListPullRequests(ctx context.Context, owner, repo, state string, opts pkggithub.ListOptions) ([]*gh.PullRequest, error)
	MergePullRequest(ctx context.Context, owner, repo string, number int, in pkggithub.MergePullRequestInput) (*gh.PullRequestMergeResult, error)
	ClosePullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error)

	ListBranches(ctx context.Context, owner, repo string, opts pkggithub.ListOptions) ([]*gh.Branch, error)
	CreateBranch(ctx context.Context, owner, repo, branch, source string) (*gh.Reference, error)
	DeleteBranch(ctx context.Context, owner, repo, branch string) error

	CreateRelease(ctx context.Context, owner, repo string, in pkggithub.CreateReleaseInput) (*gh.RepositoryRelease, error)
	ListReleases(ctx context.Context, owner, repo string, opts pkggithub.ListOptions) ([]*gh.RepositoryRelease, error)
	DeleteRelease(ctx context.Context, owner, repo string, id int64) error

	CreateIssue(ctx context.Context, owner, repo string, in pkggithub.CreateIssueInput) (*gh.Issue, error)
	CloseIssue(ctx context.Context, owner, repo string, number int) (*gh.Issue, error)
	ListIssues(ctx context.Context, owner, repo, state string, opts pkggithub.ListOptions) ([]*gh.Issue, error)

	GetOrganization(ctx context.Context, org string) (*gh.Organization, error)
}

// Authorizer answers permission checks for scoped operations.
type Authorizer interface {
	Can(sc model.Scope, action, resource string) bool
}
