package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	gh "github.com/google/go-github/v55/github"

	"github-manager/internal/auth"
	"github-manager/internal/manager"
	repo "github-manager/internal/manager/repository"
	"github-manager/internal/manager/repository/memory"
	"github-manager/internal/model"
	pkggithub "github-manager/pkg/github"
	"github-manager/pkg/log"
)

// mockGitHub is a hand-written mock of manager.GitHubClient. Unset
// functions fail the call.
type mockGitHub struct {
	createRepositoryFn  func(ctx context.Context, in pkggithub.CreateRepositoryInput) (*gh.Repository, error)
	deleteRepositoryFn  func(ctx context.Context, owner, repo string) error
	getRepositoryFn     func(ctx context.Context, owner, repo string) (*gh.Repository, error)
	listRepositoriesFn  func(ctx context.Context, org string, opts pkggithub.ListOptions) ([]*gh.Repository, error)
	createPullRequestFn func(ctx context.Context, owner, repo string, in pkggithub.CreatePullRequestInput) (*gh.PullRequest, error)
	getPullRequestFn    func(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error)
	listPullRequestsFn  func(ctx context.Context, owner, repo, state string, opts pkggithub.ListOptions) ([]*gh.PullRequest, error)
	mergePullRequestFn  func(ctx context.Context, owner, repo string, number int, in pkggithub.MergePullRequestInput) (*gh.PullRequestMergeResult, error)
	closePullRequestFn  func(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error)
	listBranchesFn      func(ctx context.Context, owner, repo string, opts pkggithub.ListOptions) ([]*gh.Branch, error)
	createBranchFn      func(ctx context.Context, owner, repo, branch, source string) (*gh.Reference, error)
	deleteBranchFn      func(ctx context.Context, owner, repo, branch string) error
	createReleaseFn     func(ctx context.Context, owner, repo string, in pkggithub.CreateReleaseInput) (*gh.RepositoryRelease, error)
	listReleasesFn      func(ctx context.Context, owner, repo string, opts pkggithub.ListOptions) ([]*gh.RepositoryRelease, error)
	deleteReleaseFn     func(ctx context.Context, owner, repo string, id int64) error
	createIssueFn       func(ctx context.Context, owner, repo string, in pkggithub.CreateIssueInput) (*gh.Issue, error)
	closeIssueFn        func(ctx context.Context, owner, repo string, number int) (*gh.Issue, error)
	listIssuesFn        func(ctx context.Context, owner, repo, state string, opts pkggithub.ListOptions) ([]*gh.Issue, error)
	getOrganizationFn   func(ctx context.Context, org string) (*gh.Organization, error)
}

var errNotStubbed = errors.New("not stubbed")

func (m *mockGitHub) CreateRepository(ctx context.Context, in pkggithub.CreateRepositoryInput) (*gh.Repository, error) {
	if m.createRepositoryFn == nil {
		return nil, errNotStubbed
	}
	return m.createRepositoryFn(ctx, in)
}

func (m *mockGitHub) DeleteRepository(ctx context.Context, owner, repo string) error {
	if m.deleteRepositoryFn == nil {
		return errNotStubbed
	}
	return m.deleteRepositoryFn(ctx, owner, repo)
}

func (m *mockGitHub) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, error) {
	if m.getRepositoryFn == nil {
		return nil, errNotStubbed
	}
	return m.getRepositoryFn(ctx, owner, repo)
}

func (m *mockGitHub) ListRepositories(ctx context.Context, org string, opts pkggithub.ListOptions) ([]*gh.Repository, error) {
	if m.listRepositoriesFn == nil {
		return nil, errNotStubbed
	}
	return m.listRepositoriesFn(ctx, org, opts)
}

func (m *mockGitHub) CreatePullRequest(ctx context.Context, owner, repo string, in pkggithub.CreatePullRequestInput) (*gh.PullRequest, error) {
	if m.createPullRequestFn == nil {
		return nil, errNotStubbed
	}
	return m.createPullRequestFn(ctx, owner, repo, in)
}

func (m *mockGitHub) GetPullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error) {
	if m.getPullRequestFn == nil {
		return nil, errNotStubbed
	}
	return m.getPullRequestFn(ctx, owner, repo, number)
}

func (m *mockGitHub) ListPullRequests(ctx context.Context, owner, repo, state string, opts pkggithub.ListOptions) ([]*gh.PullRequest, error) {
	if m.listPullRequestsFn == nil {
		return nil, errNotStubbed
	}
	return m.listPullRequestsFn(ctx, owner, repo, state, opts)
}

func (m *mockGitHub) MergePullRequest(ctx context.Context, owner, repo string, number int, in pkggithub.MergePullRequestInput) (*gh.PullRequestMergeResult, error) {
	if m.mergePullRequestFn == nil {
		return nil, errNotStubbed
	}
	return m.mergePullRequestFn(ctx, owner, repo, number, in)
}

func (m *mockGitHub) ClosePullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error) {
	if m.closePullRequestFn == nil {
		return nil, errNotStubbed
	}
	return m.closePullRequestFn(ctx, owner, repo, number)
}

func (m *mockGitHub) ListBranches(ctx context.Context, owner, repo string, opts pkggithub.ListOptions) ([]*gh.Branch, error) {
	if m.listBranchesFn == nil {
		return nil, errNotStubbed
	}
	return m.listBranchesFn(ctx, owner, repo, opts)
}

func (m *mockGitHub) CreateBranch(ctx context.Context, owner, repo, branch, source string) (*gh.Reference, error) {
	if m.createBranchFn == nil {
		return nil, errNotStubbed
	}
	return m.createBranchFn(ctx, owner, repo, branch, source)
}

func (m *mockGitHub) DeleteBranch(ctx context.Context, owner, repo, branch string) error {
	if m.deleteBranchFn == nil {
		return errNotStubbed
	}
	return m.deleteBranchFn(ctx, owner, repo, branch)
}

func (m *mockGitHub) CreateRelease(ctx context.Context, owner, repo string, in pkggithub.CreateReleaseInput) (*gh.RepositoryRelease, error) {
	if m.createReleaseFn == nil {
		return nil, errNotStubbed
	}
	return m.createReleaseFn(ctx, owner, repo, in)
}

func (m *mockGitHub) ListReleases(ctx context.Context, owner, repo string, opts pkggithub.ListOptions) ([]*gh.RepositoryRelease, error) {
	if m.listReleasesFn == nil {
		return nil, errNotStubbed
	}
	return m.listReleasesFn(ctx, owner, repo, opts)
}

func (m *mockGitHub) DeleteRelease(ctx context.Context, owner, repo string, id int64) error {
	if m.deleteReleaseFn == nil {
		return errNotStubbed
	}
	return m.deleteReleaseFn(ctx, owner, repo, id)
}

func (m *mockGitHub) CreateIssue(ctx context.Context, owner, repo string, in pkggithub.CreateIssueInput) (*gh.Issue, error) {
	if m.createIssueFn == nil {
		return nil, errNotStubbed
	}
	return m.createIssueFn(ctx, owner, repo, in)
}

func (m *mockGitHub) CloseIssue(ctx context.Context, owner, repo string, number int) (*gh.Issue, error) {
	if m.closeIssueFn == nil {
		return nil, errNotStubbed
	}
	return m.closeIssueFn(ctx, owner, repo, number)
}

func (m *mockGitHub) ListIssues(ctx context.Context, owner, repo, state string, opts pkggithub.ListOptions) ([]*gh.Issue, error) {
	if m.listIssuesFn == nil {
		return nil, errNotStubbed
	}
	return m.listIssuesFn(ctx, owner, repo, state, opts)
}

func (m *mockGitHub) GetOrganization(ctx context.Context, org string) (*gh.Organization, error) {
	if m.getOrganizationFn == nil {
		return nil, errNotStubbed
	}
	return m.getOrganizationFn(ctx, org)
}

func newTestUseCase(gh *mockGitHub, store *memory.Store) *implUseCase {
	return New(log.NewNop(), gh, store, auth.New(), "octo", 2)
}

var (
	adminScope  = model.Scope{User: "alice", Role: model.RoleAdmin}
	viewerScope = model.Scope{User: "bob", Role: model.RoleViewer}
)

func TestCreateRepository(t *testing.T) {
	t.Run("mirrors the created repository and writes audit", func(t *testing.T) {
		store := memory.New()
		uc := newTestUseCase(&mockGitHub{
			createRepositoryFn: func(ctx context.Context, in pkggithub.CreateRepositoryInput) (*gh.Repository, error) {
				return &gh.Repository{
					FullName: gh.String("octo/" + in.Name),
					Name:     gh.String(in.Name),
					Owner:    &gh.User{Login: gh.String("octo")},
					Private:  gh.Bool(in.Private),
				}, nil
			},
		}, store)

		out, err := uc.CreateRepository(context.Background(), adminScope, manager.CreateRepositoryInput{
			Org: "octo", Name: "hello", Private: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Repository.FullName != "octo/hello" {
			t.Errorf("unexpected full name %q", out.Repository.FullName)
		}

		stored, _ := store.GetOneRepository(context.Background(), repo.GetOneRepositoryOptions{FullName: "octo/hello"})
		if stored.FullName == "" {
			t.Error("expected repository mirrored in store")
		}

		entries, _, _ := store.ListAuditLogs(context.Background(), repo.ListAuditLogsOptions{Action: "create_repository"})
		if len(entries) != 1 {
			t.Fatalf("expected 1 audit entry, got %d", len(entries))
		}
		if entries[0].Status != model.AuditStatusSuccess || entries[0].User != "alice" {
			t.Errorf("unexpected audit entry: %+v", entries[0])
		}
	})

	t.Run("viewer is denied", func(t *testing.T) {
		uc := newTestUseCase(&mockGitHub{}, memory.New())

		_, err := uc.CreateRepository(context.Background(), viewerScope, manager.CreateRepositoryInput{Name: "hello"})
		if !errors.Is(err, manager.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("upstream failure is audited as failed", func(t *testing.T) {
		store := memory.New()
		uc := newTestUseCase(&mockGitHub{
			createRepositoryFn: func(ctx context.Context, in pkggithub.CreateRepositoryInput) (*gh.Repository, error) {
				return nil, &pkggithub.UpstreamError{StatusCode: 422, Body: "name taken"}
			},
		}, store)

		_, err := uc.CreateRepository(context.Background(), adminScope, manager.CreateRepositoryInput{Name: "hello"})
		var upErr *pkggithub.UpstreamError
		if !errors.As(err, &upErr) {
			t.Fatalf("expected UpstreamError, got %v", err)
		}

		entries, _, _ := store.ListAuditLogs(context.Background(), repo.ListAuditLogsOptions{})
		if len(entries) != 1 || entries[0].Status != model.AuditStatusFailed {
			t.Fatalf("expected one failed audit entry, got %+v", entries)
		}
	})
}

func TestSyncPullRequestIdempotence(t *testing.T) {
	store := memory.New()
	uc := newTestUseCase(&mockGitHub{}, store)

	mergedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	payload := &gh.PullRequest{
		Number:   gh.Int(7),
		Title:    gh.String("Add parser"),
		State:    gh.String("closed"),
		Merged:   gh.Bool(true),
		MergedAt: &gh.Timestamp{Time: mergedAt},
		User:     &gh.User{Login: gh.String("alice")},
	}

	for i := 0; i < 2; i++ {
		if _, err := uc.SyncPullRequest(context.Background(), "octo/hello", payload); err != nil {
			t.Fatalf("sync %d: %v", i+1, err)
		}
	}

	pulls, total, err := store.ListPullRequests(context.Background(), repo.ListPullRequestsOptions{Repository: "octo/hello"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected exactly one record, got %d", total)
	}
	if pulls[0].ID != "PR-octo/hello-7" {
		t.Errorf("unexpected canonical ID %q", pulls[0].ID)
	}
	if pulls[0].State != model.PRStateMerged {
		t.Errorf("expected merged state, got %q", pulls[0].State)
	}
}

func TestSyncAllRepositories(t *testing.T) {
	store := memory.New()
	var pagesSeen []int
	uc := newTestUseCase(&mockGitHub{
		listRepositoriesFn: func(ctx context.Context, org string, opts pkggithub.ListOptions) ([]*gh.Repository, error) {
			pagesSeen = append(pagesSeen, opts.Page)
			// Page size is 2: full first page, partial second page.
			switch opts.Page {
			case 1:
				return []*gh.Repository{
					{FullName: gh.String("octo/a"), Owner: &gh.User{Login: gh.String("octo")}},
					{FullName: gh.String("octo/b"), Owner: &gh.User{Login: gh.String("octo")}},
				}, nil
			case 2:
				return []*gh.Repository{
					{FullName: gh.String("octo/c"), Owner: &gh.User{Login: gh.String("octo")}},
				}, nil
			default:
				return nil, nil
			}
		},
	}, store)

	synced, err := uc.SyncAllRepositories(context.Background(), adminScope)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if synced != 3 {
		t.Errorf("expected 3 synced, got %d", synced)
	}
	if len(pagesSeen) != 2 {
		t.Errorf("expected 2 pages fetched, got %v", pagesSeen)
	}

	_, total, _ := store.ListRepositories(context.Background(), repo.ListRepositoriesOptions{})
	if total != 3 {
		t.Errorf("expected 3 mirrored repositories, got %d", total)
	}
}

func TestSyncRepositoryIssuesSkipsPullRequests(t *testing.T) {
	store := memory.New()
	uc := newTestUseCase(&mockGitHub{
		listIssuesFn: func(ctx context.Context, owner, repo, state string, opts pkggithub.ListOptions) ([]*gh.Issue, error) {
			if opts.Page > 1 {
				return nil, nil
			}
			return []*gh.Issue{
				{Number: gh.Int(1), Title: gh.String("real issue"), State: gh.String("open")},
				{Number: gh.Int(2), Title: gh.String("actually a PR"), State: gh.String("open"),
					PullRequestLinks: &gh.PullRequestLinks{URL: gh.String("https://api.github.com/repos/octo/hello/pulls/2")}},
			}, nil
		},
	}, store)

	synced, err := uc.SyncRepositoryIssues(context.Background(), adminScope, "octo/hello", "open")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if synced != 1 {
		t.Errorf("expected 1 synced issue, got %d", synced)
	}

	_, total, _ := store.ListIssues(context.Background(), repo.ListIssuesOptions{Repository: "octo/hello"})
	if total != 1 {
		t.Errorf("expected 1 mirrored issue, got %d", total)
	}
}

func TestMergePullRequest(t *testing.T) {
	store := memory.New()
	uc := newTestUseCase(&mockGitHub{
		mergePullRequestFn: func(ctx context.Context, owner, repo string, number int, in pkggithub.MergePullRequestInput) (*gh.PullRequestMergeResult, error) {
			return &gh.PullRequestMergeResult{
				Merged:  gh.Bool(true),
				SHA:     gh.String("abc123"),
				Message: gh.String("Pull Request successfully merged"),
			}, nil
		},
		getPullRequestFn: func(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error) {
			return &gh.PullRequest{
				Number: gh.Int(number),
				State:  gh.String("closed"),
				Merged: gh.Bool(true),
			}, nil
		},
	}, store)

	out, err := uc.MergePullRequest(context.Background(), adminScope, manager.MergePullRequestInput{
		Owner: "octo", Repo: "hello", Number: 7, MergeMethod: "squash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Merged || out.SHA != "abc123" {
		t.Errorf("unexpected merge result: %+v", out)
	}

	pr, _ := store.GetOnePullRequest(context.Background(), repo.GetOnePullRequestOptions{ID: model.PullRequestID("octo/hello", 7)})
	if pr.State != model.PRStateMerged {
		t.Errorf("expected mirror updated to merged, got %q", pr.State)
	}
}
