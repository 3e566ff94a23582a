package webhook

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gh "github.com/google/go-github/v55/github"

	"github-manager/internal/manager"
	"github-manager/internal/model"
	pkgLog "github-manager/pkg/log"
)

const testSecret = "test-webhook-secret"

// mockUseCase stubs only the mirror operations the dispatcher calls.
// Anything else panics through the embedded nil interface.
type mockUseCase struct {
	manager.UseCase

	syncRepositoryFunc  func(ctx context.Context, repo *gh.Repository) (model.Repository, error)
	dropRepositoryFunc  func(ctx context.Context, fullName string) error
	syncPullRequestFunc func(ctx context.Context, repoFullName string, pr *gh.PullRequest) (model.PullRequest, error)
	syncReleaseFunc     func(ctx context.Context, repoFullName string, release *gh.RepositoryRelease) (model.Release, error)
	dropReleaseFunc     func(ctx context.Context, repoFullName, tag string) error
	syncIssueFunc       func(ctx context.Context, repoFullName string, issue *gh.Issue) (model.Issue, error)
}

func (m *mockUseCase) SyncRepository(ctx context.Context, repo *gh.Repository) (model.Repository, error) {
	return m.syncRepositoryFunc(ctx, repo)
}

func (m *mockUseCase) DropRepository(ctx context.Context, fullName string) error {
	return m.dropRepositoryFunc(ctx, fullName)
}

func (m *mockUseCase) SyncPullRequest(ctx context.Context, repoFullName string, pr *gh.PullRequest) (model.PullRequest, error) {
	return m.syncPullRequestFunc(ctx, repoFullName, pr)
}

func (m *mockUseCase) SyncRelease(ctx context.Context, repoFullName string, release *gh.RepositoryRelease) (model.Release, error) {
	return m.syncReleaseFunc(ctx, repoFullName, release)
}

func (m *mockUseCase) DropRelease(ctx context.Context, repoFullName, tag string) error {
	return m.dropReleaseFunc(ctx, repoFullName, tag)
}

func (m *mockUseCase) SyncIssue(ctx context.Context, repoFullName string, issue *gh.Issue) (model.Issue, error) {
	return m.syncIssueFunc(ctx, repoFullName, issue)
}

func testRouter(uc manager.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(uc, nil, SecurityConfig{Secret: testSecret, RateLimitPerMin: 600}, pkgLog.NewNop())
	r := gin.New()
	r.POST("/webhook/github", h.HandleGitHubWebhook)
	return r
}

func postWebhook(r *gin.Engine, event, signature string, payload []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/github", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	req.Header.Set("X-GitHub-Delivery", "d5c9d290-8f3a-11ee-9c5d-0a1b2c3d4e5f")
	req.Header.Set("X-Hub-Signature-256", signature)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event processing")
	}
}

func TestHandleGitHubWebhook(t *testing.T) {
	t.Run("merged pull request is mirrored", func(t *testing.T) {
		done := make(chan struct{}, 1)
		var gotRepo string
		var gotNumber int

		uc := &mockUseCase{
			syncPullRequestFunc: func(_ context.Context, repoFullName string, pr *gh.PullRequest) (model.PullRequest, error) {
				gotRepo = repoFullName
				gotNumber = pr.GetNumber()
				done <- struct{}{}
				return model.PullRequest{ID: model.PullRequestID(repoFullName, pr.GetNumber()), State: model.PRStateMerged}, nil
			},
		}
		r := testRouter(uc)

		payload := []byte(`{
			"action": "closed",
			"number": 7,
			"pull_request": {"number": 7, "state": "closed", "merged": true, "title": "Add pagination"},
			"repository": {"full_name": "acme/api"}
		}`)

		w := postWebhook(r, "pull_request", signPayload(testSecret, payload), payload)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		waitFor(t, done)

		if gotRepo != "acme/api" || gotNumber != 7 {
			t.Errorf("synced %s#%d, want acme/api#7", gotRepo, gotNumber)
		}
	})

	t.Run("replayed delivery hits the same upsert", func(t *testing.T) {
		done := make(chan struct{}, 2)
		calls := 0

		uc := &mockUseCase{
			syncPullRequestFunc: func(_ context.Context, repoFullName string, pr *gh.PullRequest) (model.PullRequest, error) {
				calls++
				done <- struct{}{}
				return model.PullRequest{ID: model.PullRequestID(repoFullName, pr.GetNumber())}, nil
			},
		}
		r := testRouter(uc)

		payload := []byte(`{
			"action": "closed",
			"number": 7,
			"pull_request": {"number": 7, "state": "closed", "merged": true},
			"repository": {"full_name": "acme/api"}
		}`)
		sig := signPayload(testSecret, payload)

		for i := 0; i < 2; i++ {
			if w := postWebhook(r, "pull_request", sig, payload); w.Code != http.StatusOK {
				t.Fatalf("delivery %d: expected 200, got %d", i+1, w.Code)
			}
			waitFor(t, done)
		}

		if calls != 2 {
			t.Errorf("expected 2 upsert calls, got %d", calls)
		}
	})

	t.Run("deleted release is dropped", func(t *testing.T) {
		done := make(chan struct{}, 1)
		var gotRepo, gotTag string

		uc := &mockUseCase{
			dropReleaseFunc: func(_ context.Context, repoFullName, tag string) error {
				gotRepo, gotTag = repoFullName, tag
				done <- struct{}{}
				return nil
			},
		}
		r := testRouter(uc)

		payload := []byte(`{
			"action": "deleted",
			"release": {"tag_name": "v1.4.0"},
			"repository": {"full_name": "acme/api"}
		}`)

		w := postWebhook(r, "release", signPayload(testSecret, payload), payload)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		waitFor(t, done)

		if gotRepo != "acme/api" || gotTag != "v1.4.0" {
			t.Errorf("dropped %s@%s, want acme/api@v1.4.0", gotRepo, gotTag)
		}
	})

	t.Run("closed issue is mirrored", func(t *testing.T) {
		done := make(chan struct{}, 1)
		var gotNumber int

		uc := &mockUseCase{
			syncIssueFunc: func(_ context.Context, repoFullName string, issue *gh.Issue) (model.Issue, error) {
				gotNumber = issue.GetNumber()
				done <- struct{}{}
				return model.Issue{ID: model.IssueID(repoFullName, issue.GetNumber()), State: "closed"}, nil
			},
		}
		r := testRouter(uc)

		payload := []byte(`{
			"action": "closed",
			"issue": {"number": 42, "state": "closed", "title": "Flaky login test"},
			"repository": {"full_name": "acme/api"}
		}`)

		w := postWebhook(r, "issues", signPayload(testSecret, payload), payload)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		waitFor(t, done)

		if gotNumber != 42 {
			t.Errorf("synced issue #%d, want #42", gotNumber)
		}
	})

	t.Run("deleted repository is dropped", func(t *testing.T) {
		done := make(chan struct{}, 1)
		var gotName string

		uc := &mockUseCase{
			dropRepositoryFunc: func(_ context.Context, fullName string) error {
				gotName = fullName
				done <- struct{}{}
				return nil
			},
		}
		r := testRouter(uc)

		payload := []byte(`{
			"action": "deleted",
			"repository": {"full_name": "acme/legacy"}
		}`)

		w := postWebhook(r, "repository", signPayload(testSecret, payload), payload)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		waitFor(t, done)

		if gotName != "acme/legacy" {
			t.Errorf("dropped %q, want acme/legacy", gotName)
		}
	})

	t.Run("invalid signature rejected before processing", func(t *testing.T) {
		uc := &mockUseCase{
			syncPullRequestFunc: func(context.Context, string, *gh.PullRequest) (model.PullRequest, error) {
				t.Error("upsert must not run for an unauthenticated delivery")
				return model.PullRequest{}, nil
			},
		}
		r := testRouter(uc)

		payload := []byte(`{"action": "closed", "pull_request": {"number": 7}, "repository": {"full_name": "acme/api"}}`)

		w := postWebhook(r, "pull_request", signPayload("wrong-secret", payload), payload)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unsupported event acknowledged and ignored", func(t *testing.T) {
		r := testRouter(&mockUseCase{})

		payload := []byte(`{"zen": "Keep it logically awesome."}`)

		w := postWebhook(r, "ping", signPayload(testSecret, payload), payload)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
