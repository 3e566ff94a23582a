package memory

import (
	"context"
	"testing"
	"time"

	"github-manager/internal/manager/repository"
	"github-manager/internal/model"
)

func TestRepositoryStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	repos := []model.Repository{
		{FullName: "acme/web", Owner: "acme", Name: "web"},
		{FullName: "acme/api", Owner: "acme", Name: "api"},
		{FullName: "widgets/core", Owner: "widgets", Name: "core"},
	}
	for _, r := range repos {
		if _, err := s.UpsertRepository(ctx, r); err != nil {
			t.Fatalf("UpsertRepository(%s): %v", r.FullName, err)
		}
	}

	t.Run("upsert is idempotent", func(t *testing.T) {
		updated := model.Repository{FullName: "acme/api", Owner: "acme", Name: "api", Description: "core API"}
		if _, err := s.UpsertRepository(ctx, updated); err != nil {
			t.Fatal(err)
		}

		_, total, err := s.ListRepositories(ctx, repository.ListRepositoriesOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if total != 3 {
			t.Errorf("expected 3 repositories after replay, got %d", total)
		}

		got, err := s.GetOneRepository(ctx, repository.GetOneRepositoryOptions{FullName: "acme/api"})
		if err != nil {
			t.Fatal(err)
		}
		if got.Description != "core API" {
			t.Errorf("upsert did not replace record: %+v", got)
		}
	})

	t.Run("list sorted by full name with owner filter", func(t *testing.T) {
		got, total, err := s.ListRepositories(ctx, repository.ListRepositoriesOptions{Owner: "acme"})
		if err != nil {
			t.Fatal(err)
		}
		if total != 2 || len(got) != 2 {
			t.Fatalf("expected 2 acme repositories, got total=%d len=%d", total, len(got))
		}
		if got[0].FullName != "acme/api" || got[1].FullName != "acme/web" {
			t.Errorf("unexpected order: %s, %s", got[0].FullName, got[1].FullName)
		}
	})

	t.Run("pagination", func(t *testing.T) {
		got, total, err := s.ListRepositories(ctx, repository.ListRepositoriesOptions{Limit: 2, Offset: 2})
		if err != nil {
			t.Fatal(err)
		}
		if total != 3 {
			t.Errorf("total must count before pagination, got %d", total)
		}
		if len(got) != 1 || got[0].FullName != "widgets/core" {
			t.Errorf("unexpected page: %+v", got)
		}
	})

	t.Run("missing record is a zero value", func(t *testing.T) {
		got, err := s.GetOneRepository(ctx, repository.GetOneRepositoryOptions{FullName: "acme/ghost"})
		if err != nil {
			t.Fatal(err)
		}
		if got.FullName != "" {
			t.Errorf("expected zero value, got %+v", got)
		}
	})

	t.Run("delete is a no-op when missing", func(t *testing.T) {
		if err := s.DeleteRepository(ctx, "acme/ghost"); err != nil {
			t.Fatal(err)
		}
		if err := s.DeleteRepository(ctx, "widgets/core"); err != nil {
			t.Fatal(err)
		}
		_, total, _ := s.ListRepositories(ctx, repository.ListRepositoriesOptions{})
		if total != 2 {
			t.Errorf("expected 2 repositories after delete, got %d", total)
		}
	})
}

func TestReleaseStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	releases := []model.Release{
		{ID: model.ReleaseID("acme/api", "v1.0.0"), Repository: "acme/api", TagName: "v1.0.0", GitHubID: 101, PublishedAt: base},
		{ID: model.ReleaseID("acme/api", "v1.1.0"), Repository: "acme/api", TagName: "v1.1.0", GitHubID: 102, PublishedAt: base.Add(time.Hour)},
		{ID: model.ReleaseID("acme/web", "v2.0.0"), Repository: "acme/web", TagName: "v2.0.0", GitHubID: 201, PublishedAt: base.Add(2 * time.Hour)},
	}
	for _, r := range releases {
		if _, err := s.UpsertRelease(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("newest published first", func(t *testing.T) {
		got, _, err := s.ListReleases(ctx, repository.ListReleasesOptions{Repository: "acme/api"})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 || got[0].TagName != "v1.1.0" || got[1].TagName != "v1.0.0" {
			t.Errorf("unexpected order: %+v", got)
		}
	})

	t.Run("lookup by github id", func(t *testing.T) {
		got, err := s.GetOneRelease(ctx, repository.GetOneReleaseOptions{Repository: "acme/web", GitHubID: 201})
		if err != nil {
			t.Fatal(err)
		}
		if got.TagName != "v2.0.0" {
			t.Errorf("expected v2.0.0, got %+v", got)
		}
	})

	t.Run("delete by canonical id", func(t *testing.T) {
		if err := s.DeleteRelease(ctx, model.ReleaseID("acme/api", "v1.0.0")); err != nil {
			t.Fatal(err)
		}
		got, _, _ := s.ListReleases(ctx, repository.ListReleasesOptions{Repository: "acme/api"})
		if len(got) != 1 {
			t.Errorf("expected 1 release left, got %d", len(got))
		}
	})
}

func TestAuditStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	entries := []model.AuditLog{
		{ID: "1", User: "alice", Action: "create_repository", ResourceType: "repository", ResourceName: "acme/api", Status: model.AuditStatusSuccess},
		{ID: "2", User: "bob", Action: "merge_pull_request", ResourceType: "pull_request", ResourceName: "PR-acme/api-7", Status: model.AuditStatusSuccess},
		{ID: "3", User: "alice", Action: "delete_release", ResourceType: "release", ResourceName: "REL-acme/api-v1.0.0", Status: model.AuditStatusFailed},
	}
	for _, e := range entries {
		if err := s.CreateAuditLog(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("newest first", func(t *testing.T) {
		got, total, err := s.ListAuditLogs(ctx, repository.ListAuditLogsOptions{})
		if err != nil {
			t.Fatal(err)
		}
		if total != 3 || len(got) != 3 {
			t.Fatalf("expected 3 entries, got total=%d len=%d", total, len(got))
		}
		if got[0].ID != "3" || got[2].ID != "1" {
			t.Errorf("unexpected order: %+v", got)
		}
	})

	t.Run("filter by user", func(t *testing.T) {
		got, total, err := s.ListAuditLogs(ctx, repository.ListAuditLogsOptions{User: "alice"})
		if err != nil {
			t.Fatal(err)
		}
		if total != 2 || len(got) != 2 {
			t.Fatalf("expected 2 alice entries, got total=%d len=%d", total, len(got))
		}
	})

	t.Run("filter by action", func(t *testing.T) {
		got, _, err := s.ListAuditLogs(ctx, repository.ListAuditLogsOptions{Action: "merge_pull_request"})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].User != "bob" {
			t.Errorf("unexpected entries: %+v", got)
		}
	})
}
