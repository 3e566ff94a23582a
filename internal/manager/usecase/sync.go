package usecase

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v55/github"

	"github-manager/internal/auth"
	"github-manager/internal/model"
	pkggithub "github-manager/pkg/github"
)

// SyncRepository upserts a repository record from upstream state. Replaying
// the same payload is a no-op for the mirror.
func (uc *implUseCase) SyncRepository(ctx context.Context, repo *gh.Repository) (model.Repository, error) {
	if repo.GetFullName() == "" {
		return model.Repository{}, fmt.Errorf("repository payload missing full name")
	}
	return uc.repo.UpsertRepository(ctx, mapRepository(repo))
}

// DropRepository removes a repository from the mirror.
func (uc *implUseCase) DropRepository(ctx context.Context, fullName string) error {
	return uc.repo.DeleteRepository(ctx, fullName)
}

// SyncPullRequest upserts a pull request record from upstream state.
func (uc *implUseCase) SyncPullRequest(ctx context.Context, repoFullName string, pr *gh.PullRequest) (model.PullRequest, error) {
	if pr.GetNumber() == 0 {
		return model.PullRequest{}, fmt.Errorf("pull request payload missing number")
	}
	return uc.repo.UpsertPullRequest(ctx, mapPullRequest(repoFullName, pr))
}

// SyncRelease upserts a release record from upstream state.
func (uc *implUseCase) SyncRelease(ctx context.Context, repoFullName string, release *gh.RepositoryRelease) (model.Release, error) {
	if release.GetTagName() == "" {
		return model.Release{}, fmt.Errorf("release payload missing tag name")
	}
	return uc.repo.UpsertRelease(ctx, mapRelease(repoFullName, release))
}

// DropRelease removes a release from the mirror by repository and tag.
func (uc *implUseCase) DropRelease(ctx context.Context, repoFullName, tag string) error {
	return uc.repo.DeleteRelease(ctx, model.ReleaseID(repoFullName, tag))
}

// SyncIssue upserts an issue record from upstream state. GitHub lists pull
// requests as issues; those payloads are skipped.
func (uc *implUseCase) SyncIssue(ctx context.Context, repoFullName string, issue *gh.Issue) (model.Issue, error) {
	if issue.IsPullRequest() {
		return model.Issue{}, nil
	}
	if issue.GetNumber() == 0 {
		return model.Issue{}, fmt.Errorf("issue payload missing number")
	}
	return uc.repo.UpsertIssue(ctx, mapIssue(repoFullName, issue))
}

// SyncAllRepositories pages through every repository visible to the
// installation (or the configured organization) and mirrors each one.
// A failing record is logged and skipped, it never stops the page loop.
func (uc *implUseCase) SyncAllRepositories(ctx context.Context, sc model.Scope) (int, error) {
	if err := uc.authorize(sc, auth.ActionSync, "repository"); err != nil {
		return 0, err
	}

	synced := 0
	for page := 1; ; page++ {
		repos, err := uc.gh.ListRepositories(ctx, uc.org, pkggithub.ListOptions{Page: page, PerPage: uc.pageSize})
		if err != nil {
			return synced, err
		}
		if len(repos) == 0 {
			break
		}

		for _, repo := range repos {
			if _, err := uc.SyncRepository(ctx, repo); err != nil {
				uc.l.Warnf(ctx, "uc.SyncAllRepositories %s: %v", repo.GetFullName(), err)
				continue
			}
			synced++
		}

		if len(repos) < uc.pageSize {
			break
		}
	}

	uc.l.Infof(ctx, "uc.SyncAllRepositories: synced %d repositories", synced)
	return synced, nil
}

// SyncRepositoryPullRequests mirrors one repository's pull requests
// filtered by state (open, closed or all).
func (uc *implUseCase) SyncRepositoryPullRequests(ctx context.Context, sc model.Scope, repoFullName, state string) (int, error) {
	if err := uc.authorize(sc, auth.ActionSync, "pull_request"); err != nil {
		return 0, err
	}
	owner, name, err := splitFullName(repoFullName)
	if err != nil {
		return 0, err
	}

	synced := 0
	for page := 1; ; page++ {
		pulls, err := uc.gh.ListPullRequests(ctx, owner, name, state, pkggithub.ListOptions{Page: page, PerPage: uc.pageSize})
		if err != nil {
			return synced, err
		}
		if len(pulls) == 0 {
			break
		}

		for _, pr := range pulls {
			if _, err := uc.SyncPullRequest(ctx, repoFullName, pr); err != nil {
				uc.l.Warnf(ctx, "uc.SyncRepositoryPullRequests %s#%d: %v", repoFullName, pr.GetNumber(), err)
				continue
			}
			synced++
		}

		if len(pulls) < uc.pageSize {
			break
		}
	}

	uc.l.Infof(ctx, "uc.SyncRepositoryPullRequests %s: synced %d", repoFullName, synced)
	return synced, nil
}

// SyncRepositoryReleases mirrors one repository's releases.
func (uc *implUseCase) SyncRepositoryReleases(ctx context.Context, sc model.Scope, repoFullName string) (int, error) {
	if err := uc.authorize(sc, auth.ActionSync, "release"); err != nil {
		return 0, err
	}
	owner, name, err := splitFullName(repoFullName)
	if err != nil {
		return 0, err
	}

	synced := 0
	for page := 1; ; page++ {
		releases, err := uc.gh.ListReleases(ctx, owner, name, pkggithub.ListOptions{Page: page, PerPage: uc.pageSize})
		if err != nil {
			return synced, err
		}
		if len(releases) == 0 {
			break
		}

		for _, release := range releases {
			if _, err := uc.SyncRelease(ctx, repoFullName, release); err != nil {
				uc.l.Warnf(ctx, "uc.SyncRepositoryReleases %s@%s: %v", repoFullName, release.GetTagName(), err)
				continue
			}
			synced++
		}

		if len(releases) < uc.pageSize {
			break
		}
	}

	uc.l.Infof(ctx, "uc.SyncRepositoryReleases %s: synced %d", repoFullName, synced)
	return synced, nil
}

// SyncRepositoryIssues mirrors one repository's issues. Pull requests
// returned by the issues API are skipped by SyncIssue.
func (uc *implUseCase) SyncRepositoryIssues(ctx context.Context, sc model.Scope, repoFullName, state string) (int, error) {
	if err := uc.authorize(sc, auth.ActionSync, "issue"); err != nil {
		return 0, err
	}
	owner, name, err := splitFullName(repoFullName)
	if err != nil {
		return 0, err
	}

	synced := 0
	for page := 1; ; page++ {
		issues, err := uc.gh.ListIssues(ctx, owner, name, state, pkggithub.ListOptions{Page: page, PerPage: uc.pageSize})
		if err != nil {
			return synced, err
		}
		if len(issues) == 0 {
			break
		}

		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}
			if _, err := uc.SyncIssue(ctx, repoFullName, issue); err != nil {
				uc.l.Warnf(ctx, "uc.SyncRepositoryIssues %s#%d: %v", repoFullName, issue.GetNumber(), err)
				continue
			}
			synced++
		}

		if len(issues) < uc.pageSize {
			break
		}
	}

	uc.l.Infof(ctx, "uc.SyncRepositoryIssues %s: synced %d", repoFullName, synced)
	return synced, nil
}
