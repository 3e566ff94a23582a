package usecase

import (
	"context"
	"fmt"

	"github-manager/internal/auth"
	"github-manager/internal/manager"
	repo "github-manager/internal/manager/repository"
	"github-manager/internal/model"
	pkggithub "github-manager/pkg/github"
)

// CreateRelease creates a release on GitHub and mirrors it locally.
func (uc *implUseCase) CreateRelease(ctx context.Context, sc model.Scope, input manager.CreateReleaseInput) (manager.ReleaseOutput, error) {
	if err := uc.authorize(sc, auth.ActionCreate, "release"); err != nil {
		return manager.ReleaseOutput{}, err
	}

	fullName := input.Owner + "/" + input.Repo
	resource := fmt.Sprintf("%s@%s", fullName, input.TagName)

	release, err := uc.gh.CreateRelease(ctx, input.Owner, input.Repo, pkggithub.CreateReleaseInput{
		TagName:         input.TagName,
		TargetCommitish: input.Target,
		Name:            input.Title,
		Body:            input.Body,
		Draft:           input.Draft,
		Prerelease:      input.Prerelease,
	})
	uc.audit(ctx, sc, "create_release", "release", resource, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateRelease: %v", err)
		return manager.ReleaseOutput{}, err
	}

	record, err := uc.repo.UpsertRelease(ctx, mapRelease(fullName, release))
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateRelease UpsertRelease: %v", err)
		return manager.ReleaseOutput{}, err
	}

	return manager.ReleaseOutput{Release: record}, nil
}

// DeleteRelease deletes a release on GitHub by its GitHub ID and drops the
// mirror record.
func (uc *implUseCase) DeleteRelease(ctx context.Context, sc model.Scope, input manager.DeleteReleaseInput) error {
	if err := uc.authorize(sc, auth.ActionDelete, "release"); err != nil {
		return err
	}

	fullName := input.Owner + "/" + input.Repo
	resource := fmt.Sprintf("%s release %d", fullName, input.ID)

	err := uc.gh.DeleteRelease(ctx, input.Owner, input.Repo, input.ID)
	uc.audit(ctx, sc, "delete_release", "release", resource, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteRelease: %v", err)
		return err
	}

	record, err := uc.repo.GetOneRelease(ctx, repo.GetOneReleaseOptions{Repository: fullName, GitHubID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteRelease GetOneRelease: %v", err)
		return err
	}
	if record.ID != "" {
		if err := uc.repo.DeleteRelease(ctx, record.ID); err != nil {
			uc.l.Errorf(ctx, "uc.DeleteRelease DeleteRelease: %v", err)
			return err
		}
	}
	return nil
}

// ReleaseStats computes mirror-wide release numbers.
func (uc *implUseCase) ReleaseStats(ctx context.Context, sc model.Scope) (manager.ReleaseStatsOutput, error) {
	if err := uc.authorize(sc, auth.ActionRead, "release"); err != nil {
		return manager.ReleaseStatsOutput{}, err
	}

	releases, _, err := uc.repo.ListReleases(ctx, repo.ListReleasesOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ReleaseStats: %v", err)
		return manager.ReleaseStatsOutput{}, err
	}

	out := manager.ReleaseStatsOutput{Total: len(releases)}
	for _, release := range releases {
		if release.Draft {
			out.Drafts++
		}
		if release.Prerelease {
			out.Prereleases++
		}
	}
	// ListReleases sorts newest first.
	if len(releases) > 5 {
		releases = releases[:5]
	}
	out.Recent = releases

	return out, nil
}
