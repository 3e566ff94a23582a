package usecase

import (
	"context"
	"sort"

	"github-manager/internal/auth"
	"github-manager/internal/manager"
	repo "github-manager/internal/manager/repository"
	"github-manager/internal/model"
	pkggithub "github-manager/pkg/github"
)

// CreateRepository creates the repository on GitHub and mirrors it locally.
func (uc *implUseCase) CreateRepository(ctx context.Context, sc model.Scope, input manager.CreateRepositoryInput) (manager.RepositoryOutput, error) {
	if err := uc.authorize(sc, auth.ActionCreate, "repository"); err != nil {
		return manager.RepositoryOutput{}, err
	}

	created, err := uc.gh.CreateRepository(ctx, pkggithub.CreateRepositoryInput{
		Org:         input.Org,
		Name:        input.Name,
		Description: input.Description,
		Private:     input.Private,
		AutoInit:    input.AutoInit,
	})
	uc.audit(ctx, sc, "create_repository", "repository", input.Name, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateRepository: %v", err)
		return manager.RepositoryOutput{}, err
	}

	record, err := uc.repo.UpsertRepository(ctx, mapRepository(created))
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateRepository UpsertRepository: %v", err)
		return manager.RepositoryOutput{}, err
	}

	return manager.RepositoryOutput{Repository: record}, nil
}

// DeleteRepository deletes the repository on GitHub and drops the local
// mirror record.
func (uc *implUseCase) DeleteRepository(ctx context.Context, sc model.Scope, input manager.DeleteRepositoryInput) error {
	if err := uc.authorize(sc, auth.ActionDelete, "repository"); err != nil {
		return err
	}

	fullName := input.Owner + "/" + input.Repo
	err := uc.gh.DeleteRepository(ctx, input.Owner, input.Repo)
	uc.audit(ctx, sc, "delete_repository", "repository", fullName, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteRepository: %v", err)
		return err
	}

	if err := uc.repo.DeleteRepository(ctx, fullName); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteRepository DeleteRepository: %v", err)
		return err
	}
	return nil
}

// ListRepositories returns a page of the local mirror.
func (uc *implUseCase) ListRepositories(ctx context.Context, sc model.Scope, input manager.ListRepositoriesInput) (manager.ListRepositoriesOutput, error) {
	if err := uc.authorize(sc, auth.ActionRead, "repository"); err != nil {
		return manager.ListRepositoriesOutput{}, err
	}

	repos, total, err := uc.repo.ListRepositories(ctx, repo.ListRepositoriesOptions{
		Owner:  input.Owner,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRepositories: %v", err)
		return manager.ListRepositoriesOutput{}, err
	}

	return manager.ListRepositoriesOutput{
		Repositories: repos,
		Total:        total,
		Limit:        input.Limit,
		Offset:       input.Offset,
	}, nil
}

// RepositoryStats computes mirror-wide repository numbers.
func (uc *implUseCase) RepositoryStats(ctx context.Context, sc model.Scope) (manager.RepositoryStatsOutput, error) {
	if err := uc.authorize(sc, auth.ActionRead, "repository"); err != nil {
		return manager.RepositoryStatsOutput{}, err
	}

	repos, _, err := uc.repo.ListRepositories(ctx, repo.ListRepositoriesOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RepositoryStats: %v", err)
		return manager.RepositoryStatsOutput{}, err
	}

	out := manager.RepositoryStatsOutput{Total: len(repos)}
	var recent []model.Repository
	for _, r := range repos {
		if r.Private {
			out.Private++
		} else {
			out.Public++
		}
		recent = append(recent, r)
	}

	// Five most recently pushed repositories.
	sort.Slice(recent, func(i, j int) bool { return recent[i].PushedAt.After(recent[j].PushedAt) })
	if len(recent) > 5 {
		recent = recent[:5]
	}
	out.RecentlyPushed = recent

	return out, nil
}
