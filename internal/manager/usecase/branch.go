package usecase

import (
	"context"
	"fmt"

	"github-manager/internal/auth"
	"github-manager/internal/manager"
	"github-manager/internal/model"
	pkggithub "github-manager/pkg/github"
)

// ListBranches lists branches straight from GitHub. Branches are not
// mirrored locally, they change too often to be useful stale.
func (uc *implUseCase) ListBranches(ctx context.Context, sc model.Scope, input manager.ListBranchesInput) (manager.ListBranchesOutput, error) {
	if err := uc.authorize(sc, auth.ActionRead, "branch"); err != nil {
		return manager.ListBranchesOutput{}, err
	}

	branches, err := uc.gh.ListBranches(ctx, input.Owner, input.Repo, pkggithub.ListOptions{
		Page:    input.Page,
		PerPage: uc.pageSize,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListBranches: %v", err)
		return manager.ListBranchesOutput{}, err
	}

	out := manager.ListBranchesOutput{Branches: make([]manager.Branch, 0, len(branches))}
	for _, branch := range branches {
		out.Branches = append(out.Branches, mapBranch(branch))
	}
	return out, nil
}

// CreateBranch creates a branch from the head of the source branch.
func (uc *implUseCase) CreateBranch(ctx context.Context, sc model.Scope, input manager.CreateBranchInput) (manager.BranchOutput, error) {
	if err := uc.authorize(sc, auth.ActionCreate, "branch"); err != nil {
		return manager.BranchOutput{}, err
	}

	resource := fmt.Sprintf("%s/%s:%s", input.Owner, input.Repo, input.Branch)
	ref, err := uc.gh.CreateBranch(ctx, input.Owner, input.Repo, input.Branch, input.Source)
	uc.audit(ctx, sc, "create_branch", "branch", resource, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateBranch: %v", err)
		return manager.BranchOutput{}, err
	}

	return manager.BranchOutput{Branch: manager.Branch{
		Name: input.Branch,
		SHA:  ref.GetObject().GetSHA(),
	}}, nil
}

// DeleteBranch deletes a branch. Protected branches are rejected by GitHub
// and surface as an upstream error.
func (uc *implUseCase) DeleteBranch(ctx context.Context, sc model.Scope, input manager.DeleteBranchInput) error {
	if err := uc.authorize(sc, auth.ActionDelete, "branch"); err != nil {
		return err
	}

	resource := fmt.Sprintf("%s/%s:%s", input.Owner, input.Repo, input.Branch)
	err := uc.gh.DeleteBranch(ctx, input.Owner, input.Repo, input.Branch)
	uc.audit(ctx, sc, "delete_branch", "branch", resource, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteBranch: %v", err)
		return err
	}
	return nil
}
