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

// CreatePullRequest opens a pull request on GitHub and mirrors it locally.
func (uc *implUseCase) CreatePullRequest(ctx context.Context, sc model.Scope, input manager.CreatePullRequestInput) (manager.PullRequestOutput, error) {
	if err := uc.authorize(sc, auth.ActionCreate, "pull_request"); err != nil {
		return manager.PullRequestOutput{}, err
	}

	fullName := input.Owner + "/" + input.Repo
	pr, err := uc.gh.CreatePullRequest(ctx, input.Owner, input.Repo, pkggithub.CreatePullRequestInput{
		Title: input.Title,
		Head:  input.Head,
		Base:  input.Base,
		Body:  input.Body,
	})
	uc.audit(ctx, sc, "create_pull_request", "pull_request", fullName, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreatePullRequest: %v", err)
		return manager.PullRequestOutput{}, err
	}

	record, err := uc.repo.UpsertPullRequest(ctx, mapPullRequest(fullName, pr))
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreatePullRequest UpsertPullRequest: %v", err)
		return manager.PullRequestOutput{}, err
	}

	return manager.PullRequestOutput{PullRequest: record}, nil
}

// MergePullRequest merges a pull request on GitHub, then refreshes the
// mirror record so it reflects the merged state.
func (uc *implUseCase) MergePullRequest(ctx context.Context, sc model.Scope, input manager.MergePullRequestInput) (manager.MergeResultOutput, error) {
	if err := uc.authorize(sc, auth.ActionMerge, "pull_request"); err != nil {
		return manager.MergeResultOutput{}, err
	}

	fullName := input.Owner + "/" + input.Repo
	resource := fmt.Sprintf("%s#%d", fullName, input.Number)

	result, err := uc.gh.MergePullRequest(ctx, input.Owner, input.Repo, input.Number, pkggithub.MergePullRequestInput{
		CommitTitle:   input.CommitTitle,
		CommitMessage: input.CommitMessage,
		MergeMethod:   input.MergeMethod,
	})
	uc.audit(ctx, sc, "merge_pull_request", "pull_request", resource, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.MergePullRequest: %v", err)
		return manager.MergeResultOutput{}, err
	}

	// Refresh the mirror; a failure here is only logged since the merge
	// itself already happened.
	if pr, getErr := uc.gh.GetPullRequest(ctx, input.Owner, input.Repo, input.Number); getErr != nil {
		uc.l.Warnf(ctx, "uc.MergePullRequest GetPullRequest: %v", getErr)
	} else if _, upErr := uc.repo.UpsertPullRequest(ctx, mapPullRequest(fullName, pr)); upErr != nil {
		uc.l.Warnf(ctx, "uc.MergePullRequest UpsertPullRequest: %v", upErr)
	}

	return manager.MergeResultOutput{
		Merged:  result.GetMerged(),
		SHA:     result.GetSHA(),
		Message: result.GetMessage(),
	}, nil
}

// ClosePullRequest closes a pull request without merging and mirrors the
// closed state.
func (uc *implUseCase) ClosePullRequest(ctx context.Context, sc model.Scope, input manager.ClosePullRequestInput) (manager.PullRequestOutput, error) {
	if err := uc.authorize(sc, auth.ActionClose, "pull_request"); err != nil {
		return manager.PullRequestOutput{}, err
	}

	fullName := input.Owner + "/" + input.Repo
	resource := fmt.Sprintf("%s#%d", fullName, input.Number)

	pr, err := uc.gh.ClosePullRequest(ctx, input.Owner, input.Repo, input.Number)
	uc.audit(ctx, sc, "close_pull_request", "pull_request", resource, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ClosePullRequest: %v", err)
		return manager.PullRequestOutput{}, err
	}

	record, err := uc.repo.UpsertPullRequest(ctx, mapPullRequest(fullName, pr))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ClosePullRequest UpsertPullRequest: %v", err)
		return manager.PullRequestOutput{}, err
	}

	return manager.PullRequestOutput{PullRequest: record}, nil
}

// PullRequestStats computes mirror-wide pull request numbers.
func (uc *implUseCase) PullRequestStats(ctx context.Context, sc model.Scope) (manager.PullRequestStatsOutput, error) {
	if err := uc.authorize(sc, auth.ActionRead, "pull_request"); err != nil {
		return manager.PullRequestStatsOutput{}, err
	}

	pulls, _, err := uc.repo.ListPullRequests(ctx, repo.ListPullRequestsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PullRequestStats: %v", err)
		return manager.PullRequestStatsOutput{}, err
	}

	out := manager.PullRequestStatsOutput{
		Total:        len(pulls),
		ByRepository: make(map[string]int),
	}
	for _, pr := range pulls {
		switch pr.State {
		case model.PRStateOpen:
			out.Open++
		case model.PRStateMerged:
			out.Merged++
		case model.PRStateClosed:
			out.Closed++
		}
		out.ByRepository[pr.Repository]++
	}

	return out, nil
}
