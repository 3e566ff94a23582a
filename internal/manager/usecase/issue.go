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

// CreateIssue opens an issue on GitHub and mirrors it locally.
func (uc *implUseCase) CreateIssue(ctx context.Context, sc model.Scope, input manager.CreateIssueInput) (manager.IssueOutput, error) {
	if err := uc.authorize(sc, auth.ActionCreate, "issue"); err != nil {
		return manager.IssueOutput{}, err
	}

	fullName := input.Owner + "/" + input.Repo
	issue, err := uc.gh.CreateIssue(ctx, input.Owner, input.Repo, pkggithub.CreateIssueInput{
		Title:     input.Title,
		Body:      input.Body,
		Labels:    input.Labels,
		Assignees: input.Assignees,
	})
	uc.audit(ctx, sc, "create_issue", "issue", fullName, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateIssue: %v", err)
		return manager.IssueOutput{}, err
	}

	record, err := uc.repo.UpsertIssue(ctx, mapIssue(fullName, issue))
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateIssue UpsertIssue: %v", err)
		return manager.IssueOutput{}, err
	}

	return manager.IssueOutput{Issue: record}, nil
}

// CloseIssue closes an issue on GitHub and mirrors the closed state.
func (uc *implUseCase) CloseIssue(ctx context.Context, sc model.Scope, input manager.CloseIssueInput) (manager.IssueOutput, error) {
	if err := uc.authorize(sc, auth.ActionClose, "issue"); err != nil {
		return manager.IssueOutput{}, err
	}

	fullName := input.Owner + "/" + input.Repo
	resource := fmt.Sprintf("%s#%d", fullName, input.Number)

	issue, err := uc.gh.CloseIssue(ctx, input.Owner, input.Repo, input.Number)
	uc.audit(ctx, sc, "close_issue", "issue", resource, err)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CloseIssue: %v", err)
		return manager.IssueOutput{}, err
	}

	record, err := uc.repo.UpsertIssue(ctx, mapIssue(fullName, issue))
	if err != nil {
		uc.l.Errorf(ctx, "uc.CloseIssue UpsertIssue: %v", err)
		return manager.IssueOutput{}, err
	}

	return manager.IssueOutput{Issue: record}, nil
}

// IssueStats computes mirror-wide issue numbers.
func (uc *implUseCase) IssueStats(ctx context.Context, sc model.Scope) (manager.IssueStatsOutput, error) {
	if err := uc.authorize(sc, auth.ActionRead, "issue"); err != nil {
		return manager.IssueStatsOutput{}, err
	}

	issues, _, err := uc.repo.ListIssues(ctx, repo.ListIssuesOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.IssueStats: %v", err)
		return manager.IssueStatsOutput{}, err
	}

	out := manager.IssueStatsOutput{
		Total:        len(issues),
		ByRepository: make(map[string]int),
	}
	for _, issue := range issues {
		switch issue.State {
		case "open":
			out.Open++
		case "closed":
			out.Closed++
		}
		out.ByRepository[issue.Repository]++
	}

	return out, nil
}
