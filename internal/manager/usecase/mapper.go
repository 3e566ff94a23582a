package usecase

import (
	"time"

	gh "github.com/google/go-github/v55/github"

	"github-manager/internal/manager"
	"github-manager/internal/model"
)

// The mappers below convert go-github entities into local mirror records.
// Webhook payloads and REST responses share these, so both paths produce
// identical records for the same upstream state.

func mapRepository(repo *gh.Repository) model.Repository {
	return model.Repository{
		FullName:      repo.GetFullName(),
		Name:          repo.GetName(),
		Owner:         repo.GetOwner().GetLogin(),
		Description:   repo.GetDescription(),
		Private:       repo.GetPrivate(),
		DefaultBranch: repo.GetDefaultBranch(),
		Language:      repo.GetLanguage(),
		HTMLURL:       repo.GetHTMLURL(),
		Stars:         repo.GetStargazersCount(),
		Forks:         repo.GetForksCount(),
		OpenIssues:    repo.GetOpenIssuesCount(),
		CreatedAt:     repo.GetCreatedAt().Time,
		UpdatedAt:     repo.GetUpdatedAt().Time,
		PushedAt:      repo.GetPushedAt().Time,
		LastSyncedAt:  time.Now(),
	}
}

func mapPullRequest(repoFullName string, pr *gh.PullRequest) model.PullRequest {
	state := pr.GetState()
	// GitHub reports merged PRs as closed with the merged flag set.
	if pr.GetMerged() || pr.MergedAt != nil {
		state = model.PRStateMerged
	}

	return model.PullRequest{
		ID:           model.PullRequestID(repoFullName, pr.GetNumber()),
		Number:       pr.GetNumber(),
		Repository:   repoFullName,
		Title:        pr.GetTitle(),
		Body:         pr.GetBody(),
		Author:       pr.GetUser().GetLogin(),
		State:        state,
		BaseBranch:   pr.GetBase().GetRef(),
		HeadBranch:   pr.GetHead().GetRef(),
		HTMLURL:      pr.GetHTMLURL(),
		CreatedAt:    pr.GetCreatedAt().Time,
		UpdatedAt:    pr.GetUpdatedAt().Time,
		ClosedAt:     pr.GetClosedAt().Time,
		MergedAt:     pr.GetMergedAt().Time,
		LastSyncedAt: time.Now(),
	}
}

func mapRelease(repoFullName string, release *gh.RepositoryRelease) model.Release {
	return model.Release{
		ID:           model.ReleaseID(repoFullName, release.GetTagName()),
		GitHubID:     release.GetID(),
		TagName:      release.GetTagName(),
		Repository:   repoFullName,
		Title:        release.GetName(),
		Body:         release.GetBody(),
		Author:       release.GetAuthor().GetLogin(),
		Draft:        release.GetDraft(),
		Prerelease:   release.GetPrerelease(),
		HTMLURL:      release.GetHTMLURL(),
		PublishedAt:  release.GetPublishedAt().Time,
		LastSyncedAt: time.Now(),
	}
}

func mapIssue(repoFullName string, issue *gh.Issue) model.Issue {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}
	assignees := make([]string, 0, len(issue.Assignees))
	for _, assignee := range issue.Assignees {
		assignees = append(assignees, assignee.GetLogin())
	}

	return model.Issue{
		ID:           model.IssueID(repoFullName, issue.GetNumber()),
		Number:       issue.GetNumber(),
		Repository:   repoFullName,
		Title:        issue.GetTitle(),
		Body:         issue.GetBody(),
		Author:       issue.GetUser().GetLogin(),
		State:        issue.GetState(),
		Labels:       labels,
		Assignees:    assignees,
		HTMLURL:      issue.GetHTMLURL(),
		CreatedAt:    issue.GetCreatedAt().Time,
		UpdatedAt:    issue.GetUpdatedAt().Time,
		ClosedAt:     issue.GetClosedAt().Time,
		LastSyncedAt: time.Now(),
	}
}

func mapOrganization(org *gh.Organization) model.Organization {
	return model.Organization{
		Login:       org.GetLogin(),
		Name:        org.GetName(),
		Description: org.GetDescription(),
		Email:       org.GetEmail(),
		Blog:        org.GetBlog(),
		Location:    org.GetLocation(),
		PublicRepos: org.GetPublicRepos(),
		HTMLURL:     org.GetHTMLURL(),
	}
}

func mapBranch(branch *gh.Branch) manager.Branch {
	return manager.Branch{
		Name:      branch.GetName(),
		SHA:       branch.GetCommit().GetSHA(),
		Protected: branch.GetProtected(),
	}
}
