package http

import (
	"time"

	"github-manager/internal/manager"
	"github-manager/internal/model"
)

// --- Repository DTOs ---

type createRepositoryReq struct {
	Org         string `json:"org"`
	Name        string `json:"name"        binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=1000"`
	Private     bool   `json:"private"`
	AutoInit    bool   `json:"auto_init"`
}

func (r createRepositoryReq) toInput() manager.CreateRepositoryInput {
	return manager.CreateRepositoryInput{
		Org:         r.Org,
		Name:        r.Name,
		Description: r.Description,
		Private:     r.Private,
		AutoInit:    r.AutoInit,
	}
}

type listRepositoriesReq struct {
	Owner  string `form:"owner"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listRepositoriesReq) toInput() manager.ListRepositoriesInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return manager.ListRepositoriesInput{
		Owner:  r.Owner,
		Limit:  limit,
		Offset: offset,
	}
}

type repositoryResp struct {
	FullName      string    `json:"full_name"`
	Name          string    `json:"name"`
	Owner         string    `json:"owner"`
	Description   string    `json:"description"`
	Private       bool      `json:"private"`
	DefaultBranch string    `json:"default_branch"`
	Language      string    `json:"language"`
	HTMLURL       string    `json:"html_url"`
	Stars         int       `json:"stars"`
	Forks         int       `json:"forks"`
	OpenIssues    int       `json:"open_issues"`
	PushedAt      time.Time `json:"pushed_at"`
	LastSyncedAt  time.Time `json:"last_synced_at"`
}

func newRepositoryResp(repo model.Repository) repositoryResp {
	return repositoryResp{
		FullName:      repo.FullName,
		Name:          repo.Name,
		Owner:         repo.Owner,
		Description:   repo.Description,
		Private:       repo.Private,
		DefaultBranch: repo.DefaultBranch,
		Language:      repo.Language,
		HTMLURL:       repo.HTMLURL,
		Stars:         repo.Stars,
		Forks:         repo.Forks,
		OpenIssues:    repo.OpenIssues,
		PushedAt:      repo.PushedAt,
		LastSyncedAt:  repo.LastSyncedAt,
	}
}

type listRepositoriesResp struct {
	Repositories []repositoryResp `json:"repositories"`
	Total        int              `json:"total"`
	Limit        int              `json:"limit"`
	Offset       int              `json:"offset"`
}

func (h *handler) newListRepositoriesResp(out manager.ListRepositoriesOutput) listRepositoriesResp {
	repos := make([]repositoryResp, len(out.Repositories))
	for i, repo := range out.Repositories {
		repos[i] = newRepositoryResp(repo)
	}
	return listRepositoriesResp{
		Repositories: repos,
		Total:        out.Total,
		Limit:        out.Limit,
		Offset:       out.Offset,
	}
}

type repositoryStatsResp struct {
	Total          int              `json:"total"`
	Private        int              `json:"private"`
	Public         int              `json:"public"`
	RecentlyPushed []repositoryResp `json:"recently_pushed"`
}

func (h *handler) newRepositoryStatsResp(out manager.RepositoryStatsOutput) repositoryStatsResp {
	recent := make([]repositoryResp, len(out.RecentlyPushed))
	for i, repo := range out.RecentlyPushed {
		recent[i] = newRepositoryResp(repo)
	}
	return repositoryStatsResp{
		Total:          out.Total,
		Private:        out.Private,
		Public:         out.Public,
		RecentlyPushed: recent,
	}
}

// --- Pull request DTOs ---

type createPullRequestReq struct {
	Owner string `json:"owner" binding:"required"`
	Repo  string `json:"repo"  binding:"required"`
	Title string `json:"title" binding:"required,min=1,max=255"`
	Head  string `json:"head"  binding:"required"`
	Base  string `json:"base"  binding:"required"`
	Body  string `json:"body"`
}

func (r createPullRequestReq) toInput() manager.CreatePullRequestInput {
	return manager.CreatePullRequestInput{
		Owner: r.Owner,
		Repo:  r.Repo,
		Title: r.Title,
		Head:  r.Head,
		Base:  r.Base,
		Body:  r.Body,
	}
}

type mergePullRequestReq struct {
	Owner         string `json:"-"`
	Repo          string `json:"-"`
	Number        int    `json:"-"`
	CommitTitle   string `json:"commit_title"`
	CommitMessage string `json:"commit_message"`
	MergeMethod   string `json:"merge_method" binding:"omitempty,oneof=merge squash rebase"`
}

func (r mergePullRequestReq) toInput() manager.MergePullRequestInput {
	return manager.MergePullRequestInput{
		Owner:         r.Owner,
		Repo:          r.Repo,
		Number:        r.Number,
		CommitTitle:   r.CommitTitle,
		CommitMessage: r.CommitMessage,
		MergeMethod:   r.MergeMethod,
	}
}

type pullRequestResp struct {
	ID         string    `json:"id"`
	Number     int       `json:"number"`
	Repository string    `json:"repository"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	State      string    `json:"state"`
	BaseBranch string    `json:"base_branch"`
	HeadBranch string    `json:"head_branch"`
	HTMLURL    string    `json:"html_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newPullRequestResp(pr model.PullRequest) pullRequestResp {
	return pullRequestResp{
		ID:         pr.ID,
		Number:     pr.Number,
		Repository: pr.Repository,
		Title:      pr.Title,
		Author:     pr.Author,
		State:      pr.State,
		BaseBranch: pr.BaseBranch,
		HeadBranch: pr.HeadBranch,
		HTMLURL:    pr.HTMLURL,
		CreatedAt:  pr.CreatedAt,
		UpdatedAt:  pr.UpdatedAt,
	}
}

type mergeResultResp struct {
	Merged  bool   `json:"merged"`
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

type pullRequestStatsResp struct {
	Total        int            `json:"total"`
	Open         int            `json:"open"`
	Merged       int            `json:"merged"`
	Closed       int            `json:"closed"`
	ByRepository map[string]int `json:"by_repository"`
}

// --- Branch DTOs ---

type createBranchReq struct {
	Owner  string `json:"owner"  binding:"required"`
	Repo   string `json:"repo"   binding:"required"`
	Branch string `json:"branch" binding:"required"`
	Source string `json:"source" binding:"required"`
}

func (r createBranchReq) toInput() manager.CreateBranchInput {
	return manager.CreateBranchInput{
		Owner:  r.Owner,
		Repo:   r.Repo,
		Branch: r.Branch,
		Source: r.Source,
	}
}

type branchResp struct {
	Name      string `json:"name"`
	SHA       string `json:"sha"`
	Protected bool   `json:"protected"`
}

func newBranchResp(branch manager.Branch) branchResp {
	return branchResp{
		Name:      branch.Name,
		SHA:       branch.SHA,
		Protected: branch.Protected,
	}
}

type listBranchesResp struct {
	Branches []branchResp `json:"branches"`
}

func (h *handler) newListBranchesResp(out manager.ListBranchesOutput) listBranchesResp {
	branches := make([]branchResp, len(out.Branches))
	for i, branch := range out.Branches {
		branches[i] = newBranchResp(branch)
	}
	return listBranchesResp{Branches: branches}
}

// --- Release DTOs ---

type createReleaseReq struct {
	Owner      string `json:"owner"    binding:"required"`
	Repo       string `json:"repo"     binding:"required"`
	TagName    string `json:"tag_name" binding:"required"`
	Target     string `json:"target"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
}

func (r createReleaseReq) toInput() manager.CreateReleaseInput {
	return manager.CreateReleaseInput{
		Owner:      r.Owner,
		Repo:       r.Repo,
		TagName:    r.TagName,
		Target:     r.Target,
		Title:      r.Title,
		Body:       r.Body,
		Draft:      r.Draft,
		Prerelease: r.Prerelease,
	}
}

type releaseResp struct {
	ID          string    `json:"id"`
	GitHubID    int64     `json:"github_id"`
	TagName     string    `json:"tag_name"`
	Repository  string    `json:"repository"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Draft       bool      `json:"draft"`
	Prerelease  bool      `json:"prerelease"`
	HTMLURL     string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
}

func newReleaseResp(release model.Release) releaseResp {
	return releaseResp{
		ID:          release.ID,
		GitHubID:    release.GitHubID,
		TagName:     release.TagName,
		Repository:  release.Repository,
		Title:       release.Title,
		Author:      release.Author,
		Draft:       release.Draft,
		Prerelease:  release.Prerelease,
		HTMLURL:     release.HTMLURL,
		PublishedAt: release.PublishedAt,
	}
}

type releaseStatsResp struct {
	Total       int           `json:"total"`
	Drafts      int           `json:"drafts"`
	Prereleases int           `json:"prereleases"`
	Recent      []releaseResp `json:"recent"`
}

func (h *handler) newReleaseStatsResp(out manager.ReleaseStatsOutput) releaseStatsResp {
	recent := make([]releaseResp, len(out.Recent))
	for i, release := range out.Recent {
		recent[i] = newReleaseResp(release)
	}
	return releaseStatsResp{
		Total:       out.Total,
		Drafts:      out.Drafts,
		Prereleases: out.Prereleases,
		Recent:      recent,
	}
}

// --- Issue DTOs ---

type createIssueReq struct {
	Owner     string   `json:"owner" binding:"required"`
	Repo      string   `json:"repo"  binding:"required"`
	Title     string   `json:"title" binding:"required,min=1,max=255"`
	Body      string   `json:"body"`
	Labels    []string `json:"labels"`
	Assignees []string `json:"assignees"`
}

func (r createIssueReq) toInput() manager.CreateIssueInput {
	return manager.CreateIssueInput{
		Owner:     r.Owner,
		Repo:      r.Repo,
		Title:     r.Title,
		Body:      r.Body,
		Labels:    r.Labels,
		Assignees: r.Assignees,
	}
}

type issueResp struct {
	ID         string    `json:"id"`
	Number     int       `json:"number"`
	Repository string    `json:"repository"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	State      string    `json:"state"`
	Labels     []string  `json:"labels"`
	Assignees  []string  `json:"assignees"`
	HTMLURL    string    `json:"html_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newIssueResp(issue model.Issue) issueResp {
	return issueResp{
		ID:         issue.ID,
		Number:     issue.Number,
		Repository: issue.Repository,
		Title:      issue.Title,
		Author:     issue.Author,
		State:      issue.State,
		Labels:     issue.Labels,
		Assignees:  issue.Assignees,
		HTMLURL:    issue.HTMLURL,
		CreatedAt:  issue.CreatedAt,
		UpdatedAt:  issue.UpdatedAt,
	}
}

type issueStatsResp struct {
	Total        int            `json:"total"`
	Open         int            `json:"open"`
	Closed       int            `json:"closed"`
	ByRepository map[string]int `json:"by_repository"`
}

// --- Organization DTOs ---

type organizationResp struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Email       string `json:"email"`
	Blog        string `json:"blog"`
	Location    string `json:"location"`
	PublicRepos int    `json:"public_repos"`
	HTMLURL     string `json:"html_url"`
}

func newOrganizationResp(org model.Organization) organizationResp {
	return organizationResp{
		Login:       org.Login,
		Name:        org.Name,
		Description: org.Description,
		Email:       org.Email,
		Blog:        org.Blog,
		Location:    org.Location,
		PublicRepos: org.PublicRepos,
		HTMLURL:     org.HTMLURL,
	}
}

// --- Sync DTOs ---

type syncRepositoryDataReq struct {
	Repository string `json:"repository" binding:"required"`
	State      string `json:"state"      binding:"omitempty,oneof=open closed all"`
}

type syncResp struct {
	Synced int `json:"synced"`
}

// --- Audit DTOs ---

type listAuditLogsReq struct {
	Action string `form:"action"`
	User   string `form:"user"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listAuditLogsReq) toInput() manager.ListAuditLogsInput {
	limit := r.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return manager.ListAuditLogsInput{
		Action: r.Action,
		User:   r.User,
		Limit:  limit,
		Offset: offset,
	}
}

type auditLogResp struct {
	ID           string    `json:"id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceName string    `json:"resource_name"`
	User         string    `json:"user"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type listAuditLogsResp struct {
	Entries []auditLogResp `json:"entries"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

func (h *handler) newListAuditLogsResp(out manager.ListAuditLogsOutput) listAuditLogsResp {
	entries := make([]auditLogResp, len(out.Entries))
	for i, entry := range out.Entries {
		entries[i] = auditLogResp{
			ID:           entry.ID,
			Action:       entry.Action,
			ResourceType: entry.ResourceType,
			ResourceName: entry.ResourceName,
			User:         entry.User,
			Status:       entry.Status,
			ErrorMessage: entry.ErrorMessage,
			Timestamp:    entry.Timestamp,
		}
	}
	return listAuditLogsResp{
		Entries: entries,
		Total:   out.Total,
		Limit:   out.Limit,
		Offset:  out.Offset,
	}
}
