package manager

import "github-manager/internal/model"

// --- Repository inputs/outputs ---

type CreateRepositoryInput struct {
	Org         string
	Name        string
	Description string
	Private     bool
	AutoInit    bool
}

type DeleteRepositoryInput struct {
	Owner string
	Repo  string
}

type ListRepositoriesInput struct {
	Owner  string
	Limit  int
	Offset int
}

type RepositoryOutput struct {
	Repository model.Repository
}

type ListRepositoriesOutput struct {
	Repositories []model.Repository
	Total        int
	Limit        int
	Offset       int
}

type RepositoryStatsOutput struct {
	Total          int
	Private        int
	Public         int
	RecentlyPushed []model.Repository
}

// --- Pull request inputs/outputs ---

type CreatePullRequestInput struct {
	Owner string
	Repo  string
	Title string
	Head  string
	Base  string
	Body  string
}

type MergePullRequestInput struct {
	Owner         string
	Repo          string
	Number        int
	CommitTitle   string
	CommitMessage string
	MergeMethod   string
}

type ClosePullRequestInput struct {
	Owner  string
	Repo   string
	Number int
}

type PullRequestOutput struct {
	PullRequest model.PullRequest
}

type MergeResultOutput struct {
	Merged  bool
	SHA     string
	Message string
}

type PullRequestStatsOutput struct {
	Total        int
	Open         int
	Merged       int
	Closed       int
	ByRepository map[string]int
}

// --- Branch inputs/outputs ---

type ListBranchesInput struct {
	Owner string
	Repo  string
	Page  int
}

type CreateBranchInput struct {
	Owner  string
	Repo   string
	Branch string
	Source string
}

type DeleteBranchInput struct {
	Owner  string
	Repo   string
	Branch string
}

type Branch struct {
	Name      string
	SHA       string
	Protected bool
}

type BranchOutput struct {
	Branch Branch
}

type ListBranchesOutput struct {
	Branches []Branch
}

// --- Release inputs/outputs ---

type CreateReleaseInput struct {
	Owner      string
	Repo       string
	TagName    string
	Target     string
	Title      string
	Body       string
	Draft      bool
	Prerelease bool
}

type DeleteReleaseInput struct {
	Owner string
	Repo  string
	ID    int64
}

type ReleaseOutput struct {
	Release model.Release
}

type ReleaseStatsOutput struct {
	Total       int
	Drafts      int
	Prereleases int
	Recent      []model.Release
}

// --- Issue inputs/outputs ---

type CreateIssueInput struct {
	Owner     string
	Repo      string
	Title     string
	Body      string
	Labels    []string
	Assignees []string
}

type CloseIssueInput struct {
	Owner  string
	Repo   string
	Number int
}

type IssueOutput struct {
	Issue model.Issue
}

type IssueStatsOutput struct {
	Total        int
	Open         int
	Closed       int
	ByRepository map[string]int
}

// --- Organization output ---

type OrganizationOutput struct {
	Organization model.Organization
}

// --- Audit inputs/outputs ---

type ListAuditLogsInput struct {
	Action string
	User   string
	Limit  int
	Offset int
}

type ListAuditLogsOutput struct {
	Entries []model.AuditLog
	Total   int
	Limit   int
	Offset  int
}
