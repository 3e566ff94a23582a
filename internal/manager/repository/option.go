package repository

// GetOneRepositoryOptions holds filter parameters for fetching a single
// repository. All non-empty fields are applied as AND conditions.
type GetOneRepositoryOptions struct {
	FullName string
	Owner    string
	Name     string
}

// ListRepositoriesOptions holds filter and pagination parameters for
// listing repositories.
type ListRepositoriesOptions struct {
	Owner  string
	Limit  int
	Offset int
}

// GetOnePullRequestOptions holds filter parameters for fetching a single
// pull request.
type GetOnePullRequestOptions struct {
	ID         string
	Repository string
	Number     int
}

// ListPullRequestsOptions holds filter and pagination parameters for
// listing pull requests.
type ListPullRequestsOptions struct {
	Repository string
	State      string
	Limit      int
	Offset     int
}

// GetOneReleaseOptions holds filter parameters for fetching a single release.
type GetOneReleaseOptions struct {
	ID         string
	Repository string
	TagName    string
	GitHubID   int64
}

// ListReleasesOptions holds filter and pagination parameters for listing
// releases.
type ListReleasesOptions struct {
	Repository string
	Limit      int
	Offset     int
}

// GetOneIssueOptions holds filter parameters for fetching a single issue.
type GetOneIssueOptions struct {
	ID         string
	Repository string
	Number     int
}

// ListIssuesOptions holds filter and pagination parameters for listing
// issues.
type ListIssuesOptions struct {
	Repository string
	State      string
	Limit      int
	Offset     int
}

// ListAuditLogsOptions holds filter and pagination parameters for listing
// audit entries.
type ListAuditLogsOptions struct {
	Action string
	User   string
	Limit  int
	Offset int
}
