package github

// ListOptions controls pagination for list calls.
type ListOptions struct {
	Page    int
	PerPage int
}

// CreateRepositoryInput is the input for repository creation. Org empty
// creates under the authenticated account.
type CreateRepositoryInput struct {
	Org         string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Private     bool   `json:"private"`
	AutoInit    bool   `json:"auto_init"`
}

// CreatePullRequestInput is the input for pull request creation.
type CreatePullRequestInput struct {
	Title string `json:"title"`
	Head  string `json:"head"`
	Base  string `json:"base"`
	Body  string `json:"body,omitempty"`
}

// MergePullRequestInput is the input for merging a pull request.
type MergePullRequestInput struct {
	CommitTitle   string `json:"commit_title,omitempty"`
	CommitMessage string `json:"commit_message,omitempty"`
	MergeMethod   string `json:"merge_method,omitempty"`
}

// CreateReleaseInput is the input for release creation.
type CreateReleaseInput struct {
	TagName         string `json:"tag_name"`
	TargetCommitish string `json:"target_commitish,omitempty"`
	Name            string `json:"name,omitempty"`
	Body            string `json:"body,omitempty"`
	Draft           bool   `json:"draft"`
	Prerelease      bool   `json:"prerelease"`
}

// CreateIssueInput is the input for issue creation.
type CreateIssueInput struct {
	Title     string   `json:"title"`
	Body      string   `json:"body,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
}
