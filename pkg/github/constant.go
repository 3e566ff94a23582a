package github

const (
	// DefaultBaseURL is the public GitHub API root.
	DefaultBaseURL = "https://api.github.com"

	acceptHeader     = "application/vnd.github+json"
	apiVersionHeader = "X-GitHub-Api-Version"
	apiVersion       = "2022-11-28"

	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"

	maxAttempts = 3
)
