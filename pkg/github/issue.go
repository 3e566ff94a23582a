package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v55/github"
)

// CreateIssue opens an issue.
func (c *Client) CreateIssue(ctx context.Context, owner, repo string, in CreateIssueInput) (*gh.Issue, error) {
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/%s/issues", owner, repo), nil, in)
	if err != nil {
		return nil, err
	}

	var issue gh.Issue
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, fmt.Errorf("failed to decode issue: %w", err)
	}
	return &issue, nil
}

// CloseIssue closes an issue.
func (c *Client) CloseIssue(ctx context.Context, owner, repo string, number int) (*gh.Issue, error) {
	payload := map[string]string{"state": "closed"}
	body, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, number), nil, payload)
	if err != nil {
		return nil, err
	}

	var issue gh.Issue
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, fmt.Errorf("failed to decode issue: %w", err)
	}
	return &issue, nil
}

// ListIssues lists one page of issues filtered by state. The response
// includes pull requests, which GitHub models as issues; callers filter
// those out.
func (c *Client) ListIssues(ctx context.Context, owner, repo, state string, opts ListOptions) ([]*gh.Issue, error) {
	params := pageParams(opts)
	if state != "" {
		params.Set("state", state)
	}

	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/issues", owner, repo), params, nil)
	if err != nil {
		return nil, err
	}

	var issues []*gh.Issue
	if err := json.Unmarshal(body, &issues); err != nil {
		return nil, fmt.Errorf("failed to decode issues: %w", err)
	}
	return issues, nil
}
