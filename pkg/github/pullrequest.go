package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v55/github"
)

// CreatePullRequest opens a pull request.
func (c *Client) CreatePullRequest(ctx context.Context, owner, repo string, in CreatePullRequestInput) (*gh.PullRequest, error) {
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/%s/pulls", owner, repo), nil, in)
	if err != nil {
		return nil, err
	}

	var pr gh.PullRequest
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to decode pull request: %w", err)
	}
	return &pr, nil
}

// GetPullRequest fetches one pull request.
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, number), nil, nil)
	if err != nil {
		return nil, err
	}

	var pr gh.PullRequest
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to decode pull request: %w", err)
	}
	return &pr, nil
}

// ListPullRequests lists one page of pull requests filtered by state
// (open, closed or all).
func (c *Client) ListPullRequests(ctx context.Context, owner, repo, state string, opts ListOptions) ([]*gh.PullRequest, error) {
	params := pageParams(opts)
	if state != "" {
		params.Set("state", state)
	}

	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/pulls", owner, repo), params, nil)
	if err != nil {
		return nil, err
	}

	var prs []*gh.PullRequest
	if err := json.Unmarshal(body, &prs); err != nil {
		return nil, fmt.Errorf("failed to decode pull requests: %w", err)
	}
	return prs, nil
}

// MergePullRequest merges a pull request. GitHub enforces merge eligibility
// and protected branches, rejections surface as UpstreamError.
func (c *Client) MergePullRequest(ctx context.Context, owner, repo string, number int, in MergePullRequestInput) (*gh.PullRequestMergeResult, error) {
	body, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/repos/%s/%s/pulls/%d/merge", owner, repo, number), nil, in)
	if err != nil {
		return nil, err
	}

	var result gh.PullRequestMergeResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode merge result: %w", err)
	}
	return &result, nil
}

// ClosePullRequest closes a pull request without merging.
func (c *Client) ClosePullRequest(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, error) {
	payload := map[string]string{"state": "closed"}
	body, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, number), nil, payload)
	if err != nil {
		return nil, err
	}

	var pr gh.PullRequest
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to decode pull request: %w", err)
	}
	return &pr, nil
}
