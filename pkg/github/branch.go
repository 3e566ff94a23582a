package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v55/github"
)

// ListBranches lists one page of branches.
func (c *Client) ListBranches(ctx context.Context, owner, repo string, opts ListOptions) ([]*gh.Branch, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/branches", owner, repo), pageParams(opts), nil)
	if err != nil {
		return nil, err
	}

	var branches []*gh.Branch
	if err := json.Unmarshal(body, &branches); err != nil {
		return nil, fmt.Errorf("failed to decode branches: %w", err)
	}
	return branches, nil
}

// CreateBranch creates a branch from the head of the source branch by
// resolving its SHA and creating a new ref.
func (c *Client) CreateBranch(ctx context.Context, owner, repo, branch, source string) (*gh.Reference, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/git/ref/heads/%s", owner, repo, source), nil, nil)
	if err != nil {
		return nil, err
	}

	var sourceRef gh.Reference
	if err := json.Unmarshal(body, &sourceRef); err != nil {
		return nil, fmt.Errorf("failed to decode source ref: %w", err)
	}

	payload := map[string]string{
		"ref": "refs/heads/" + branch,
		"sha": sourceRef.GetObject().GetSHA(),
	}
	body, err = c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/%s/git/refs", owner, repo), nil, payload)
	if err != nil {
		return nil, err
	}

	var ref gh.Reference
	if err := json.Unmarshal(body, &ref); err != nil {
		return nil, fmt.Errorf("failed to decode ref: %w", err)
	}
	return &ref, nil
}

// DeleteBranch deletes a branch ref. GitHub rejects deletion of protected
// branches.
func (c *Client) DeleteBranch(ctx context.Context, owner, repo, branch string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/repos/%s/%s/git/refs/heads/%s", owner, repo, branch), nil, nil)
	return err
}
