package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v55/github"
)

// CreateRelease creates a release.
func (c *Client) CreateRelease(ctx context.Context, owner, repo string, in CreateReleaseInput) (*gh.RepositoryRelease, error) {
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/%s/releases", owner, repo), nil, in)
	if err != nil {
		return nil, err
	}

	var release gh.RepositoryRelease
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("failed to decode release: %w", err)
	}
	return &release, nil
}

// ListReleases lists one page of releases.
func (c *Client) ListReleases(ctx context.Context, owner, repo string, opts ListOptions) ([]*gh.RepositoryRelease, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/releases", owner, repo), pageParams(opts), nil)
	if err != nil {
		return nil, err
	}

	var releases []*gh.RepositoryRelease
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, fmt.Errorf("failed to decode releases: %w", err)
	}
	return releases, nil
}

// DeleteRelease deletes a release by its GitHub ID.
func (c *Client) DeleteRelease(ctx context.Context, owner, repo string, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/repos/%s/%s/releases/%d", owner, repo, id), nil, nil)
	return err
}
