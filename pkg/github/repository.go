package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	gh "github.com/google/go-github/v55/github"
)

// CreateRepository creates a repository under the org, or under the
// authenticated account when in.Org is empty.
func (c *Client) CreateRepository(ctx context.Context, in CreateRepositoryInput) (*gh.Repository, error) {
	path := "/user/repos"
	if in.Org != "" {
		path = fmt.Sprintf("/orgs/%s/repos", in.Org)
	}

	body, err := c.do(ctx, http.MethodPost, path, nil, in)
	if err != nil {
		return nil, err
	}

	var repo gh.Repository
	if err := json.Unmarshal(body, &repo); err != nil {
		return nil, fmt.Errorf("failed to decode repository: %w", err)
	}
	return &repo, nil
}

// GetRepository fetches a single repository.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s", owner, repo), nil, nil)
	if err != nil {
		return nil, err
	}

	var out gh.Repository
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode repository: %w", err)
	}
	return &out, nil
}

// DeleteRepository deletes a repository.
func (c *Client) DeleteRepository(ctx context.Context, owner, repo string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/repos/%s/%s", owner, repo), nil, nil)
	return err
}

// ListRepositories lists one page of repositories: the org's when org is
// set, otherwise the repositories visible to the installation.
func (c *Client) ListRepositories(ctx context.Context, org string, opts ListOptions) ([]*gh.Repository, error) {
	params := pageParams(opts)

	if org != "" {
		body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orgs/%s/repos", org), params, nil)
		if err != nil {
			return nil, err
		}
		var repos []*gh.Repository
		if err := json.Unmarshal(body, &repos); err != nil {
			return nil, fmt.Errorf("failed to decode repositories: %w", err)
		}
		return repos, nil
	}

	body, err := c.do(ctx, http.MethodGet, "/installation/repositories", params, nil)
	if err != nil {
		return nil, err
	}
	var wrapper struct {
		Repositories []*gh.Repository `json:"repositories"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode repositories: %w", err)
	}
	return wrapper.Repositories, nil
}

// GetOrganization fetches an organization profile.
func (c *Client) GetOrganization(ctx context.Context, org string) (*gh.Organization, error) {
	body, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orgs/%s", org), nil, nil)
	if err != nil {
		return nil, err
	}

	var out gh.Organization
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode organization: %w", err)
	}
	return &out, nil
}

func pageParams(opts ListOptions) url.Values {
	params := url.Values{}
	if opts.Page > 0 {
		params.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	return params
}
