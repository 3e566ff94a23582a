package memory

import (
	"context"
	"sort"

	"github-manager/internal/manager/repository"
	"github-manager/internal/model"
)

// UpsertPullRequest inserts or replaces a pull request record by its
// canonical ID.
func (s *Store) UpsertPullRequest(ctx context.Context, record model.PullRequest) (model.PullRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pulls[record.ID] = record
	return record, nil
}

// GetOnePullRequest returns the matching pull request, or a zero value when
// nothing matches.
func (s *Store) GetOnePullRequest(ctx context.Context, opt repository.GetOnePullRequestOptions) (model.PullRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if opt.ID != "" {
		return s.pulls[opt.ID], nil
	}
	for _, pr := range s.pulls {
		if opt.Repository != "" && pr.Repository != opt.Repository {
			continue
		}
		if opt.Number != 0 && pr.Number != opt.Number {
			continue
		}
		return pr, nil
	}
	return model.PullRequest{}, nil
}

// ListPullRequests returns pull requests sorted by most recently updated.
func (s *Store) ListPullRequests(ctx context.Context, opt repository.ListPullRequestsOptions) ([]model.PullRequest, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.PullRequest
	for _, pr := range s.pulls {
		if opt.Repository != "" && pr.Repository != opt.Repository {
			continue
		}
		if opt.State != "" && pr.State != opt.State {
			continue
		}
		out = append(out, pr)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})

	total := len(out)
	return paginate(out, opt.Limit, opt.Offset), total, nil
}
