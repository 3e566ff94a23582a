package memory

import (
	"context"
	"sort"

	"github-manager/internal/manager/repository"
	"github-manager/internal/model"
)

// UpsertIssue inserts or replaces an issue record by its canonical ID.
func (s *Store) UpsertIssue(ctx context.Context, record model.Issue) (model.Issue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issues[record.ID] = record
	return record, nil
}

// GetOneIssue returns the matching issue, or a zero value when nothing
// matches.
func (s *Store) GetOneIssue(ctx context.Context, opt repository.GetOneIssueOptions) (model.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if opt.ID != "" {
		return s.issues[opt.ID], nil
	}
	for _, issue := range s.issues {
		if opt.Repository != "" && issue.Repository != opt.Repository {
			continue
		}
		if opt.Number != 0 && issue.Number != opt.Number {
			continue
		}
		return issue, nil
	}
	return model.Issue{}, nil
}

// ListIssues returns issues sorted by most recently updated.
func (s *Store) ListIssues(ctx context.Context, opt repository.ListIssuesOptions) ([]model.Issue, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Issue
	for _, issue := range s.issues {
		if opt.Repository != "" && issue.Repository != opt.Repository {
			continue
		}
		if opt.State != "" && issue.State != opt.State {
			continue
		}
		out = append(out, issue)
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
