package memory

import (
	"context"
	"sort"

	"github-manager/internal/manager/repository"
	"github-manager/internal/model"
)

// UpsertRepository inserts or replaces a repository record by full name.
func (s *Store) UpsertRepository(ctx context.Context, record model.Repository) (model.Repository, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.repos[record.FullName] = record
	return record, nil
}

// GetOneRepository returns the matching repository, or a zero value when
// nothing matches.
func (s *Store) GetOneRepository(ctx context.Context, opt repository.GetOneRepositoryOptions) (model.Repository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if opt.FullName != "" {
		return s.repos[opt.FullName], nil
	}
	for _, repo := range s.repos {
		if opt.Owner != "" && repo.Owner != opt.Owner {
			continue
		}
		if opt.Name != "" && repo.Name != opt.Name {
			continue
		}
		return repo, nil
	}
	return model.Repository{}, nil
}

// ListRepositories returns repositories sorted by full name plus the total
// count before pagination.
func (s *Store) ListRepositories(ctx context.Context, opt repository.ListRepositoriesOptions) ([]model.Repository, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Repository
	for _, repo := range s.repos {
		if opt.Owner != "" && repo.Owner != opt.Owner {
			continue
		}
		out = append(out, repo)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })

	total := len(out)
	return paginate(out, opt.Limit, opt.Offset), total, nil
}

// DeleteRepository removes a repository record. Deleting a missing record
// is a no-op.
func (s *Store) DeleteRepository(ctx context.Context, fullName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.repos, fullName)
	return nil
}
