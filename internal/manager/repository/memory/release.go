package memory

import (
	"context"
	"sort"

	"github-manager/internal/manager/repository"
	"github-manager/internal/model"
)

// UpsertRelease inserts or replaces a release record by its canonical ID.
func (s *Store) UpsertRelease(ctx context.Context, record model.Release) (model.Release, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releases[record.ID] = record
	return record, nil
}

// GetOneRelease returns the matching release, or a zero value when nothing
// matches.
func (s *Store) GetOneRelease(ctx context.Context, opt repository.GetOneReleaseOptions) (model.Release, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if opt.ID != "" {
		return s.releases[opt.ID], nil
	}
	for _, release := range s.releases {
		if opt.Repository != "" && release.Repository != opt.Repository {
			continue
		}
		if opt.TagName != "" && release.TagName != opt.TagName {
			continue
		}
		if opt.GitHubID != 0 && release.GitHubID != opt.GitHubID {
			continue
		}
		return release, nil
	}
	return model.Release{}, nil
}

// ListReleases returns releases sorted by most recently published.
func (s *Store) ListReleases(ctx context.Context, opt repository.ListReleasesOptions) ([]model.Release, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.Release
	for _, release := range s.releases {
		if opt.Repository != "" && release.Repository != opt.Repository {
			continue
		}
		out = append(out, release)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})

	total := len(out)
	return paginate(out, opt.Limit, opt.Offset), total, nil
}

// DeleteRelease removes a release record by canonical ID.
func (s *Store) DeleteRelease(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.releases, id)
	return nil
}
