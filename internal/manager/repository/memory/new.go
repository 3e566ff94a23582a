package memory

import (
	"sync"

	"github-manager/internal/model"
)

// Store is an in-process mirror store. Records are keyed by their canonical
// IDs, so upserts are naturally idempotent.
type Store struct {
	mu       sync.RWMutex
	repos    map[string]model.Repository
	pulls    map[string]model.PullRequest
	releases map[string]model.Release
	issues   map[string]model.Issue
	audit    []model.AuditLog
}

// New creates an empty store.
func New() *Store {
	return &Store{
		repos:    make(map[string]model.Repository),
		pulls:    make(map[string]model.PullRequest),
		releases: make(map[string]model.Release),
		issues:   make(map[string]model.Issue),
	}
}

// paginate applies limit/offset to a sorted slice. Limit <= 0 returns
// everything after the offset.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
