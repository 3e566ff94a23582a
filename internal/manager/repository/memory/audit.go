package memory

import (
	"context"

	"github-manager/internal/manager/repository"
	"github-manager/internal/model"
)

// CreateAuditLog appends an audit entry.
func (s *Store) CreateAuditLog(ctx context.Context, entry model.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.audit = append(s.audit, entry)
	return nil
}

// ListAuditLogs returns audit entries newest first.
func (s *Store) ListAuditLogs(ctx context.Context, opt repository.ListAuditLogsOptions) ([]model.AuditLog, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.AuditLog
	// Entries are appended in order, walk backwards for newest first.
	for i := len(s.audit) - 1; i >= 0; i-- {
		entry := s.audit[i]
		if opt.Action != "" && entry.Action != opt.Action {
			continue
		}
		if opt.User != "" && entry.User != opt.User {
			continue
		}
		out = append(out, entry)
	}

	total := len(out)
	return paginate(out, opt.Limit, opt.Offset), total, nil
}
