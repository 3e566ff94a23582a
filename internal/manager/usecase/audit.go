package usecase

import (
	"context"

	"github-manager/internal/auth"
	"github-manager/internal/manager"
	repo "github-manager/internal/manager/repository"
	"github-manager/internal/model"
)

// ListAuditLogs returns a page of audit entries, newest first.
func (uc *implUseCase) ListAuditLogs(ctx context.Context, sc model.Scope, input manager.ListAuditLogsInput) (manager.ListAuditLogsOutput, error) {
	if err := uc.authorize(sc, auth.ActionRead, "audit"); err != nil {
		return manager.ListAuditLogsOutput{}, err
	}

	entries, total, err := uc.repo.ListAuditLogs(ctx, repo.ListAuditLogsOptions{
		Action: input.Action,
		User:   input.User,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAuditLogs: %v", err)
		return manager.ListAuditLogsOutput{}, err
	}

	return manager.ListAuditLogsOutput{
		Entries: entries,
		Total:   total,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}, nil
}
