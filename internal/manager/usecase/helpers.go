package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github-manager/internal/manager"
	"github-manager/internal/model"
)

// authorize returns ErrPermissionDenied when the scope's role does not
// permit the action on the resource kind.
func (uc *implUseCase) authorize(sc model.Scope, action, resource string) error {
	if !uc.authz.Can(sc, action, resource) {
		return manager.ErrPermissionDenied
	}
	return nil
}

// audit records an administrative operation. Audit failures are logged and
// swallowed, they must never fail the operation itself.
func (uc *implUseCase) audit(ctx context.Context, sc model.Scope, action, resourceType, resourceName string, opErr error) {
	entry := model.AuditLog{
		ID:           uuid.NewString(),
		Action:       action,
		ResourceType: resourceType,
		ResourceName: resourceName,
		User:         sc.User,
		Status:       model.AuditStatusSuccess,
		Timestamp:    time.Now(),
	}
	if opErr != nil {
		entry.Status = model.AuditStatusFailed
		entry.ErrorMessage = opErr.Error()
	}

	if err := uc.repo.CreateAuditLog(ctx, entry); err != nil {
		uc.l.Errorf(ctx, "uc.audit CreateAuditLog: %v", err)
	}
}

// splitFullName splits "owner/repo" into its parts.
func splitFullName(fullName string) (owner, repo string, err error) {
	parts := strings.SplitN(fullName, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository full name %q", fullName)
	}
	return parts[0], parts[1], nil
}
