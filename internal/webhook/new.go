package webhook

import (
	"github-manager/internal/manager"
	pkgLog "github-manager/pkg/log"
)

// Backfiller schedules a one-off data sync for a repository.
type Backfiller interface {
	EnqueueRepositoryData(fullName string)
}

type Handler struct {
	managerUC manager.UseCase
	backfill  Backfiller // optional
	security  *SecurityValidator
	l         pkgLog.Logger
}

func NewHandler(
	managerUC manager.UseCase,
	backfill Backfiller,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		managerUC: managerUC,
		backfill:  backfill,
		security:  NewSecurityValidator(securityConfig),
		l:         l,
	}
}
