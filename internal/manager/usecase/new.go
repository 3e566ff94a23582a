package usecase

import (
	"github-manager/internal/manager"
	"github-manager/internal/manager/repository"
	"github-manager/pkg/log"
)

// implUseCase is the private implementation of manager.UseCase.
type implUseCase struct {
	gh    manager.GitHubClient
	repo  repository.Repository
	authz manager.Authorizer
	l     log.Logger

	org      string
	pageSize int
}

// New creates a new manager UseCase implementation. org is the default
// organization synced by the background jobs; pageSize bounds list calls
// against the GitHub API.
func New(l log.Logger, gh manager.GitHubClient, repo repository.Repository, authz manager.Authorizer, org string, pageSize int) *implUseCase {
	if pageSize <= 0 {
		pageSize = 100
	}
	return &implUseCase{
		gh:       gh,
		repo:     repo,
		authz:    authz,
		l:        l,
		org:      org,
		pageSize: pageSize,
	}
}
