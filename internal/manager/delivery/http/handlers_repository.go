package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github-manager/internal/manager"
	"github-manager/internal/middleware"
	"github-manager/pkg/response"
)

// CreateRepository godoc
// @Summary     Create a repository
// @Description Creates a repository on GitHub and mirrors it locally.
// @Tags        Repositories
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       body body createRepositoryReq true "Repository data"
// @Success     200 {object} repositoryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/repositories [POST]
func (h *handler) CreateRepository(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateRepositoryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateRepository(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateRepository: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newRepositoryResp(output.Repository))
}

// ListRepositories godoc
// @Summary     List mirrored repositories
// @Description Returns a paginated list of locally mirrored repositories.
// @Tags        Repositories
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       owner  query string false "Filter by owner"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listRepositoriesResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/repositories [GET]
func (h *handler) ListRepositories(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRepositoriesReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListRepositories(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRepositories: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListRepositoriesResp(output))
}

// DeleteRepository godoc
// @Summary     Delete a repository
// @Description Deletes a repository on GitHub and removes the local mirror.
// @Tags        Repositories
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       owner path string true "Repository owner"
// @Param       repo  path string true "Repository name"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/repositories/{owner}/{repo} [DELETE]
func (h *handler) DeleteRepository(c *gin.Context) {
	ctx := c.Request.Context()

	owner := c.Param("owner")
	repo := c.Param("repo")
	if owner == "" || repo == "" {
		response.Error(c, fmt.Errorf("owner and repo are required"), nil)
		return
	}

	err := h.uc.DeleteRepository(ctx, middleware.ScopeFromContext(c), manager.DeleteRepositoryInput{Owner: owner, Repo: repo})
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteRepository: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// SyncRepositories godoc
// @Summary     Sync all repositories
// @Description Pages through GitHub and refreshes the local repository mirror.
// @Tags        Repositories
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Success     200 {object} syncResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     429 {object} response.Resp "Rate limited"
// @Router      /api/v1/repositories/sync [POST]
func (h *handler) SyncRepositories(c *gin.Context) {
	ctx := c.Request.Context()

	synced, err := h.uc.SyncAllRepositories(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncAllRepositories: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, syncResp{Synced: synced})
}

// RepositoryStats godoc
// @Summary     Repository statistics
// @Description Returns mirror-wide repository counts.
// @Tags        Repositories
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Success     200 {object} repositoryStatsResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/repositories/stats [GET]
func (h *handler) RepositoryStats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.RepositoryStats(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.RepositoryStats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRepositoryStatsResp(output))
}
