package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github-manager/internal/manager"
	"github-manager/internal/middleware"
	"github-manager/pkg/response"
)

// CreateRelease godoc
// @Summary     Create a release
// @Description Creates a release on GitHub and mirrors it locally.
// @Tags        Releases
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       body body createReleaseReq true "Release data"
// @Success     200 {object} releaseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/releases [POST]
func (h *handler) CreateRelease(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReleaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateRelease(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateRelease: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newReleaseResp(output.Release))
}

// DeleteRelease godoc
// @Summary     Delete a release
// @Description Deletes a release by its GitHub ID and drops the mirror record.
// @Tags        Releases
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       owner path string true "Repository owner"
// @Param       repo  path string true "Repository name"
// @Param       id    path int    true "GitHub release ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/releases/{owner}/{repo}/{id} [DELETE]
func (h *handler) DeleteRelease(c *gin.Context) {
	ctx := c.Request.Context()

	owner := c.Param("owner")
	repo := c.Param("repo")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if owner == "" || repo == "" || err != nil || id <= 0 {
		response.Error(c, fmt.Errorf("owner, repo and release id are required"), nil)
		return
	}

	err = h.uc.DeleteRelease(ctx, middleware.ScopeFromContext(c), manager.DeleteReleaseInput{
		Owner: owner, Repo: repo, ID: id,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteRelease: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// SyncReleases godoc
// @Summary     Sync a repository's releases
// @Description Pages through one repository's releases and refreshes the
// @Description local mirror.
// @Tags        Releases
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       body body syncRepositoryDataReq true "Repository"
// @Success     200 {object} syncResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     429 {object} response.Resp "Rate limited"
// @Router      /api/v1/releases/sync [POST]
func (h *handler) SyncReleases(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncRepositoryDataReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	synced, err := h.uc.SyncRepositoryReleases(ctx, middleware.ScopeFromContext(c), req.Repository)
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncRepositoryReleases: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, syncResp{Synced: synced})
}

// ReleaseStats godoc
// @Summary     Release statistics
// @Description Returns mirror-wide release counts and the most recent releases.
// @Tags        Releases
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Success     200 {object} releaseStatsResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/releases/stats [GET]
func (h *handler) ReleaseStats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ReleaseStats(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ReleaseStats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReleaseStatsResp(output))
}
