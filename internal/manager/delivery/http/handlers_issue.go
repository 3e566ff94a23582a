package http

import (
	"github.com/gin-gonic/gin"

	"github-manager/internal/manager"
	"github-manager/internal/middleware"
	"github-manager/pkg/response"
)

// CreateIssue godoc
// @Summary     Open an issue
// @Description Opens an issue on GitHub and mirrors it locally.
// @Tags        Issues
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       body body createIssueReq true "Issue data"
// @Success     200 {object} issueResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/issues [POST]
func (h *handler) CreateIssue(c *gin.Context) {
	ctx := c.Request.Context()

	var req createIssueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateIssue(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateIssue: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newIssueResp(output.Issue))
}

// CloseIssue godoc
// @Summary     Close an issue
// @Description Closes an issue and mirrors the closed state.
// @Tags        Issues
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       owner  path string true "Repository owner"
// @Param       repo   path string true "Repository name"
// @Param       number path int    true "Issue number"
// @Success     200 {object} issueResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/issues/{owner}/{repo}/{number}/close [PUT]
func (h *handler) CloseIssue(c *gin.Context) {
	ctx := c.Request.Context()

	owner, repo, number, err := issueParams(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CloseIssue(ctx, middleware.ScopeFromContext(c), manager.CloseIssueInput{
		Owner: owner, Repo: repo, Number: number,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.CloseIssue: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newIssueResp(output.Issue))
}

// SyncIssues godoc
// @Summary     Sync a repository's issues
// @Description Pages through one repository's issues and refreshes the local
// @Description mirror. Pull requests returned by the issues API are skipped.
// @Tags        Issues
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       body body syncRepositoryDataReq true "Repository and state filter"
// @Success     200 {object} syncResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     429 {object} response.Resp "Rate limited"
// @Router      /api/v1/issues/sync [POST]
func (h *handler) SyncIssues(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncRepositoryDataReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	synced, err := h.uc.SyncRepositoryIssues(ctx, middleware.ScopeFromContext(c), req.Repository, req.State)
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncRepositoryIssues: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, syncResp{Synced: synced})
}

// IssueStats godoc
// @Summary     Issue statistics
// @Description Returns mirror-wide issue counts by state and repository.
// @Tags        Issues
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Success     200 {object} issueStatsResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/issues/stats [GET]
func (h *handler) IssueStats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.IssueStats(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.IssueStats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, issueStatsResp{
		Total:        output.Total,
		Open:         output.Open,
		Closed:       output.Closed,
		ByRepository: output.ByRepository,
	})
}
