package http

import (
	"github.com/gin-gonic/gin"

	"github-manager/internal/manager"
	"github-manager/internal/middleware"
	"github-manager/pkg/response"
)

// CreatePullRequest godoc
// @Summary     Open a pull request
// @Description Opens a pull request on GitHub and mirrors it locally.
// @Tags        PullRequests
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       body body createPullRequestReq true "Pull request data"
// @Success     200 {object} pullRequestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/pulls [POST]
func (h *handler) CreatePullRequest(c *gin.Context) {
	ctx := c.Request.Context()

	var req createPullRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreatePullRequest(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreatePullRequest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newPullRequestResp(output.PullRequest))
}

// MergePullRequest godoc
// @Summary     Merge a pull request
// @Description Merges a pull request. GitHub enforces merge eligibility and
// @Description protected branches.
// @Tags        PullRequests
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       owner  path string true "Repository owner"
// @Param       repo   path string true "Repository name"
// @Param       number path int    true "Pull request number"
// @Param       body body mergePullRequestReq false "Merge options"
// @Success     200 {object} mergeResultResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/pulls/{owner}/{repo}/{number}/merge [PUT]
func (h *handler) MergePullRequest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMergePullRequestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.MergePullRequest(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.MergePullRequest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, mergeResultResp{
		Merged:  output.Merged,
		SHA:     output.SHA,
		Message: output.Message,
	})
}

// ClosePullRequest godoc
// @Summary     Close a pull request
// @Description Closes a pull request without merging.
// @Tags        PullRequests
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       owner  path string true "Repository owner"
// @Param       repo   path string true "Repository name"
// @Param       number path int    true "Pull request number"
// @Success     200 {object} pullRequestResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/pulls/{owner}/{repo}/{number}/close [PUT]
func (h *handler) ClosePullRequest(c *gin.Context) {
	ctx := c.Request.Context()

	owner, repo, number, err := pullRequestParams(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ClosePullRequest(ctx, middleware.ScopeFromContext(c), manager.ClosePullRequestInput{
		Owner: owner, Repo: repo, Number: number,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ClosePullRequest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newPullRequestResp(output.PullRequest))
}

// SyncPullRequests godoc
// @Summary     Sync a repository's pull requests
// @Description Pages through one repository's pull requests and refreshes the
// @Description local mirror.
// @Tags        PullRequests
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       body body syncRepositoryDataReq true "Repository and state filter"
// @Success     200 {object} syncResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     429 {object} response.Resp "Rate limited"
// @Router      /api/v1/pulls/sync [POST]
func (h *handler) SyncPullRequests(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncRepositoryDataReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	synced, err := h.uc.SyncRepositoryPullRequests(ctx, middleware.ScopeFromContext(c), req.Repository, req.State)
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncRepositoryPullRequests: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, syncResp{Synced: synced})
}

// PullRequestStats godoc
// @Summary     Pull request statistics
// @Description Returns mirror-wide pull request counts by state and repository.
// @Tags        PullRequests
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Success     200 {object} pullRequestStatsResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/pulls/stats [GET]
func (h *handler) PullRequestStats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.PullRequestStats(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.PullRequestStats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, pullRequestStatsResp{
		Total:        output.Total,
		Open:         output.Open,
		Merged:       output.Merged,
		Closed:       output.Closed,
		ByRepository: output.ByRepository,
	})
}
