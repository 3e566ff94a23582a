package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github-manager/internal/manager"
	"github-manager/internal/middleware"
	"github-manager/pkg/response"
)

// ListBranches godoc
// @Summary     List branches
// @Description Lists a repository's branches straight from GitHub.
// @Tags        Branches
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       owner path string true "Repository owner"
// @Param       repo  path string true "Repository name"
// @Param       page  query int   false "Page number"
// @Success     200 {object} listBranchesResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/branches/{owner}/{repo} [GET]
func (h *handler) ListBranches(c *gin.Context) {
	ctx := c.Request.Context()

	owner := c.Param("owner")
	repo := c.Param("repo")
	if owner == "" || repo == "" {
		response.Error(c, fmt.Errorf("owner and repo are required"), nil)
		return
	}
	page, _ := strconv.Atoi(c.Query("page"))

	output, err := h.uc.ListBranches(ctx, middleware.ScopeFromContext(c), manager.ListBranchesInput{
		Owner: owner, Repo: repo, Page: page,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListBranches: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListBranchesResp(output))
}

// CreateBranch godoc
// @Summary     Create a branch
// @Description Creates a branch from the head of the source branch.
// @Tags        Branches
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       body body createBranchReq true "Branch data"
// @Success     200 {object} branchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/branches [POST]
func (h *handler) CreateBranch(c *gin.Context) {
	ctx := c.Request.Context()

	var req createBranchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateBranch(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateBranch: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newBranchResp(output.Branch))
}

// DeleteBranch godoc
// @Summary     Delete a branch
// @Description Deletes a branch ref. GitHub rejects protected branches.
// @Tags        Branches
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       owner  path string true "Repository owner"
// @Param       repo   path string true "Repository name"
// @Param       branch path string true "Branch name"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/branches/{owner}/{repo}/{branch} [DELETE]
func (h *handler) DeleteBranch(c *gin.Context) {
	ctx := c.Request.Context()

	owner := c.Param("owner")
	repo := c.Param("repo")
	branch := c.Param("branch")
	if owner == "" || repo == "" || branch == "" {
		response.Error(c, fmt.Errorf("owner, repo and branch are required"), nil)
		return
	}

	err := h.uc.DeleteBranch(ctx, middleware.ScopeFromContext(c), manager.DeleteBranchInput{
		Owner: owner, Repo: repo, Branch: branch,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteBranch: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
