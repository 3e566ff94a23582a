package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// processCreateRepositoryReq binds and validates the create repository body.
func (h *handler) processCreateRepositoryReq(c *gin.Context) (createRepositoryReq, error) {
	var req createRepositoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListRepositoriesReq binds the list repositories query parameters.
func (h *handler) processListRepositoriesReq(c *gin.Context) (listRepositoriesReq, error) {
	var req listRepositoriesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processMergePullRequestReq binds the merge body and the URI params.
func (h *handler) processMergePullRequestReq(c *gin.Context) (mergePullRequestReq, error) {
	var req mergePullRequestReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	var err error
	req.Owner, req.Repo, req.Number, err = pullRequestParams(c)
	return req, err
}

// pullRequestParams extracts owner/repo/number from the URI.
func pullRequestParams(c *gin.Context) (owner, repo string, number int, err error) {
	owner = c.Param("owner")
	repo = c.Param("repo")
	if owner == "" || repo == "" {
		return "", "", 0, fmt.Errorf("owner and repo are required")
	}
	number, err = strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		return "", "", 0, fmt.Errorf("invalid pull request number")
	}
	return owner, repo, number, nil
}

// issueParams extracts owner/repo/number from the URI.
func issueParams(c *gin.Context) (owner, repo string, number int, err error) {
	owner = c.Param("owner")
	repo = c.Param("repo")
	if owner == "" || repo == "" {
		return "", "", 0, fmt.Errorf("owner and repo are required")
	}
	number, err = strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		return "", "", 0, fmt.Errorf("invalid issue number")
	}
	return owner, repo, number, nil
}

// processSyncRepositoryDataReq binds the per-repository sync body.
func (h *handler) processSyncRepositoryDataReq(c *gin.Context) (syncRepositoryDataReq, error) {
	var req syncRepositoryDataReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.State == "" {
		req.State = "open"
	}
	return req, nil
}

// processListAuditLogsReq binds the audit listing query parameters.
func (h *handler) processListAuditLogsReq(c *gin.Context) (listAuditLogsReq, error) {
	var req listAuditLogsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
