package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github-manager/internal/middleware"
	"github-manager/pkg/response"
)

// GetOrganization godoc
// @Summary     Get an organization
// @Description Fetches an organization profile from GitHub.
// @Tags        Organizations
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       org path string true "Organization login"
// @Success     200 {object} organizationResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     502 {object} response.Resp "GitHub error"
// @Router      /api/v1/orgs/{org} [GET]
func (h *handler) GetOrganization(c *gin.Context) {
	ctx := c.Request.Context()

	org := c.Param("org")
	if org == "" {
		response.Error(c, fmt.Errorf("org is required"), nil)
		return
	}

	output, err := h.uc.GetOrganization(ctx, middleware.ScopeFromContext(c), org)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetOrganization: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newOrganizationResp(output.Organization))
}

// ListAuditLogs godoc
// @Summary     List audit entries
// @Description Returns a paginated list of audit entries, newest first.
// @Tags        Audit
// @Produce     json
// @Param       X-API-Key header string true "API key"
// @Param       action query string false "Filter by action"
// @Param       user   query string false "Filter by user"
// @Param       limit  query int    false "Page size (default: 50)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listAuditLogsResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/v1/audit [GET]
func (h *handler) ListAuditLogs(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListAuditLogsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListAuditLogs(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListAuditLogs: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListAuditLogsResp(output))
}
