package http

import (
	"github.com/gin-gonic/gin"

	"github-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route requires an API key; per-action authorization happens in the
// use cases.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	repositories := rg.Group("/repositories")
	{
		repositories.POST("", mw.Auth(), h.CreateRepository)
		repositories.GET("", mw.Auth(), h.ListRepositories)
		repositories.GET("/stats", mw.Auth(), h.RepositoryStats)
		repositories.POST("/sync", mw.Auth(), h.SyncRepositories)
		repositories.DELETE("/:owner/:repo", mw.Auth(), h.DeleteRepository)
	}

	pulls := rg.Group("/pulls")
	{
		pulls.POST("", mw.Auth(), h.CreatePullRequest)
		pulls.GET("/stats", mw.Auth(), h.PullRequestStats)
		pulls.POST("/sync", mw.Auth(), h.SyncPullRequests)
		pulls.PUT("/:owner/:repo/:number/merge", mw.Auth(), h.MergePullRequest)
		pulls.PUT("/:owner/:repo/:number/close", mw.Auth(), h.ClosePullRequest)
	}

	branches := rg.Group("/branches")
	{
		branches.POST("", mw.Auth(), h.CreateBranch)
		branches.GET("/:owner/:repo", mw.Auth(), h.ListBranches)
		branches.DELETE("/:owner/:repo/:branch", mw.Auth(), h.DeleteBranch)
	}

	releases := rg.Group("/releases")
	{
		releases.POST("", mw.Auth(), h.CreateRelease)
		releases.GET("/stats", mw.Auth(), h.ReleaseStats)
		releases.POST("/sync", mw.Auth(), h.SyncReleases)
		releases.DELETE("/:owner/:repo/:id", mw.Auth(), h.DeleteRelease)
	}

	issues := rg.Group("/issues")
	{
		issues.POST("", mw.Auth(), h.CreateIssue)
		issues.GET("/stats", mw.Auth(), h.IssueStats)
		issues.POST("/sync", mw.Auth(), h.SyncIssues)
		issues.PUT("/:owner/:repo/:number/close", mw.Auth(), h.CloseIssue)
	}

	rg.GET("/orgs/:org", mw.Auth(), h.GetOrganization)
	rg.GET("/audit", mw.Auth(), h.ListAuditLogs)
}
