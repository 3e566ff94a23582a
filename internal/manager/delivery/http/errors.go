package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github-manager/internal/manager"
	pkggithub "github-manager/pkg/github"
	"github-manager/pkg/response"
)

// mapError translates domain and protocol errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, manager.ErrPermissionDenied):
		return response.NewHTTPError(http.StatusForbidden, 403, "permission denied")
	case errors.Is(err, manager.ErrRepositoryNotFound),
		errors.Is(err, manager.ErrPullRequestNotFound),
		errors.Is(err, manager.ErrReleaseNotFound),
		errors.Is(err, manager.ErrIssueNotFound):
		return response.NewHTTPError(http.StatusNotFound, 404, err.Error())
	}

	var rateErr *pkggithub.RateLimitError
	if errors.As(err, &rateErr) {
		return response.NewHTTPError(http.StatusTooManyRequests, 429,
			fmt.Sprintf("GitHub rate limit exceeded, resets at %s", rateErr.ResetAt.UTC().Format(time.RFC3339)))
	}

	var authErr *pkggithub.AuthError
	if errors.As(err, &authErr) {
		return response.NewHTTPError(http.StatusInternalServerError, 500, "GitHub App authentication failed")
	}

	var upErr *pkggithub.UpstreamError
	if errors.As(err, &upErr) {
		return response.NewHTTPError(http.StatusBadGateway, 502,
			fmt.Sprintf("GitHub API error: status %d", upErr.StatusCode))
	}

	return response.NewHTTPError(http.StatusInternalServerError, 500, response.DefaultErrorMessage)
}
