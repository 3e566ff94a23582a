package webhook

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gh "github.com/google/go-github/v55/github"

	pkgResponse "github-manager/pkg/response"
)

// supportedEvents is the closed set of event types this service processes.
// Anything else is acknowledged and ignored.
var supportedEvents = map[string]bool{
	"push":         true,
	"pull_request": true,
	"release":      true,
	"issues":       true,
	"repository":   true,
}

// HandleGitHubWebhook processes GitHub webhook events
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Read body
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// IP allowlist, when configured
	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "Webhook IP rejected: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	// Verify signature before anything else touches the payload
	signature := c.GetHeader("X-Hub-Signature-256")
	if err := h.security.ValidateSignature(body, signature); err != nil {
		h.l.Errorf(ctx, "Webhook signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	// Check rate limit
	if err := h.security.CheckRateLimit("github"); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	eventType := c.GetHeader("X-GitHub-Event")
	if !supportedEvents[eventType] {
		h.l.Infof(ctx, "Ignoring GitHub event type: %s", eventType)
		pkgResponse.OK(c, gin.H{"status": "ignored", "reason": "unsupported event type"})
		return
	}

	event, err := gh.ParseWebHook(eventType, body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse GitHub event: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Process in background, acknowledge immediately
	deliveryID := c.GetHeader("X-GitHub-Delivery")
	go h.processEventAsync(eventType, deliveryID, event)

	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// processEventAsync dispatches a parsed event in the background.
func (h *Handler) processEventAsync(eventType, deliveryID string, event any) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	h.l.Infof(ctx, "Processing webhook %s (delivery %s)", eventType, deliveryID)

	if err := h.dispatch(ctx, event); err != nil {
		h.l.Errorf(ctx, "Webhook %s (delivery %s) failed: %v", eventType, deliveryID, err)
		return
	}

	h.l.Infof(ctx, "Webhook %s (delivery %s) processed", eventType, deliveryID)
}
