package webhook

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v55/github"
)

// dispatch routes a typed event to the matching mirror operation. Every
// handler is idempotent: GitHub redelivers webhooks, and replaying a
// delivery must leave the mirror unchanged.
func (h *Handler) dispatch(ctx context.Context, event any) error {
	switch event := event.(type) {
	case *gh.PushEvent:
		return h.handlePush(ctx, event)
	case *gh.PullRequestEvent:
		return h.handlePullRequest(ctx, event)
	case *gh.ReleaseEvent:
		return h.handleRelease(ctx, event)
	case *gh.IssuesEvent:
		return h.handleIssues(ctx, event)
	case *gh.RepositoryEvent:
		return h.handleRepository(ctx, event)
	default:
		return fmt.Errorf("unexpected event type %T", event)
	}
}

// handlePush logs the push. Pushes do not change any mirrored record; this
// is the hook point for CI/CD triggers.
func (h *Handler) handlePush(ctx context.Context, event *gh.PushEvent) error {
	h.l.Infof(ctx, "Push to %s on %s by %s (%d commits)",
		event.GetRepo().GetFullName(), event.GetRef(), event.GetSender().GetLogin(), len(event.Commits))
	return nil
}

func (h *Handler) handlePullRequest(ctx context.Context, event *gh.PullRequestEvent) error {
	switch event.GetAction() {
	case "opened", "closed", "reopened", "synchronize", "edited":
	default:
		h.l.Infof(ctx, "Ignoring pull_request action %q", event.GetAction())
		return nil
	}

	repo := event.GetRepo().GetFullName()
	record, err := h.managerUC.SyncPullRequest(ctx, repo, event.GetPullRequest())
	if err != nil {
		return fmt.Errorf("sync pull request %s#%d: %w", repo, event.GetNumber(), err)
	}

	h.l.Infof(ctx, "Synced %s (%s)", record.ID, record.State)
	return nil
}

func (h *Handler) handleRelease(ctx context.Context, event *gh.ReleaseEvent) error {
	repo := event.GetRepo().GetFullName()
	tag := event.GetRelease().GetTagName()

	switch event.GetAction() {
	case "deleted":
		if err := h.managerUC.DropRelease(ctx, repo, tag); err != nil {
			return fmt.Errorf("drop release %s@%s: %w", repo, tag, err)
		}
		h.l.Infof(ctx, "Dropped release %s@%s", repo, tag)
		return nil
	case "published", "created", "edited", "prereleased", "released":
		record, err := h.managerUC.SyncRelease(ctx, repo, event.GetRelease())
		if err != nil {
			return fmt.Errorf("sync release %s@%s: %w", repo, tag, err)
		}
		h.l.Infof(ctx, "Synced %s", record.ID)
		return nil
	default:
		h.l.Infof(ctx, "Ignoring release action %q", event.GetAction())
		return nil
	}
}

func (h *Handler) handleIssues(ctx context.Context, event *gh.IssuesEvent) error {
	switch event.GetAction() {
	case "opened", "closed", "reopened", "edited":
	default:
		h.l.Infof(ctx, "Ignoring issues action %q", event.GetAction())
		return nil
	}

	// GitHub delivers issue events for pull requests too; SyncIssue skips
	// those payloads.
	repo := event.GetRepo().GetFullName()
	record, err := h.managerUC.SyncIssue(ctx, repo, event.GetIssue())
	if err != nil {
		return fmt.Errorf("sync issue %s#%d: %w", repo, event.GetIssue().GetNumber(), err)
	}
	if record.ID != "" {
		h.l.Infof(ctx, "Synced %s (%s)", record.ID, record.State)
	}
	return nil
}

func (h *Handler) handleRepository(ctx context.Context, event *gh.RepositoryEvent) error {
	repo := event.GetRepo().GetFullName()

	switch event.GetAction() {
	case "deleted":
		if err := h.managerUC.DropRepository(ctx, repo); err != nil {
			return fmt.Errorf("drop repository %s: %w", repo, err)
		}
		h.l.Infof(ctx, "Dropped repository %s", repo)
		return nil
	case "created", "edited", "renamed", "transferred", "publicized", "privatized":
		record, err := h.managerUC.SyncRepository(ctx, event.GetRepo())
		if err != nil {
			return fmt.Errorf("sync repository %s: %w", repo, err)
		}
		h.l.Infof(ctx, "Synced repository %s", record.FullName)
		if event.GetAction() == "created" && h.backfill != nil {
			h.backfill.EnqueueRepositoryData(record.FullName)
		}
		return nil
	default:
		h.l.Infof(ctx, "Ignoring repository action %q", event.GetAction())
		return nil
	}
}
