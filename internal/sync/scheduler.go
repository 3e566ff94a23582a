package sync

import (
	"context"
	"time"

	"github-manager/config"
	"github-manager/internal/manager"
	"github-manager/internal/model"
	pkgLog "github-manager/pkg/log"
)

const (
	defaultPullRequestInterval = time.Hour
	defaultRepositoryInterval  = 24 * time.Hour
)

// systemScope is used by background jobs. It passes every authorization
// check and shows up as "system" in the audit log.
var systemScope = model.Scope{User: "system", Role: model.RoleAdmin}

// Scheduler periodically reconciles the mirror against GitHub. Webhooks
// keep the mirror fresh; the scheduler catches deliveries that were lost.
type Scheduler struct {
	managerUC manager.UseCase
	l         pkgLog.Logger

	prInterval   time.Duration
	repoInterval time.Duration
}

func NewScheduler(managerUC manager.UseCase, cfg config.SyncConfig, l pkgLog.Logger) *Scheduler {
	return &Scheduler{
		managerUC:    managerUC,
		l:            l,
		prInterval:   parseInterval(l, cfg.PullRequestInterval, defaultPullRequestInterval),
		repoInterval: parseInterval(l, cfg.RepositoryInterval, defaultRepositoryInterval),
	}
}

func parseInterval(l pkgLog.Logger, raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		l.Warnf(context.Background(), "sync: invalid interval %q, using %s", raw, fallback)
		return fallback
	}
	return d
}

// Run blocks until ctx is cancelled. An initial repository sync fires
// immediately so a fresh deployment has data before the first tick.
func (s *Scheduler) Run(ctx context.Context) {
	s.l.Infof(ctx, "sync: scheduler started (repositories every %s, pull requests every %s)", s.repoInterval, s.prInterval)

	s.syncRepositories(ctx)

	repoTicker := time.NewTicker(s.repoInterval)
	defer repoTicker.Stop()

	prTicker := time.NewTicker(s.prInterval)
	defer prTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.l.Infof(ctx, "sync: scheduler stopped")
			return
		case <-repoTicker.C:
			s.syncRepositories(ctx)
		case <-prTicker.C:
			s.syncRepositoryData(ctx)
		}
	}
}

func (s *Scheduler) syncRepositories(ctx context.Context) {
	count, err := s.managerUC.SyncAllRepositories(ctx, systemScope)
	if err != nil {
		s.l.Errorf(ctx, "sync: repository sync failed after %d records: %v", count, err)
		return
	}
	s.l.Infof(ctx, "sync: mirrored %d repositories", count)
}

// syncRepositoryData refreshes pull requests, releases and issues for every
// mirrored repository. A failing repository is logged and skipped.
func (s *Scheduler) syncRepositoryData(ctx context.Context) {
	repos, err := s.managerUC.ListRepositories(ctx, systemScope, manager.ListRepositoriesInput{})
	if err != nil {
		s.l.Errorf(ctx, "sync: listing mirrored repositories failed: %v", err)
		return
	}

	for _, repo := range repos.Repositories {
		if ctx.Err() != nil {
			return
		}
		// Periodic passes only refresh open items; closed ones arrive via
		// webhooks and the initial backfill.
		s.syncOne(ctx, repo.FullName, "open")
	}
}

func (s *Scheduler) syncOne(ctx context.Context, fullName, state string) {
	if _, err := s.managerUC.SyncRepositoryPullRequests(ctx, systemScope, fullName, state); err != nil {
		s.l.Warnf(ctx, "sync: pull requests for %s: %v", fullName, err)
	}
	if _, err := s.managerUC.SyncRepositoryReleases(ctx, systemScope, fullName); err != nil {
		s.l.Warnf(ctx, "sync: releases for %s: %v", fullName, err)
	}
	if _, err := s.managerUC.SyncRepositoryIssues(ctx, systemScope, fullName, state); err != nil {
		s.l.Warnf(ctx, "sync: issues for %s: %v", fullName, err)
	}
}

// EnqueueRepositoryData backfills one repository in the background. Used
// right after a repository is created or first mirrored, so its pull
// requests, releases and issues appear without waiting for the next tick.
func (s *Scheduler) EnqueueRepositoryData(fullName string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		s.syncOne(ctx, fullName, "all")
	}()
}
