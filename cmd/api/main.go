package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github-manager/config"
	_ "github-manager/docs" // Swagger docs
	"github-manager/internal/auth"
	"github-manager/internal/httpserver"
	"github-manager/internal/manager/repository/memory"
	"github-manager/internal/manager/usecase"
	"github-manager/internal/sync"
	"github-manager/internal/webhook"
	pkggithub "github-manager/pkg/github"
	"github-manager/pkg/log"
)

// @title       GitHub Manager API
// @description Administrative layer over the GitHub REST API with a local mirror, webhooks and scheduled sync.
// @version     1
// @host        localhost:8080
// @BasePath    /api/v1
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitHub Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "GitHub API: %s", cfg.GitHub.APIBaseURL)

	// 3. GitHub App authentication
	privateKey, err := cfg.ReadPrivateKey()
	if err != nil {
		logger.Error(ctx, "Failed to load GitHub App private key: ", err)
		return
	}

	tokens := pkggithub.NewTokenManager(pkggithub.Credentials{
		AppID:          cfg.GitHub.AppID,
		InstallationID: cfg.GitHub.InstallationID,
		PrivateKey:     privateKey,
		WebhookSecret:  cfg.Webhook.Secret,
	}, cfg.GitHub.APIBaseURL)

	ghClient := pkggithub.New(logger, cfg.GitHub.APIBaseURL, tokens)

	// 4. Manager domain
	store := memory.New()
	authorizer := auth.New()
	managerUC := usecase.New(logger, ghClient, store, authorizer, cfg.GitHub.Organization, cfg.Sync.PageSize)

	// 5. Background sync
	scheduler := sync.NewScheduler(managerUC, cfg.Sync, logger)
	go scheduler.Run(ctx)

	// 6. Webhook intake
	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled {
		if cfg.Webhook.Secret == "" {
			logger.Warn(ctx, "Webhook enabled without a secret, deliveries will be rejected")
		}
		webhookHandler = webhook.NewHandler(managerUC, scheduler, webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
	} else {
		logger.Warn(ctx, "Webhook disabled, mirror relies on scheduled sync only")
	}

	// 7. HTTP Server
	srvCfg := httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ManagerUC:   managerUC,
		APIKeys:     cfg.APIKeys,
	}
	if webhookHandler != nil {
		srvCfg.WebhookHandler = webhookHandler
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
