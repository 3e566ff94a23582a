package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github-manager/config"
	"github-manager/internal/manager"
	"github-manager/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Manager domain
	managerUC manager.UseCase
	apiKeys   []config.APIKeyConfig

	// GitHub webhook intake
	webhookHandler interface {
		HandleGitHubWebhook(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Manager domain
	ManagerUC manager.UseCase
	APIKeys   []config.APIKeyConfig

	// GitHub webhook intake (nil disables the route)
	WebhookHandler interface {
		HandleGitHubWebhook(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		managerUC:      cfg.ManagerUC,
		apiKeys:        cfg.APIKeys,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.managerUC == nil {
		return errors.New("manager use case is required")
	}
	return nil
}
