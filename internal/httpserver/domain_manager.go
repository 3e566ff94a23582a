package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	managerHTTP "github-manager/internal/manager/delivery/http"
	"github-manager/internal/middleware"
)

// setupManagerDomain wires the manager domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Create Middleware:   mw := middleware.New(srv.l, keys)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupManagerDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := managerHTTP.New(srv.l, srv.managerUC)
	mw := middleware.New(srv.l, srv.apiKeys)

	managerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Manager domain registered")
	return nil
}
