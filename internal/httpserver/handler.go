package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	integrationHTTP "github.com/meeting-assistant-team/meeting-assistant/internal/integration/delivery/http"
	"github.com/meeting-assistant-team/meeting-assistant/internal/middleware"
	"github.com/meeting-assistant-team/meeting-assistant/internal/model"
	sessionHTTP "github.com/meeting-assistant-team/meeting-assistant/internal/session/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	mw := middleware.New(srv.l, srv.rateLimitPerMin)

	h := sessionHTTP.New(srv.l, srv.sessionUC)
	sessionHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Session domain registered under /api/v1/sessions")

	ih := integrationHTTP.New(srv.l, srv.integrationUC)
	integrationHTTP.RegisterRoutes(api, ih, mw)
	srv.l.Infof(ctx, "Integration domain registered under /api/v1")

	return nil
}
