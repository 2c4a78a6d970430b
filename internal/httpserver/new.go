package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/meeting-assistant-team/meeting-assistant/internal/integration"
	"github.com/meeting-assistant-team/meeting-assistant/internal/session"
	"github.com/meeting-assistant-team/meeting-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	sessionUC       session.UseCase
	integrationUC   integration.UseCase
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	SessionUC       session.UseCase
	IntegrationUC   integration.UseCase
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		sessionUC:       cfg.SessionUC,
		integrationUC:   cfg.IntegrationUC,
		rateLimitPerMin: cfg.RateLimitPerMin,
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
	if srv.sessionUC == nil {
		return errors.New("session usecase is required")
	}
	if srv.integrationUC == nil {
		return errors.New("integration usecase is required")
	}
	return nil
}
