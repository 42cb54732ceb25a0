package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dayplanner/config"
	"dayplanner/internal/planner"
	"dayplanner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	config      *config.Config

	// Planner domain
	plannerUC planner.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	// Planner domain
	PlannerUC planner.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.AppConfig,
		plannerUC:   cfg.PlannerUC,
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
	if srv.plannerUC == nil {
		return errors.New("planner usecase is required")
	}
	return nil
}
