package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"studypal/pkg/datemath"
	"studypal/pkg/log"
	"studypal/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sql.DB

	// Auth & throttling
	jwtManager      scope.Manager
	rateLimitPerMin int

	// Stats domain
	dates         *datemath.Parser
	upcomingLimit int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	JWTManager      scope.Manager
	RateLimitPerMin int

	Dates         *datemath.Parser
	UpcomingLimit int
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		db:              cfg.DB,
		jwtManager:      cfg.JWTManager,
		rateLimitPerMin: cfg.RateLimitPerMin,
		dates:           cfg.Dates,
		upcomingLimit:   cfg.UpcomingLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
