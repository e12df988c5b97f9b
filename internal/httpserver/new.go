package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AnishD4/StudyTide/config"
	"github.com/AnishD4/StudyTide/pkg/gemini"
	"github.com/AnishD4/StudyTide/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	cors      config.CORSConfig
	auth      config.AuthConfig
	rateLimit config.RateLimitConfig

	postgresDB *pgxpool.Pool
	llm        gemini.IGemini
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	CORS      config.CORSConfig
	Auth      config.AuthConfig
	RateLimit config.RateLimitConfig

	PostgresDB *pgxpool.Pool
	LLM        gemini.IGemini
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cors:        cfg.CORS,
		auth:        cfg.Auth,
		rateLimit:   cfg.RateLimit,
		postgresDB:  cfg.PostgresDB,
		llm:         cfg.LLM,
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
	if srv.postgresDB == nil {
		return errors.New("postgres pool is required")
	}
	if srv.llm == nil {
		return errors.New("generation client is required")
	}
	return nil
}
