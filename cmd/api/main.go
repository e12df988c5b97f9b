package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AnishD4/StudyTide/config"
	_ "github.com/AnishD4/StudyTide/docs" // Swagger docs
	"github.com/AnishD4/StudyTide/internal/httpserver"
	"github.com/AnishD4/StudyTide/pkg/gemini"
	"github.com/AnishD4/StudyTide/pkg/log"
	"github.com/AnishD4/StudyTide/pkg/postgres"
)

// @title       StudyTide API
// @description Academic study helper: AI effort estimation, study chat, flashcards, and study guides.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
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

	logger.Info(ctx, "Starting StudyTide API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	pool, err := postgres.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Postgres: %v", err)
	}
	defer pool.Close()
	logger.Info(ctx, "Postgres connected")

	// 4. Gemini client. A missing key is not fatal: the estimator degrades
	// to its deterministic fallback and helper actions fail visibly.
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY not set: estimation falls back, study helper actions will fail")
	}
	llm := gemini.New(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		APIURL:  cfg.Gemini.APIURL,
		Timeout: cfg.Gemini.Timeout,
	})
	logger.Infof(ctx, "Gemini model: %s", llm.Model())

	// 5. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		CORS:        cfg.CORS,
		Auth:        cfg.Auth,
		RateLimit:   cfg.RateLimit,
		PostgresDB:  pool,
		LLM:         llm,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
}
