package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"studypal/config"
	_ "studypal/docs" // Swagger docs
	"studypal/internal/httpserver"
	"studypal/pkg/datemath"
	"studypal/pkg/log"
	"studypal/pkg/scope"
	"studypal/pkg/sqlite"
)

// @title       StudyPal Analytics API
// @description Read-only study analytics: totals, weekly progress, streaks, upcoming deadlines and XP.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting StudyPal analytics API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage: schema is migrated once here, never per request.
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database %s: %v", cfg.Database.Path, err)
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Calendar basis
	dates, err := datemath.NewParser(cfg.Stats.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid stats timezone: %v", err)
	}
	logger.Infof(ctx, "Stats timezone: %s", dates.Location())

	// 5. Auth
	jwtManager, err := scope.New(cfg.Auth.JWTSecret)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize JWT manager: %v", err)
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              db,
		JWTManager:      jwtManager,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		Dates:           dates,
		UpcomingLimit:   cfg.Stats.UpcomingLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
