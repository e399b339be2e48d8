package main

import (
	"os"

	"github.com/devgrain/confide/backend/internal/router"
	"github.com/devgrain/confide/backend/pkg/config"
	"github.com/devgrain/confide/backend/pkg/db"
	"github.com/devgrain/confide/backend/pkg/logger"
	"github.com/devgrain/confide/backend/validators"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Init(cfg.LogLevel, cfg.LogFile)
	defer logger.Sync()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatal("failed to create upload directory", zap.Error(err))
	}

	// Initialize the database connection
	gdb, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close(gdb)

	if err := db.Migrate(gdb); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, gdb, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
