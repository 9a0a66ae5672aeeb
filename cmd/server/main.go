package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/placementcell/backend/internal/router"
	"github.com/placementcell/backend/pkg/config"
	"github.com/placementcell/backend/pkg/logger"
	"github.com/placementcell/backend/validators"
)

func main() {
	// Initialize database connections (also loads .env)
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	cfg := config.Load()

	zlog := logger.New(cfg.LogLevel, cfg.LogPath)
	defer zlog.Sync()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, cfg, db, zlog); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
