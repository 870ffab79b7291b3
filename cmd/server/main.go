package main

import (
	"net/http"
	"os"

	"github.com/K4ZED/NdangFit/internal/api"
	"github.com/K4ZED/NdangFit/internal/config"
	"github.com/K4ZED/NdangFit/internal/database"
	"github.com/K4ZED/NdangFit/internal/handler"
	"github.com/K4ZED/NdangFit/internal/logger"
	"github.com/K4ZED/NdangFit/internal/middleware"
	"github.com/K4ZED/NdangFit/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to the database and apply migrations
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Error("Migrations failed: %v", err)
		os.Exit(1)
	}

	// Initialize routes
	svc := service.New(db, cfg.BcryptCost)
	router := api.SetupRouter(handler.New(svc))

	// Wrap router with CORS middleware
	srv := middleware.CORS(cfg.AllowedOrigins)(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
