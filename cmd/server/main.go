package main

import (
	"net/http"
	"os"

	"github.com/MAdnan2003/PCOSync/internal/api"
	"github.com/MAdnan2003/PCOSync/internal/config"
	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/engine"
	"github.com/MAdnan2003/PCOSync/internal/handler"
	"github.com/MAdnan2003/PCOSync/internal/jobs"
	"github.com/MAdnan2003/PCOSync/internal/logger"
	"github.com/MAdnan2003/PCOSync/internal/middleware"
	"github.com/MAdnan2003/PCOSync/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Rule engine + handler services
	eng := engine.Default()
	handler.Init(cfg, eng)

	// Environmental monitoring job
	monitor := jobs.NewMonitor(cfg, services.NewWeatherService(cfg), eng)
	logger.Info("Environmental monitoring schedule: %s", cfg.MonitorCronSpec)
	if err := monitor.Start(); err != nil {
		logger.Error("Could not start environmental monitoring: %v", err)
		os.Exit(1)
	}
	defer monitor.Stop()

	// Routes + CORS
	router := api.SetupRouter(cfg)
	srv := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on %s (port %s)", cfg.URL, cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
