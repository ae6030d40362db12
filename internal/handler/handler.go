package handler

import (
	"net/http"
	"time"

	"github.com/MAdnan2003/PCOSync/internal/config"
	"github.com/MAdnan2003/PCOSync/internal/engine"
	"github.com/MAdnan2003/PCOSync/internal/services"
	"github.com/MAdnan2003/PCOSync/internal/utils"
)

// Services partagés par tous les handlers, initialisés au démarrage
var (
	appConfig  *config.Config
	appEngine  *engine.Engine
	tryOnSvc   *services.TryOnService
	weatherSvc *services.WeatherService
	predictSvc *services.PredictionService
	cloudSvc   *services.CloudinaryService
)

// Init prépare les services des handlers. Cloudinary est optionnel :
// sans credentials, l'upload d'avatar renvoie 503
func Init(cfg *config.Config, eng *engine.Engine) {
	appConfig = cfg
	appEngine = eng
	tryOnSvc = services.NewTryOnService(cfg)
	weatherSvc = services.NewWeatherService(cfg)
	predictSvc = services.NewPredictionService(cfg)

	if svc, err := services.NewCloudinaryService(cfg); err == nil {
		cloudSvc = svc
	} else {
		utils.LogInfo("cloudinary disabled: %v", err)
	}
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"message":   "PCOSync backend is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
