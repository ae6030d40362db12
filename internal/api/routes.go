package api

import (
	"net/http"

	"github.com/MAdnan2003/PCOSync/internal/config"
	"github.com/MAdnan2003/PCOSync/internal/handler"
	"github.com/MAdnan2003/PCOSync/internal/logger"
	"github.com/MAdnan2003/PCOSync/internal/middleware"
	"github.com/MAdnan2003/PCOSync/internal/utils"
	"github.com/gorilla/mux"
)

func SetupRouter(cfg *config.Config) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	// Fichiers uploadés (photos d'essayage)
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))),
	).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Auth (routes publiques)
	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)

	// PCOS prediction (proxy public, comme l'API d'origine)
	api.HandleFunc("/pcos-prediction/predict", handler.PredictPCOS).Methods(http.MethodPost)

	// Dashboard stats
	api.HandleFunc("/stats", handler.GetDashboardStats).Methods(http.MethodGet)

	// Tout le reste exige une session valide
	authed := api.NewRoute().Subrouter()
	authed.Use(middleware.AuthMiddleware)

	authed.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/me", handler.Me).Methods(http.MethodGet)
	authed.HandleFunc("/auth/profile", handler.UpdateProfile).Methods(http.MethodPut)

	// Users
	authed.HandleFunc("/users/avatar", handler.UploadAvatar).Methods(http.MethodPost)
	authed.HandleFunc("/users/avatar", handler.DeleteAvatar).Methods(http.MethodDelete)

	// Medical details
	authed.HandleFunc("/medical-details", handler.SaveMedicalDetails).Methods(http.MethodPost)
	authed.HandleFunc("/medical-details", handler.GetMedicalDetails).Methods(http.MethodGet)

	// Skincare
	authed.HandleFunc("/skincare/profile", handler.SaveSkincareProfile).Methods(http.MethodPost)
	authed.HandleFunc("/skincare/routine", handler.GetSkincareRoutine).Methods(http.MethodGet)

	// Workout
	authed.HandleFunc("/workout/plan", handler.GetWorkoutPlan).Methods(http.MethodGet)
	authed.HandleFunc("/workout-progress", handler.AddWorkoutLog).Methods(http.MethodPost)
	authed.HandleFunc("/workout-progress", handler.GetWorkoutLogs).Methods(http.MethodGet)
	authed.HandleFunc("/workout-progress/stats", handler.GetWorkoutStats).Methods(http.MethodGet)

	// Diet
	authed.HandleFunc("/diet/generate", handler.GenerateDietPlan).Methods(http.MethodPost)
	authed.HandleFunc("/diet/plan", handler.GetDietPlan).Methods(http.MethodGet)
	authed.HandleFunc("/diet", handler.GetDietEntries).Methods(http.MethodGet)
	authed.HandleFunc("/diet", handler.AddDietEntry).Methods(http.MethodPost)

	// Virtual try-on (stats avant {id} pour éviter la collision de route)
	authed.HandleFunc("/virtual-tryon", handler.GenerateTryOn).Methods(http.MethodPost)
	authed.HandleFunc("/virtual-tryon", handler.GetTryOns).Methods(http.MethodGet)
	authed.HandleFunc("/virtual-tryon/stats", handler.GetTryOnStats).Methods(http.MethodGet)
	authed.HandleFunc("/virtual-tryon/{id}", handler.GetTryOnById).Methods(http.MethodGet)
	authed.HandleFunc("/virtual-tryon/{id}/favorite", handler.ToggleTryOnFavorite).Methods(http.MethodPatch)
	authed.HandleFunc("/virtual-tryon/{id}", handler.UpdateTryOn).Methods(http.MethodPut)
	authed.HandleFunc("/virtual-tryon/{id}", handler.DeleteTryOn).Methods(http.MethodDelete)

	// Body profile
	authed.HandleFunc("/body-profile", handler.SaveBodyProfile).Methods(http.MethodPost)
	authed.HandleFunc("/body-profile", handler.GetBodyProfile).Methods(http.MethodGet)
	authed.HandleFunc("/body-profile/analyze", handler.AnalyzeBodyShape).Methods(http.MethodPost)
	authed.HandleFunc("/body-profile/history", handler.GetMeasurementHistory).Methods(http.MethodGet)

	// Fashion
	authed.HandleFunc("/fashion/recommendations", handler.GetFashionRecommendations).Methods(http.MethodGet)
	authed.HandleFunc("/fashion/save", handler.SaveFashionRecommendation).Methods(http.MethodPost)

	// Environmental
	authed.HandleFunc("/environmental/current", handler.GetCurrentEnvironment).Methods(http.MethodGet)
	authed.HandleFunc("/environmental/historical", handler.GetEnvironmentalHistory).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("404 Not Found: %s %s", r.Method, r.URL.Path)
		utils.ErrorSimple(w, http.StatusNotFound, "Route not found")
	})

	return r
}
