package handler

import (
	"net/http"

	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/engine"
	"github.com/MAdnan2003/PCOSync/internal/middleware"
	model "github.com/MAdnan2003/PCOSync/internal/models"
	"github.com/MAdnan2003/PCOSync/internal/scanner"
	"github.com/MAdnan2003/PCOSync/internal/utils"
	"github.com/lib/pq"
)

// GetCurrentEnvironment relevé à la demande pour la position du compte
func GetCurrentEnvironment(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if user.Latitude == nil || user.Longitude == nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "no location stored on your profile")
		return
	}

	ctx := r.Context()

	weather, err := weatherSvc.GetCurrentWeather(ctx, *user.Latitude, *user.Longitude)
	if err != nil {
		utils.Error(w, http.StatusServiceUnavailable, "could not fetch weather", err)
		return
	}

	air, err := weatherSvc.GetAirQuality(ctx, *user.Latitude, *user.Longitude)
	if err != nil {
		utils.Error(w, http.StatusServiceUnavailable, "could not fetch air quality", err)
		return
	}

	var symptoms []string
	_ = database.DB.QueryRow(ctx,
		`SELECT symptoms FROM medical_details WHERE user_id=$1`,
		user.ID,
	).Scan(pq.Array(&symptoms))

	impact := appEngine.AnalyzeImpact(weather, air, symptoms)

	utils.Success(w, model.EnvironmentalData{
		UserID:         user.ID,
		Latitude:       *user.Latitude,
		Longitude:      *user.Longitude,
		Weather:        weather,
		AirQuality:     air,
		PollutionLevel: engine.PollutionLevel(air.AQI, air.PM25, air.PM10),
		Impact:         impact,
	})
}

// GetEnvironmentalHistory relevés stockés par le job de surveillance
func GetEnvironmentalHistory(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	limit := queryInt(r, "limit", 50)
	if limit < 1 || limit > 500 {
		limit = 50
	}

	rows, err := database.DB.Query(r.Context(),
		`SELECT id, user_id, latitude, longitude,
			city, country, temperature, humidity, condition,
			aqi, pm25, pm10, pollution_level, pcos_impact, created_at
		 FROM environmental_data WHERE user_id=$1
		 ORDER BY created_at DESC LIMIT $2`,
		user.ID, limit,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch environmental history", err)
		return
	}
	defer rows.Close()

	history := []model.EnvironmentalData{}
	for rows.Next() {
		d, err := scanner.ScanEnvironmentalData(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not read environmental data", err)
			return
		}
		history = append(history, *d)
	}

	utils.Success(w, history)
}
