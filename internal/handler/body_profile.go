package handler

import (
	"net/http"

	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/middleware"
	model "github.com/MAdnan2003/PCOSync/internal/models"
	"github.com/MAdnan2003/PCOSync/internal/scanner"
	"github.com/MAdnan2003/PCOSync/internal/utils"
	"github.com/lib/pq"
)

type BodyProfileRequest struct {
	Measurements model.Measurements `json:"measurements"`
	BodyShape    string             `json:"bodyShape"`
	Preferences  []string           `json:"preferences"`
}

// SaveBodyProfile upsert du profil morphologique
func SaveBodyProfile(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req BodyProfileRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Measurements.Bust <= 0 || req.Measurements.Waist <= 0 || req.Measurements.Hips <= 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "bust, waist and hips measurements are required")
		return
	}

	if req.Preferences == nil {
		req.Preferences = []string{}
	}

	row := database.DB.QueryRow(r.Context(),
		`INSERT INTO body_profiles(user_id, bust, waist, hips, body_shape, preferences, created_at, updated_at)
		 VALUES($1, $2, $3, $4, NULLIF($5,''), $6, NOW(), NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
			bust=$2, waist=$3, hips=$4, body_shape=NULLIF($5,''), preferences=$6, updated_at=NOW()
		 RETURNING id, user_id, bust, waist, hips, body_shape, preferences, created_at, updated_at`,
		user.ID, req.Measurements.Bust, req.Measurements.Waist, req.Measurements.Hips,
		req.BodyShape, pq.Array(req.Preferences),
	)

	profile, err := scanner.ScanBodyProfile(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save body profile", err)
		return
	}

	utils.Success(w, profile)
}

// GetBodyProfile renvoie le profil morphologique de la session courante
func GetBodyProfile(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	row := database.DB.QueryRow(r.Context(),
		`SELECT id, user_id, bust, waist, hips, body_shape, preferences, created_at, updated_at
		 FROM body_profiles WHERE user_id=$1`,
		user.ID,
	)

	profile, err := scanner.ScanBodyProfile(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "Body profile not found")
		return
	}

	utils.Success(w, profile)
}

// AnalyzeBodyShape analyse de silhouette, pour l'instant un écho structuré
func AnalyzeBodyShape(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.GetUserFromContext(r); err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req struct {
		Measurements model.Measurements `json:"measurements"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	utils.Success(w, map[string]interface{}{
		"measurements":    req.Measurements,
		"analysis":        "Body shape analysis placeholder",
		"recommendations": []string{},
	})
}

// GetMeasurementHistory dernières mensurations enregistrées
func GetMeasurementHistory(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	row := database.DB.QueryRow(r.Context(),
		`SELECT id, user_id, bust, waist, hips, body_shape, preferences, created_at, updated_at
		 FROM body_profiles WHERE user_id=$1`,
		user.ID,
	)

	profile, err := scanner.ScanBodyProfile(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "No measurement history found")
		return
	}

	utils.Success(w, map[string]interface{}{
		"measurements": profile.Measurements,
		"updatedAt":    profile.UpdatedAt,
	})
}
