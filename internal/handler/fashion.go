package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/middleware"
	model "github.com/MAdnan2003/PCOSync/internal/models"
	"github.com/MAdnan2003/PCOSync/internal/utils"
)

// GetFashionRecommendations écho du profil morphologique et des derniers
// symptômes. La liste de recommandations reste vide tant que les règles
// de style ne sont pas définies
func GetFashionRecommendations(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	ctx := r.Context()

	var bodyShape sql.NullString
	err = database.DB.QueryRow(ctx,
		`SELECT body_shape FROM body_profiles WHERE user_id=$1`,
		user.ID,
	).Scan(&bodyShape)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "Please complete your body profile first")
		return
	}

	pcosType := "Unknown"
	var storedType sql.NullString
	_ = database.DB.QueryRow(ctx,
		`SELECT pcos_type FROM medical_details WHERE user_id=$1`,
		user.ID,
	).Scan(&storedType)
	if storedType.Valid && storedType.String != "" {
		pcosType = storedType.String
	}

	// Derniers symptômes relevés; valeurs par défaut sans historique
	bloating, energy := 0, 5
	_ = database.DB.QueryRow(ctx,
		`SELECT bloating, energy FROM symptom_logs
		 WHERE user_id=$1 ORDER BY created_at DESC LIMIT 1`,
		user.ID,
	).Scan(&bloating, &energy)

	utils.Success(w, map[string]interface{}{
		"bodyShape": utils.NullStringToString(bodyShape),
		"pcosType":  pcosType,
		"currentSymptoms": map[string]int{
			"bloating": bloating,
			"energy":   energy,
		},
		"recommendations": []string{},
	})
}

// SaveFashionRecommendation sauvegarde une recommandation côté client
func SaveFashionRecommendation(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req struct {
		BodyShape       string          `json:"bodyShape"`
		PCOSType        string          `json:"pcosType"`
		Recommendations json.RawMessage `json:"recommendations"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Recommendations) == 0 {
		req.Recommendations = json.RawMessage("[]")
	}

	var rec model.FashionRecommendation
	var recJSON []byte
	err = database.DB.QueryRow(r.Context(),
		`INSERT INTO fashion_recommendations(user_id, body_shape, pcos_type, recommendations, created_at)
		 VALUES($1, NULLIF($2,''), NULLIF($3,''), $4, NOW())
		 RETURNING id, user_id, COALESCE(body_shape,''), COALESCE(pcos_type,''), recommendations, created_at`,
		user.ID, req.BodyShape, req.PCOSType, []byte(req.Recommendations),
	).Scan(&rec.ID, &rec.UserID, &rec.BodyShape, &rec.PCOSType, &recJSON, &rec.CreatedAt)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save recommendation", err)
		return
	}
	rec.Recommendations = json.RawMessage(recJSON)

	utils.Created(w, rec)
}
