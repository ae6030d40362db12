package handler

import (
	"errors"
	"net/http"

	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/engine"
	"github.com/MAdnan2003/PCOSync/internal/middleware"
	"github.com/MAdnan2003/PCOSync/internal/scanner"
	"github.com/MAdnan2003/PCOSync/internal/utils"
)

// GetWorkoutPlan résout le plan d'entraînement depuis le profil médical
func GetWorkoutPlan(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	row := database.DB.QueryRow(r.Context(),
		`SELECT id, user_id, weight, height, pcos_type, symptoms,
			exercise_level, diet_type, stress_level, smoking_status, created_at, updated_at
		 FROM medical_details WHERE user_id=$1`,
		user.ID,
	)

	medical, err := scanner.ScanMedicalDetails(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "Medical details not found")
		return
	}

	plan, err := appEngine.WorkoutPlan(*medical)
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			utils.ErrorSimple(w, http.StatusBadRequest, verr.Error())
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not resolve workout plan", err)
		return
	}

	utils.Success(w, plan)
}
