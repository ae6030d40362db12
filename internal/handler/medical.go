package handler

import (
	"errors"
	"net/http"

	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/engine"
	"github.com/MAdnan2003/PCOSync/internal/middleware"
	model "github.com/MAdnan2003/PCOSync/internal/models"
	"github.com/MAdnan2003/PCOSync/internal/scanner"
	"github.com/MAdnan2003/PCOSync/internal/utils"
	"github.com/lib/pq"
)

type MedicalDetailsRequest struct {
	Weight        float64  `json:"weight"`
	Height        float64  `json:"height"`
	PCOSType      string   `json:"pcosType"`
	Symptoms      []string `json:"symptoms"`
	ExerciseLevel string   `json:"exerciseLevel"`
	DietType      string   `json:"dietType"`
	StressLevel   string   `json:"stressLevel"`
	SmokingStatus string   `json:"smokingStatus"`
}

// medicalDetails construit le modèle et valide les champs requis via le moteur
func (req MedicalDetailsRequest) medicalDetails() (model.MedicalDetails, error) {
	m := model.MedicalDetails{
		Weight:        req.Weight,
		Height:        req.Height,
		PCOSType:      req.PCOSType,
		Symptoms:      req.Symptoms,
		ExerciseLevel: req.ExerciseLevel,
		DietType:      req.DietType,
		StressLevel:   req.StressLevel,
		SmokingStatus: req.SmokingStatus,
	}
	if m.Symptoms == nil {
		m.Symptoms = []string{}
	}

	_, err := engine.NormalizeMedical(m)
	return m, err
}

// SaveMedicalDetails valide les six champs requis et upsert par utilisatrice
func SaveMedicalDetails(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req MedicalDetailsRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Validation en amont : mêmes règles que la résolution de plan
	medical, err := req.medicalDetails()
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			utils.ErrorSimple(w, http.StatusBadRequest, verr.Error())
			return
		}
		utils.Error(w, http.StatusBadRequest, "invalid medical details", err)
		return
	}

	ctx := r.Context()

	var m model.MedicalDetails
	err = database.DB.QueryRow(ctx,
		`INSERT INTO medical_details(user_id, weight, height, pcos_type, symptoms,
			exercise_level, diet_type, stress_level, smoking_status, created_at, updated_at)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
			weight=$2, height=$3, pcos_type=$4, symptoms=$5,
			exercise_level=$6, diet_type=$7, stress_level=$8, smoking_status=$9,
			updated_at=NOW()
		 RETURNING id, user_id, weight, height, pcos_type, symptoms,
			exercise_level, diet_type, stress_level, smoking_status, created_at, updated_at`,
		user.ID, medical.Weight, medical.Height, medical.PCOSType, pq.Array(medical.Symptoms),
		medical.ExerciseLevel, medical.DietType, medical.StressLevel, medical.SmokingStatus,
	).Scan(&m.ID, &m.UserID, &m.Weight, &m.Height, &m.PCOSType, pq.Array(&m.Symptoms),
		&m.ExerciseLevel, &m.DietType, &m.StressLevel, &m.SmokingStatus, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save medical details", err)
		return
	}

	utils.Created(w, m)
}

// GetMedicalDetails renvoie le profil médical de la session courante
func GetMedicalDetails(w http.ResponseWriter, r *http.Request) {
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

	m, err := scanner.ScanMedicalDetails(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "Medical details not found")
		return
	}

	utils.Success(w, m)
}
