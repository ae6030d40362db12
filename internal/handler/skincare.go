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
	"github.com/jackc/pgx/v5"
)

// SaveSkincareProfile valide via le moteur puis upsert par utilisatrice
func SaveSkincareProfile(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req model.SkincareProfile
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Validation en amont : mêmes règles que la résolution de routine
	if _, err := engine.NormalizeSkincare(req); err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			utils.ErrorSimple(w, http.StatusBadRequest, verr.Error())
			return
		}
		utils.Error(w, http.StatusBadRequest, "invalid skincare profile", err)
		return
	}

	ctx := r.Context()

	var p model.SkincareProfile
	var oilLevel, lifestyle, sunscreen *string
	err = database.DB.QueryRow(ctx,
		`INSERT INTO skincare_profiles(user_id, skin_type, acne_type, sensitivity,
			oil_level, hyperpigmentation, dark_spots, lifestyle, sunscreen_preference,
			created_at, updated_at)
		 VALUES($1, $2, $3, $4, NULLIF($5,''), $6, $7, NULLIF($8,''), NULLIF($9,''), NOW(), NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
			skin_type=$2, acne_type=$3, sensitivity=$4, oil_level=NULLIF($5,''),
			hyperpigmentation=$6, dark_spots=$7, lifestyle=NULLIF($8,''),
			sunscreen_preference=NULLIF($9,''), updated_at=NOW()
		 RETURNING id, user_id, skin_type, acne_type, sensitivity, oil_level,
			hyperpigmentation, dark_spots, lifestyle, sunscreen_preference,
			created_at, updated_at`,
		user.ID, req.SkinType, req.AcneType, req.Sensitivity,
		req.OilLevel, req.Hyperpigmentation, req.DarkSpots,
		req.Lifestyle, req.SunscreenPreference,
	).Scan(&p.ID, &p.UserID, &p.SkinType, &p.AcneType, &p.Sensitivity, &oilLevel,
		&p.Hyperpigmentation, &p.DarkSpots, &lifestyle, &sunscreen,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save skincare profile", err)
		return
	}

	if oilLevel != nil {
		p.OilLevel = *oilLevel
	}
	if lifestyle != nil {
		p.Lifestyle = *lifestyle
	}
	if sunscreen != nil {
		p.SunscreenPreference = *sunscreen
	}

	utils.Success(w, p)
}

// GetSkincareRoutine résout la routine depuis le profil skincare, sinon bascule
// sur la routine générique si un profil médical existe, sinon 404
func GetSkincareRoutine(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	ctx := r.Context()

	row := database.DB.QueryRow(ctx,
		`SELECT id, user_id, skin_type, acne_type, sensitivity, oil_level,
			hyperpigmentation, dark_spots, lifestyle, sunscreen_preference,
			created_at, updated_at
		 FROM skincare_profiles WHERE user_id=$1`,
		user.ID,
	)

	profile, err := scanner.ScanSkincareProfile(row)
	if err == nil {
		routine, rerr := appEngine.SkincareRoutine(*profile)
		if rerr != nil {
			utils.Error(w, http.StatusInternalServerError, "could not resolve routine", rerr)
			return
		}
		utils.SuccessMode(w, engine.ModeProfileBased, routine)
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		utils.Error(w, http.StatusInternalServerError, "could not load skincare profile", err)
		return
	}

	// Pas de profil skincare : routine générique si le profil médical existe
	var exists bool
	if err := database.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM medical_details WHERE user_id=$1)`,
		user.ID,
	).Scan(&exists); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not check medical details", err)
		return
	}

	if !exists {
		utils.ErrorSimple(w, http.StatusNotFound, "Medical details not found")
		return
	}

	utils.SuccessMode(w, engine.ModeMedicalFallback, appEngine.FallbackRoutine())
}
