package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/middleware"
	model "github.com/MAdnan2003/PCOSync/internal/models"
	"github.com/MAdnan2003/PCOSync/internal/scanner"
	"github.com/MAdnan2003/PCOSync/internal/utils"
)

type GeneratePlanRequest struct {
	Preference  string   `json:"preference,omitempty"`
	MealsPerDay string   `json:"mealsPerDay,omitempty"`
	Allergies   []string `json:"allergies,omitempty"`
	Goals       []string `json:"goals,omitempty"`
}

// GenerateDietPlan tire une nouvelle semaine du pool et la stocke.
// Chaque appel crée un nouveau plan, jamais de mise à jour
func GenerateDietPlan(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	// Corps vide accepté : les préférences sont optionnelles
	var req GeneratePlanRequest
	if err := utils.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	week := appEngine.GenerateWeek()

	prefs := model.PlanPreferences{
		DietType:    req.Preference,
		MealsPerDay: req.MealsPerDay,
		Allergies:   req.Allergies,
		HealthGoals: req.Goals,
	}

	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not encode preferences", err)
		return
	}
	weekJSON, err := json.Marshal(week)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not encode plan", err)
		return
	}

	var planID string
	var createdAt time.Time
	err = database.DB.QueryRow(r.Context(),
		`INSERT INTO generated_plans(user_id, preferences, week, created_at)
		 VALUES($1, $2, $3, NOW())
		 RETURNING id, created_at`,
		user.ID, prefsJSON, weekJSON,
	).Scan(&planID, &createdAt)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save diet plan", err)
		return
	}

	utils.Success(w, model.GeneratedPlan{
		ID:          planID,
		UserID:      user.ID,
		Preferences: prefs,
		Week:        week,
		CreatedAt:   createdAt,
	})
}

// GetDietPlan renvoie le dernier plan généré
func GetDietPlan(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	row := database.DB.QueryRow(r.Context(),
		`SELECT id, user_id, preferences, week, created_at
		 FROM generated_plans WHERE user_id=$1
		 ORDER BY created_at DESC LIMIT 1`,
		user.ID,
	)

	plan, err := scanner.ScanGeneratedPlan(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "No plan found")
		return
	}

	utils.Success(w, plan)
}

// GetDietEntries journal alimentaire (module hérité)
func GetDietEntries(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	rows, err := database.DB.Query(r.Context(),
		`SELECT id, user_id, meal_type, description, calories, entry_date
		 FROM diet_entries WHERE user_id=$1 ORDER BY entry_date DESC`,
		user.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch diet entries", err)
		return
	}
	defer rows.Close()

	entries := []model.DietEntry{}
	for rows.Next() {
		entry, err := scanner.ScanDietEntry(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not read diet entry", err)
			return
		}
		entries = append(entries, *entry)
	}

	utils.Success(w, entries)
}

// AddDietEntry ajoute une entrée au journal alimentaire (module hérité)
func AddDietEntry(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req struct {
		MealType    string `json:"mealType"`
		Description string `json:"description"`
		Calories    int    `json:"calories"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.MealType == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "mealType is required")
		return
	}

	var entry model.DietEntry
	err = database.DB.QueryRow(r.Context(),
		`INSERT INTO diet_entries(user_id, meal_type, description, calories, entry_date)
		 VALUES($1, $2, NULLIF($3,''), $4, NOW())
		 RETURNING id, user_id, meal_type, COALESCE(description,''), calories, entry_date`,
		user.ID, req.MealType, req.Description, req.Calories,
	).Scan(&entry.ID, &entry.UserID, &entry.MealType, &entry.Description, &entry.Calories, &entry.EntryDate)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not add diet entry", err)
		return
	}

	utils.Created(w, entry)
}
