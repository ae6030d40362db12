package handler

import (
	"net/http"
	"time"

	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/middleware"
	model "github.com/MAdnan2003/PCOSync/internal/models"
	"github.com/MAdnan2003/PCOSync/internal/scanner"
	"github.com/MAdnan2003/PCOSync/internal/utils"
)

type WorkoutLogRequest struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Type     string `json:"type"`
	Duration int    `json:"duration"`
}

// AddWorkoutLog upsert une séance par (utilisatrice, date, type)
func AddWorkoutLog(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req WorkoutLogRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Date == "" || req.Type == "" || req.Duration <= 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "Missing fields")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	var log model.WorkoutLog
	err = database.DB.QueryRow(r.Context(),
		`INSERT INTO workout_logs(user_id, date, type, duration, created_at, updated_at)
		 VALUES($1, $2, $3, $4, NOW(), NOW())
		 ON CONFLICT (user_id, date, type) DO UPDATE SET
			duration=$4, updated_at=NOW()
		 RETURNING id, user_id, date, type, duration, created_at, updated_at`,
		user.ID, date, req.Type, req.Duration,
	).Scan(&log.ID, &log.UserID, &log.Date, &log.Type, &log.Duration, &log.CreatedAt, &log.UpdatedAt)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not save workout log", err)
		return
	}

	utils.Success(w, log)
}

// GetWorkoutLogs renvoie les séances de la plus récente à la plus ancienne
func GetWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	rows, err := database.DB.Query(r.Context(),
		`SELECT id, user_id, date, type, duration, created_at, updated_at
		 FROM workout_logs WHERE user_id=$1 ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch workout logs", err)
		return
	}
	defer rows.Close()

	logs := []model.WorkoutLog{}
	for rows.Next() {
		log, err := scanner.ScanWorkoutLog(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not read workout log", err)
			return
		}
		logs = append(logs, *log)
	}

	utils.Success(w, logs)
}

// GetWorkoutStats totaux, série de jours consécutifs et badge
func GetWorkoutStats(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserIDFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	rows, err := database.DB.Query(r.Context(),
		`SELECT date, duration FROM workout_logs
		 WHERE user_id=$1 ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch workout logs", err)
		return
	}
	defer rows.Close()

	var dates []time.Time
	stats := model.WorkoutStats{}

	for rows.Next() {
		var date time.Time
		var duration int
		if err := rows.Scan(&date, &duration); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not read workout log", err)
			return
		}
		stats.TotalWorkouts++
		stats.TotalMinutes += duration
		dates = append(dates, date)
	}

	stats.Streak = computeStreak(dates, time.Now())
	stats.Badge = badgeFor(stats.Streak)

	utils.Success(w, stats)
}

// computeStreak compte les jours consécutifs en partant d'aujourd'hui.
// Les dates doivent être triées de la plus récente à la plus ancienne;
// un écart de plus d'un jour casse la série
func computeStreak(dates []time.Time, now time.Time) int {
	streak := 0
	current := now

	for _, date := range dates {
		diff := current.Sub(date).Hours() / 24
		if diff <= 1 {
			streak++
			current = date
		} else {
			break
		}
	}

	return streak
}

func badgeFor(streak int) string {
	switch {
	case streak >= 30:
		return "🔥 30-Day Warrior"
	case streak >= 14:
		return "💪 2-Week Strong"
	case streak >= 7:
		return "🌟 7-Day Streak"
	default:
		return "None"
	}
}
