package model

import "time"

// WorkoutLog une séance enregistrée (upsert par user/date/type)
type WorkoutLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	Type      string    `json:"type"`     // yoga, strength, cardio
	Duration  int       `json:"duration"` // minutes
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WorkoutStats totaux, série en cours et badge associé
type WorkoutStats struct {
	TotalWorkouts int    `json:"totalWorkouts"`
	TotalMinutes  int    `json:"totalMinutes"`
	Streak        int    `json:"streak"`
	Badge         string `json:"badge"`
}
