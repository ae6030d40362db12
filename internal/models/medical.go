package model

import "time"

// MedicalDetails profil médical d'une utilisatrice (un seul enregistrement par compte)
type MedicalDetails struct {
	ID            string    `json:"id,omitempty"`
	UserID        string    `json:"userId"`
	Weight        float64   `json:"weight"`
	Height        float64   `json:"height"`
	PCOSType      string    `json:"pcosType"`
	Symptoms      []string  `json:"symptoms"`
	ExerciseLevel string    `json:"exerciseLevel"` // Sedentary, Light, Moderate, Intense
	DietType      string    `json:"dietType"`
	StressLevel   string    `json:"stressLevel"` // Low, Medium, High
	SmokingStatus string    `json:"smokingStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
