package model

import (
	"encoding/json"
	"time"
)

// Measurements mensurations en centimètres
type Measurements struct {
	Bust  float64 `json:"bust"`
	Waist float64 `json:"waist"`
	Hips  float64 `json:"hips"`
}

// BodyProfile profil morphologique (upsert par utilisatrice)
type BodyProfile struct {
	ID           string       `json:"id,omitempty"`
	UserID       string       `json:"userId"`
	Measurements Measurements `json:"measurements"`
	BodyShape    string       `json:"bodyShape"`
	Preferences  []string     `json:"preferences"`
	CreatedAt    time.Time    `json:"createdAt,omitempty"`
	UpdatedAt    time.Time    `json:"updatedAt,omitempty"`
}

// FashionRecommendation recommandation sauvegardée
type FashionRecommendation struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	BodyShape       string          `json:"bodyShape"`
	PCOSType        string          `json:"pcosType"`
	Recommendations json.RawMessage `json:"recommendations"`
	CreatedAt       time.Time       `json:"createdAt"`
}
