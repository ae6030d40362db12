package model

import "time"

// SkincareProfile profil de peau (upsert par utilisatrice)
type SkincareProfile struct {
	ID                  string    `json:"id,omitempty"`
	UserID              string    `json:"userId"`
	SkinType            string    `json:"skinType"` // Oily, Dry, Combination, Normal, Sensitive
	AcneType            string    `json:"acneType"` // Hormonal, Inflammatory, Comedonal, Cystic, None
	Sensitivity         string    `json:"sensitivity"`
	OilLevel            string    `json:"oilLevel,omitempty"`
	Hyperpigmentation   bool      `json:"hyperpigmentation"`
	DarkSpots           bool      `json:"darkSpots"`
	Lifestyle           string    `json:"lifestyle,omitempty"`
	SunscreenPreference string    `json:"sunscreenPreference,omitempty"`
	CreatedAt           time.Time `json:"createdAt,omitempty"`
	UpdatedAt           time.Time `json:"updatedAt,omitempty"`
}
