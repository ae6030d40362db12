package model

import (
	"encoding/json"
	"time"
)

// Statuts de traitement d'un essayage virtuel
const (
	TryOnStatusPending    = "pending"
	TryOnStatusProcessing = "processing"
	TryOnStatusCompleted  = "completed"
	TryOnStatusFailed     = "failed"
)

// VirtualTryOn un essayage virtuel généré via l'API AiPhotocraft
type VirtualTryOn struct {
	ID               string          `json:"id"`
	UserID           string          `json:"userId"`
	UserPhotoURL     string          `json:"userPhotoUrl"`
	OutfitPhotoURL   string          `json:"outfitPhotoUrl"`
	ResultPhotoURL   string          `json:"resultPhotoUrl"`
	IsFavorite       bool            `json:"isFavorite"`
	Notes            string          `json:"notes"`
	Tags             []string        `json:"tags"`
	APIRequestID     string          `json:"apiRequestId,omitempty"`
	ProcessingStatus string          `json:"processingStatus"`
	ErrorMessage     string          `json:"errorMessage,omitempty"`
	ProcessingTimeMs int             `json:"processingTime"`
	APIResponse      json.RawMessage `json:"apiResponse,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// TryOnPagination métadonnées de pagination pour la galerie
type TryOnPagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	Total       int  `json:"total"`
	HasMore     bool `json:"hasMore"`
}

// TryOnStats agrégats par utilisatrice
type TryOnStats struct {
	Total     int `json:"total"`
	Favorites int `json:"favorites"`
}
