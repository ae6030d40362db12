package model

import (
	"time"
)

// DateFields contient les champs d'audit standard pour toutes les entités
type DateFields struct {
	CreatedBy *string   `json:"createdBy,omitempty"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
	DeletedAt time.Time `json:"deletedAt,omitempty"`
	DeletedBy *string   `json:"deletedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type UserProfile struct {
	ID            string    `json:"id,omitempty"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Avatar        string    `json:"avatar,omitempty"`
	Age           int       `json:"age,omitempty"`
	City          string    `json:"city,omitempty"`
	Country       string    `json:"country,omitempty"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	AlertsEnabled bool      `json:"alertsEnabled"`
	JoinDate      time.Time `json:"joinDate,omitempty"`
	DateFields
}

// UpdateProfileRequest corps de PUT /auth/profile
type UpdateProfileRequest struct {
	Name          *string  `json:"name,omitempty"`
	Age           *int     `json:"age,omitempty"`
	City          *string  `json:"city,omitempty"`
	Country       *string  `json:"country,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	AlertsEnabled *bool    `json:"alertsEnabled,omitempty"`
}
