package handler

import (
	"net/http"
	"strings"

	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/middleware"
	model "github.com/MAdnan2003/PCOSync/internal/models"
	"github.com/MAdnan2003/PCOSync/internal/scanner"
	"github.com/MAdnan2003/PCOSync/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      *int   `json:"age,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register crée le compte puis ouvre directement une session
func Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Email == "" || len(req.Password) < 6 {
		utils.ErrorSimple(w, http.StatusBadRequest, "name, email and a password of at least 6 characters are required")
		return
	}

	ctx := r.Context()

	var exists bool
	if err := database.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email=$1 AND deleted_at IS NULL)`,
		req.Email,
	).Scan(&exists); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not check email", err)
		return
	}
	if exists {
		utils.ErrorSimple(w, http.StatusConflict, "an account with this email already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	var user model.UserProfile
	err = database.DB.QueryRow(ctx,
		`INSERT INTO users(name, email, password_hash, age, city, country, alerts_enabled, join_date, created_at, updated_at)
		 VALUES($1, $2, $3, $4, NULLIF($5,''), NULLIF($6,''), true, NOW(), NOW(), NOW())
		 RETURNING id, name, email, COALESCE(age,0), COALESCE(city,''), COALESCE(country,''), alerts_enabled, join_date, created_at, updated_at`,
		req.Name, req.Email, string(hashed), req.Age, req.City, req.Country,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Age, &user.City, &user.Country,
		&user.AlertsEnabled, &user.JoinDate, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create account", err)
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Created(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := r.Context()
	var user model.UserProfile
	var hashedPassword string

	err := database.DB.QueryRow(ctx,
		`SELECT id, name, email, COALESCE(avatar,'') as avatar, COALESCE(age,0) as age,
		 COALESCE(city,'') as city, COALESCE(country,'') as country,
		 latitude, longitude, alerts_enabled,
		 join_date, created_at, updated_at, password_hash
		 FROM users WHERE email=$1 AND deleted_at IS NULL`,
		strings.TrimSpace(strings.ToLower(req.Email)),
	).Scan(&user.ID, &user.Name, &user.Email, &user.Avatar, &user.Age,
		&user.City, &user.Country, &user.Latitude, &user.Longitude, &user.AlertsEnabled,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt, &hashedPassword)

	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session", err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := middleware.GetTokenFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := utils.InvalidateSession(r.Context(), token); err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	utils.Message(w, "logged out")
}

// Me renvoie le profil de la session courante
func Me(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	utils.Success(w, user)
}

// UpdateProfile met à jour les champs fournis, les autres restent inchangés
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req model.UpdateProfileRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := r.Context()

	row := database.DB.QueryRow(ctx,
		`UPDATE users SET
			name           = COALESCE($2, name),
			age            = COALESCE($3, age),
			city           = COALESCE($4, city),
			country        = COALESCE($5, country),
			latitude       = COALESCE($6, latitude),
			longitude      = COALESCE($7, longitude),
			alerts_enabled = COALESCE($8, alerts_enabled),
			updated_at     = NOW(),
			updated_by     = $1
		 WHERE id=$1 AND deleted_at IS NULL
		 RETURNING id, name, email, avatar, age, city, country, latitude, longitude,
			alerts_enabled, join_date, created_at, updated_at`,
		user.ID, req.Name, req.Age, req.City, req.Country,
		req.Latitude, req.Longitude, req.AlertsEnabled,
	)

	updated, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update profile", err)
		return
	}

	utils.Success(w, updated)
}
