package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/middleware"
	model "github.com/MAdnan2003/PCOSync/internal/models"
	"github.com/MAdnan2003/PCOSync/internal/scanner"
	"github.com/MAdnan2003/PCOSync/internal/services"
	"github.com/MAdnan2003/PCOSync/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lib/pq"
)

const (
	userPhotoDir   = "user-photos"
	outfitPhotoDir = "outfits"
)

var tryOnColumns = `id, user_id, user_photo_url, outfit_photo_url, result_photo_url,
	is_favorite, notes, tags, api_request_id, processing_status, error_message,
	processing_time_ms, api_response, created_at, updated_at`

// GenerateTryOn reçoit les deux photos, appelle le vendeur et stocke le résultat.
// Les fichiers temporaires sont supprimés sur tous les chemins d'échec
func GenerateTryOn(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := r.ParseMultipartForm(2 * appConfig.MaxFileSize); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "files too large or invalid form")
		return
	}

	userFile, userHeader, err := r.FormFile("userPhoto")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "Both user photo and outfit photo are required")
		return
	}
	defer userFile.Close()

	outfitFile, outfitHeader, err := r.FormFile("outfitPhoto")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "Both user photo and outfit photo are required")
		return
	}
	defer outfitFile.Close()

	for _, h := range []*multipart.FileHeader{userHeader, outfitHeader} {
		if !allowedFileType(appConfig.AllowedFileTypes, h.Header.Get("Content-Type")) {
			utils.ErrorSimple(w, http.StatusBadRequest, "only JPEG, PNG and WebP images are allowed")
			return
		}
	}

	userPath, err := saveUpload(userFile, userPhotoDir, userHeader.Filename)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not store user photo", err)
		return
	}

	outfitPath, err := saveUpload(outfitFile, outfitPhotoDir, outfitHeader.Filename)
	if err != nil {
		removeFiles(userPath)
		utils.Error(w, http.StatusInternalServerError, "could not store outfit photo", err)
		return
	}

	result, err := tryOnSvc.Process(r.Context(), userPath, outfitPath)
	if err != nil {
		removeFiles(userPath, outfitPath)

		var tryOnErr *services.TryOnError
		if errors.As(err, &tryOnErr) {
			if len(tryOnErr.Details) > 0 {
				utils.ErrorDetails(w, tryOnErr.StatusCode, tryOnErr.Message, tryOnErr.Details)
			} else {
				utils.ErrorSimple(w, tryOnErr.StatusCode, tryOnErr.Message)
			}
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to generate virtual try-on", err)
		return
	}

	processingTime := int(time.Since(start).Milliseconds())
	tags := splitTags(r.FormValue("tags"))

	row := database.DB.QueryRow(r.Context(),
		`INSERT INTO virtual_tryons(user_id, user_photo_url, outfit_photo_url,
			result_photo_url, is_favorite, notes, tags, api_request_id,
			processing_status, processing_time_ms, api_response, created_at, updated_at)
		 VALUES($1, $2, $3, $4, false, NULLIF($5,''), $6, NULLIF($7,''), $8, $9, $10, NOW(), NOW())
		 RETURNING `+tryOnColumns,
		user.ID, uploadURL(userPath), uploadURL(outfitPath),
		result.ResultImageURL, r.FormValue("notes"), pq.Array(tags),
		result.RequestID, model.TryOnStatusCompleted, processingTime, []byte(result.Raw),
	)

	tryOn, err := scanner.ScanVirtualTryOn(row)
	if err != nil {
		removeFiles(userPath, outfitPath)
		utils.Error(w, http.StatusInternalServerError, "could not save try-on", err)
		return
	}

	utils.Created(w, tryOn)
}

// GetTryOns galerie paginée avec filtres favoris et recherche notes/tags
func GetTryOns(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 12)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	where := "user_id=$1"
	args := []interface{}{user.ID}

	if fav := r.URL.Query().Get("isFavorite"); fav != "" {
		args = append(args, fav == "true")
		where += fmt.Sprintf(" AND is_favorite=$%d", len(args))
	}

	if search := r.URL.Query().Get("search"); search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (notes ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) t WHERE t ILIKE $%d))", n, n)
	}

	ctx := r.Context()

	var total int
	if err := database.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM virtual_tryons WHERE "+where, args...,
	).Scan(&total); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not count try-ons", err)
		return
	}

	offset := (page - 1) * limit
	args = append(args, limit, offset)
	query := fmt.Sprintf(
		"SELECT %s FROM virtual_tryons WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		tryOnColumns, where, len(args)-1, len(args),
	)

	rows, err := database.DB.Query(ctx, query, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch try-ons", err)
		return
	}
	defer rows.Close()

	tryOns := []model.VirtualTryOn{}
	for rows.Next() {
		t, err := scanner.ScanVirtualTryOn(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not read try-on", err)
			return
		}
		tryOns = append(tryOns, *t)
	}

	totalPages := (total + limit - 1) / limit
	utils.Success(w, map[string]interface{}{
		"tryOns": tryOns,
		"pagination": model.TryOnPagination{
			CurrentPage: page,
			TotalPages:  totalPages,
			Total:       total,
			HasMore:     offset+len(tryOns) < total,
		},
	})
}

// GetTryOnById renvoie un essayage appartenant à la session courante
func GetTryOnById(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	row := database.DB.QueryRow(r.Context(),
		"SELECT "+tryOnColumns+" FROM virtual_tryons WHERE id=$1 AND user_id=$2",
		mux.Vars(r)["id"], user.ID,
	)

	tryOn, err := scanner.ScanVirtualTryOn(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "Try-on not found")
		return
	}

	utils.Success(w, tryOn)
}

// ToggleTryOnFavorite inverse le statut favori
func ToggleTryOnFavorite(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	row := database.DB.QueryRow(r.Context(),
		`UPDATE virtual_tryons SET is_favorite = NOT is_favorite, updated_at=NOW()
		 WHERE id=$1 AND user_id=$2
		 RETURNING `+tryOnColumns,
		mux.Vars(r)["id"], user.ID,
	)

	tryOn, err := scanner.ScanVirtualTryOn(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "Try-on not found")
		return
	}

	utils.Success(w, tryOn)
}

// UpdateTryOn met à jour les notes et les tags
func UpdateTryOn(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req struct {
		Notes *string   `json:"notes,omitempty"`
		Tags  *[]string `json:"tags,omitempty"`
	}
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var tags interface{}
	if req.Tags != nil {
		tags = pq.Array(*req.Tags)
	}

	row := database.DB.QueryRow(r.Context(),
		`UPDATE virtual_tryons SET
			notes      = COALESCE($3, notes),
			tags       = COALESCE($4, tags),
			updated_at = NOW()
		 WHERE id=$1 AND user_id=$2
		 RETURNING `+tryOnColumns,
		mux.Vars(r)["id"], user.ID, req.Notes, tags,
	)

	tryOn, err := scanner.ScanVirtualTryOn(row)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "Try-on not found")
		return
	}

	utils.Success(w, tryOn)
}

// DeleteTryOn supprime la ligne et les fichiers associés
func DeleteTryOn(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var userPhotoURL, outfitPhotoURL string
	err = database.DB.QueryRow(r.Context(),
		`DELETE FROM virtual_tryons WHERE id=$1 AND user_id=$2
		 RETURNING user_photo_url, outfit_photo_url`,
		mux.Vars(r)["id"], user.ID,
	).Scan(&userPhotoURL, &outfitPhotoURL)
	if err != nil {
		utils.ErrorSimple(w, http.StatusNotFound, "Try-on not found")
		return
	}

	removeFiles(uploadPath(userPhotoURL), uploadPath(outfitPhotoURL))

	utils.Message(w, "Try-on deleted successfully")
}

// GetTryOnStats agrégats favoris/total de la session courante
func GetTryOnStats(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var stats model.TryOnStats
	err = database.DB.QueryRow(r.Context(),
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE is_favorite)
		 FROM virtual_tryons WHERE user_id=$1`,
		user.ID,
	).Scan(&stats.Total, &stats.Favorites)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch statistics", err)
		return
	}

	utils.Success(w, stats)
}

// saveUpload écrit le fichier reçu sous un nom unique et renvoie son chemin
func saveUpload(file multipart.File, subdir, originalName string) (string, error) {
	dir := filepath.Join(appConfig.UploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpg"
	}
	path := filepath.Join(dir, uuid.NewString()+ext)

	dest, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dest.Close()

	if _, err := io.Copy(dest, file); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}

// uploadURL chemin public servi sous /uploads
func uploadURL(path string) string {
	rel, err := filepath.Rel(appConfig.UploadDir, path)
	if err != nil {
		return "/uploads/" + filepath.Base(path)
	}
	return "/uploads/" + filepath.ToSlash(rel)
}

// uploadPath chemin disque d'une URL /uploads
func uploadPath(url string) string {
	return filepath.Join(appConfig.UploadDir, filepath.FromSlash(strings.TrimPrefix(url, "/uploads/")))
}

// removeFiles suppression best-effort
func removeFiles(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			utils.LogError("could not remove %s: %v", p, err)
		}
	}
}

func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
