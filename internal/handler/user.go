package handler

import (
	"net/http"
	"strings"

	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/middleware"
	"github.com/MAdnan2003/PCOSync/internal/services"
	"github.com/MAdnan2003/PCOSync/internal/utils"
)

// UploadAvatar reçoit l'image, l'envoie sur Cloudinary et stocke l'URL
func UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if cloudSvc == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "avatar upload is not configured")
		return
	}

	if err := r.ParseMultipartForm(appConfig.MaxFileSize); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedFileType(appConfig.AllowedFileTypes, contentType) {
		utils.ErrorSimple(w, http.StatusBadRequest, "only JPEG, PNG and WebP images are allowed")
		return
	}

	ctx := r.Context()

	avatarURL, err := cloudSvc.UploadAvatar(ctx, file, user.ID, header.Filename)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not upload avatar", err)
		return
	}

	_, err = database.DB.Exec(ctx,
		`UPDATE users SET avatar=$1, updated_at=NOW(), updated_by=$2 WHERE id=$2 AND deleted_at IS NULL`,
		avatarURL, user.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update avatar", err)
		return
	}

	utils.Success(w, map[string]string{
		"avatar":    avatarURL,
		"thumbnail": cloudSvc.GetOptimizedURL(services.AvatarPublicID(user.ID), 150, 150),
	})
}

// DeleteAvatar supprime l'avatar sur Cloudinary et vide la colonne
func DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.ErrorSimple(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if cloudSvc == nil {
		utils.ErrorSimple(w, http.StatusServiceUnavailable, "avatar upload is not configured")
		return
	}

	if user.Avatar == "" {
		utils.ErrorSimple(w, http.StatusNotFound, "no avatar to delete")
		return
	}

	ctx := r.Context()

	if err := cloudSvc.DeleteImage(ctx, services.AvatarPublicID(user.ID)); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete avatar", err)
		return
	}

	_, err = database.DB.Exec(ctx,
		`UPDATE users SET avatar=NULL, updated_at=NOW(), updated_by=$1 WHERE id=$1 AND deleted_at IS NULL`,
		user.ID,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update avatar", err)
		return
	}

	utils.Message(w, "avatar deleted")
}

// allowedFileType compare le Content-Type exactement aux types de la liste
// autorisée (séparés par des virgules)
func allowedFileType(allowList, contentType string) bool {
	if contentType == "" {
		return false
	}
	for _, allowed := range strings.Split(allowList, ",") {
		if strings.TrimSpace(allowed) == contentType {
			return true
		}
	}
	return false
}
