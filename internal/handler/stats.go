package handler

import (
	"fmt"
	"net/http"

	"github.com/MAdnan2003/PCOSync/internal/database"
	"github.com/MAdnan2003/PCOSync/internal/utils"
)

// GetDashboardStats compteurs globaux et taux d'engagement
func GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var totalUsers, activeContent, openReports int

	if err := database.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`,
	).Scan(&totalUsers); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to load dashboard stats", err)
		return
	}

	// Contenu actif = essayages + plans générés + séances enregistrées
	if err := database.DB.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM virtual_tryons) +
			(SELECT COUNT(*) FROM generated_plans) +
			(SELECT COUNT(*) FROM workout_logs)`,
	).Scan(&activeContent); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to load dashboard stats", err)
		return
	}

	if err := database.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM virtual_tryons WHERE processing_status='failed'`,
	).Scan(&openReports); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to load dashboard stats", err)
		return
	}

	engagementRate := "0"
	if totalUsers > 0 {
		engagementRate = fmt.Sprintf("%.1f", float64(activeContent)/float64(totalUsers)*100)
	}

	utils.Success(w, map[string]interface{}{
		"totalUsers":     totalUsers,
		"activeContent":  activeContent,
		"openReports":    openReports,
		"engagementRate": engagementRate,
	})
}
