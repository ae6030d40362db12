package handler

import (
	"net/http"

	"github.com/MAdnan2003/PCOSync/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "PCOSync API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/api/auth/register", "description": "Inscription utilisatrice"},
				{"method": "POST", "path": "/api/auth/login", "description": "Connexion"},
				{"method": "POST", "path": "/api/auth/logout", "description": "Déconnexion"},
				{"method": "GET", "path": "/api/auth/me", "description": "Profil de la session courante"},
				{"method": "PUT", "path": "/api/auth/profile", "description": "Mettre à jour le profil"},
			},
			"users": []map[string]string{
				{"method": "POST", "path": "/api/users/avatar", "description": "Upload avatar (Cloudinary)"},
				{"method": "DELETE", "path": "/api/users/avatar", "description": "Supprimer l'avatar"},
			},
			"medical": []map[string]string{
				{"method": "POST", "path": "/api/medical-details", "description": "Sauvegarder le profil médical"},
				{"method": "GET", "path": "/api/medical-details", "description": "Récupérer le profil médical"},
			},
			"skincare": []map[string]string{
				{"method": "POST", "path": "/api/skincare/profile", "description": "Sauvegarder le profil de peau"},
				{"method": "GET", "path": "/api/skincare/routine", "description": "Routine résolue ou fallback médical"},
			},
			"workout": []map[string]string{
				{"method": "GET", "path": "/api/workout/plan", "description": "Plan d'entraînement depuis le profil médical"},
				{"method": "POST", "path": "/api/workout-progress", "description": "Enregistrer une séance"},
				{"method": "GET", "path": "/api/workout-progress", "description": "Historique des séances"},
				{"method": "GET", "path": "/api/workout-progress/stats", "description": "Totaux, série et badge"},
			},
			"diet": []map[string]string{
				{"method": "POST", "path": "/api/diet/generate", "description": "Générer un plan de 7 jours"},
				{"method": "GET", "path": "/api/diet/plan", "description": "Dernier plan généré"},
				{"method": "GET", "path": "/api/diet", "description": "Journal alimentaire (hérité)"},
				{"method": "POST", "path": "/api/diet", "description": "Ajouter une entrée au journal (hérité)"},
			},
			"virtualTryOn": []map[string]string{
				{"method": "POST", "path": "/api/virtual-tryon", "description": "Générer un essayage virtuel"},
				{"method": "GET", "path": "/api/virtual-tryon", "description": "Galerie paginée"},
				{"method": "GET", "path": "/api/virtual-tryon/stats", "description": "Statistiques"},
				{"method": "GET", "path": "/api/virtual-tryon/{id}", "description": "Un essayage"},
				{"method": "PATCH", "path": "/api/virtual-tryon/{id}/favorite", "description": "Basculer le favori"},
				{"method": "PUT", "path": "/api/virtual-tryon/{id}", "description": "Mettre à jour notes et tags"},
				{"method": "DELETE", "path": "/api/virtual-tryon/{id}", "description": "Supprimer (ligne + fichiers)"},
			},
			"bodyProfile": []map[string]string{
				{"method": "POST", "path": "/api/body-profile", "description": "Sauvegarder le profil morphologique"},
				{"method": "GET", "path": "/api/body-profile", "description": "Récupérer le profil morphologique"},
				{"method": "POST", "path": "/api/body-profile/analyze", "description": "Analyse de silhouette"},
				{"method": "GET", "path": "/api/body-profile/history", "description": "Historique des mensurations"},
			},
			"fashion": []map[string]string{
				{"method": "GET", "path": "/api/fashion/recommendations", "description": "Recommandations de style"},
				{"method": "POST", "path": "/api/fashion/save", "description": "Sauvegarder une recommandation"},
			},
			"prediction": []map[string]string{
				{"method": "POST", "path": "/api/pcos-prediction/predict", "description": "Prédiction SOPK (service ML)"},
			},
			"environmental": []map[string]string{
				{"method": "GET", "path": "/api/environmental/current", "description": "Relevé météo + air à la demande"},
				{"method": "GET", "path": "/api/environmental/historical", "description": "Historique des relevés"},
			},
			"stats": []map[string]string{
				{"method": "GET", "path": "/api/stats", "description": "Statistiques du tableau de bord"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check"},
			},
		},
	}

	utils.JSON(w, http.StatusOK, routes)
}
