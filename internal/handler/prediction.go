package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MAdnan2003/PCOSync/internal/utils"
)

// PredictPCOS relaie le formulaire de dépistage au service ML
func PredictPCOS(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "could not read request body")
		return
	}

	if !json.Valid(payload) {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := predictSvc.Predict(r.Context(), payload)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "PCOS prediction failed", err)
		return
	}

	// Réponse du service ML relayée telle quelle
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(result)
}
