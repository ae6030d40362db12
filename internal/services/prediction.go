package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MAdnan2003/PCOSync/internal/config"
)

const predictionTimeout = 30 * time.Second

// PredictionService proxy vers le service ML de prédiction SOPK
type PredictionService struct {
	baseURL string
	client  *http.Client
}

// NewPredictionService construit le proxy
func NewPredictionService(cfg *config.Config) *PredictionService {
	return &PredictionService{
		baseURL: cfg.MLServiceURL,
		client:  &http.Client{Timeout: predictionTimeout},
	}
}

// Predict relaie le corps de la requête au service ML et renvoie sa réponse brute
func (s *PredictionService) Predict(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	if s.baseURL == "" {
		return nil, fmt.Errorf("ml service url is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ml service returned status %d", resp.StatusCode)
	}

	return json.RawMessage(raw), nil
}
