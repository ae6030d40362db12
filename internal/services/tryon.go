package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/MAdnan2003/PCOSync/internal/config"
)

// Paramètres fixes envoyés au vendeur
const (
	tryOnCategory = "upper_body"
	tryOnQuality  = "high"
	tryOnTimeout  = 2 * time.Minute
)

// TryOnError erreur du vendeur avec le statut HTTP à propager au client
type TryOnError struct {
	StatusCode int
	Message    string
	Details    json.RawMessage
}

func (e *TryOnError) Error() string {
	return fmt.Sprintf("tryon api [%d]: %s", e.StatusCode, e.Message)
}

// TryOnResult réponse parsée du vendeur
type TryOnResult struct {
	ResultImageURL string
	RequestID      string
	ProcessingTime int
	Raw            json.RawMessage
}

// TryOnService client de l'API d'essayage virtuel AiPhotocraft
type TryOnService struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewTryOnService construit le client. L'URL et la clé viennent de la config
func NewTryOnService(cfg *config.Config) *TryOnService {
	return &TryOnService{
		apiURL: cfg.TryOnAPIURL,
		apiKey: cfg.TryOnAPIKey,
		client: &http.Client{Timeout: tryOnTimeout},
	}
}

// tryOnResponse forme tolérante : les champs varient selon la version de l'API
type tryOnResponse struct {
	ResultURL string `json:"result_url"`
	OutputURL string `json:"output_url"`
	ImageURL  string `json:"image_url"`
	Result    struct {
		URL string `json:"url"`
	} `json:"result"`
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	RequestID      string `json:"request_id"`
	ID             string `json:"id"`
	JobID          string `json:"job_id"`
	TaskID         string `json:"task_id"`
	ProcessingTime int    `json:"processing_time"`
	Message        string `json:"message"`
	Error          string `json:"error"`
}

func (r *tryOnResponse) resultURL() string {
	for _, u := range []string{r.ResultURL, r.OutputURL, r.ImageURL, r.Result.URL, r.Data.URL} {
		if u != "" {
			return u
		}
	}
	return ""
}

func (r *tryOnResponse) requestID() string {
	for _, id := range []string{r.RequestID, r.ID, r.JobID, r.TaskID} {
		if id != "" {
			return id
		}
	}
	return ""
}

// Process envoie les deux images au vendeur et parse la réponse.
// Toutes les erreurs renvoyées sont des *TryOnError avec le statut à propager
func (s *TryOnService) Process(ctx context.Context, userPhotoPath, outfitPhotoPath string) (*TryOnResult, error) {
	if s.apiURL == "" || s.apiKey == "" {
		return nil, &TryOnError{StatusCode: http.StatusServiceUnavailable, Message: "virtual try-on service is not configured"}
	}

	body, contentType, err := buildTryOnForm(userPhotoPath, outfitPhotoPath)
	if err != nil {
		return nil, &TryOnError{StatusCode: http.StatusInternalServerError, Message: fmt.Sprintf("failed to build request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, body)
	if err != nil {
		return nil, &TryOnError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, mapNetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TryOnError{StatusCode: http.StatusBadGateway, Message: "failed to read api response"}
	}

	var parsed tryOnResponse
	// Réponse non JSON tolérée sur les erreurs, pas sur les succès
	decodeErr := json.Unmarshal(raw, &parsed)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, mapAPIError(resp.StatusCode, &parsed, raw)
	}
	if decodeErr != nil {
		return nil, &TryOnError{StatusCode: http.StatusBadGateway, Message: "invalid api response"}
	}

	resultURL := parsed.resultURL()
	if resultURL == "" {
		return nil, &TryOnError{StatusCode: http.StatusInternalServerError, Message: "API did not return a result image URL", Details: raw}
	}

	return &TryOnResult{
		ResultImageURL: resultURL,
		RequestID:      parsed.requestID(),
		ProcessingTime: parsed.ProcessingTime,
		Raw:            raw,
	}, nil
}

// buildTryOnForm construit le corps multipart avec les deux fichiers image
func buildTryOnForm(userPhotoPath, outfitPhotoPath string) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := appendFile(writer, "person_image", userPhotoPath); err != nil {
		return nil, "", err
	}
	if err := appendFile(writer, "garment_image", outfitPhotoPath); err != nil {
		return nil, "", err
	}

	_ = writer.WriteField("category", tryOnCategory)
	_ = writer.WriteField("nsfw_filter", "true")
	_ = writer.WriteField("quality", tryOnQuality)

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return &buf, writer.FormDataContentType(), nil
}

func appendFile(writer *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", field, err)
	}
	defer f.Close()

	part, err := writer.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f)
	return err
}

// mapAPIError traduit un statut vendeur en erreur à renvoyer au client
func mapAPIError(status int, parsed *tryOnResponse, raw []byte) *TryOnError {
	msg := parsed.Message
	if msg == "" {
		msg = parsed.Error
	}

	switch status {
	case http.StatusUnauthorized:
		return &TryOnError{StatusCode: status, Message: "Invalid API key for the virtual try-on service", Details: raw}
	case http.StatusForbidden:
		return &TryOnError{StatusCode: status, Message: "API key does not have permission for this operation", Details: raw}
	case http.StatusTooManyRequests:
		return &TryOnError{StatusCode: status, Message: "Rate limit exceeded. Please try again later.", Details: raw}
	case http.StatusBadRequest:
		if msg == "" {
			msg = "Invalid request parameters"
		}
		return &TryOnError{StatusCode: status, Message: msg, Details: raw}
	default:
		if msg == "" {
			msg = "API request failed"
		}
		return &TryOnError{StatusCode: status, Message: msg, Details: raw}
	}
}

// mapNetworkError traduit une erreur réseau en 503/504
func mapNetworkError(err error) *TryOnError {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TryOnError{StatusCode: http.StatusGatewayTimeout, Message: "API request timed out. The server took too long to respond."}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &TryOnError{StatusCode: http.StatusGatewayTimeout, Message: "API request timed out. The server took too long to respond."}
	}
	return &TryOnError{StatusCode: http.StatusServiceUnavailable, Message: "Cannot connect to the virtual try-on service"}
}
