package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("fake-image-bytes"), 0o644); err != nil {
		t.Fatalf("write temp image: %v", err)
	}
	return path
}

func newTestTryOnService(url string) *TryOnService {
	return &TryOnService{
		apiURL: url,
		apiKey: "test-key",
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestTryOnProcess_ResultURLVariants(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"result_url", `{"result_url":"https://cdn.example.com/result.jpg","request_id":"req-1"}`},
		{"output_url", `{"output_url":"https://cdn.example.com/result.jpg","id":"req-1"}`},
		{"image_url", `{"image_url":"https://cdn.example.com/result.jpg","job_id":"req-1"}`},
		{"nested result", `{"result":{"url":"https://cdn.example.com/result.jpg"},"task_id":"req-1"}`},
		{"nested data", `{"data":{"url":"https://cdn.example.com/result.jpg"},"request_id":"req-1"}`},
	}

	user := writeTempImage(t, "user.jpg")
	outfit := writeTempImage(t, "outfit.jpg")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
					t.Errorf("authorization header = %q", got)
				}
				if err := r.ParseMultipartForm(32 << 20); err != nil {
					t.Errorf("parse multipart: %v", err)
				}
				for _, field := range []string{"person_image", "garment_image"} {
					if _, _, err := r.FormFile(field); err != nil {
						t.Errorf("missing file field %s: %v", field, err)
					}
				}
				if got := r.FormValue("nsfw_filter"); got != "true" {
					t.Errorf("nsfw_filter = %q", got)
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			s := newTestTryOnService(server.URL)
			result, err := s.Process(context.Background(), user, outfit)
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if result.ResultImageURL != "https://cdn.example.com/result.jpg" {
				t.Errorf("result url = %q", result.ResultImageURL)
			}
			if result.RequestID != "req-1" {
				t.Errorf("request id = %q", result.RequestID)
			}
		})
	}
}

func TestTryOnProcess_MissingResultURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"done"}`))
	}))
	defer server.Close()

	s := newTestTryOnService(server.URL)
	_, err := s.Process(context.Background(), writeTempImage(t, "u.jpg"), writeTempImage(t, "o.jpg"))

	tryOnErr, ok := err.(*TryOnError)
	if !ok {
		t.Fatalf("expected *TryOnError, got %T (%v)", err, err)
	}
	if tryOnErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", tryOnErr.StatusCode)
	}
}

func TestTryOnProcess_APIErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"unauthorized", 401, `{}`, 401, "Invalid API key for the virtual try-on service"},
		{"forbidden", 403, `{}`, 403, "API key does not have permission for this operation"},
		{"rate limited", 429, `{}`, 429, "Rate limit exceeded. Please try again later."},
		{"bad request with message", 400, `{"message":"person_image is blurry"}`, 400, "person_image is blurry"},
		{"bad request without message", 400, `{}`, 400, "Invalid request parameters"},
		{"server error", 500, `{"error":"gpu pool exhausted"}`, 500, "gpu pool exhausted"},
	}

	user := writeTempImage(t, "user.jpg")
	outfit := writeTempImage(t, "outfit.jpg")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			s := newTestTryOnService(server.URL)
			_, err := s.Process(context.Background(), user, outfit)

			tryOnErr, ok := err.(*TryOnError)
			if !ok {
				t.Fatalf("expected *TryOnError, got %T (%v)", err, err)
			}
			if tryOnErr.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", tryOnErr.StatusCode, tt.wantStatus)
			}
			if tryOnErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", tryOnErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestTryOnProcess_ConnectionRefused(t *testing.T) {
	// Serveur fermé immédiatement pour forcer un refus de connexion
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	s := newTestTryOnService(url)
	_, err := s.Process(context.Background(), writeTempImage(t, "u.jpg"), writeTempImage(t, "o.jpg"))

	tryOnErr, ok := err.(*TryOnError)
	if !ok {
		t.Fatalf("expected *TryOnError, got %T (%v)", err, err)
	}
	if tryOnErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", tryOnErr.StatusCode)
	}
}

func TestTryOnProcess_NotConfigured(t *testing.T) {
	s := &TryOnService{client: http.DefaultClient}
	_, err := s.Process(context.Background(), "a.jpg", "b.jpg")

	tryOnErr, ok := err.(*TryOnError)
	if !ok {
		t.Fatalf("expected *TryOnError, got %T (%v)", err, err)
	}
	if tryOnErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", tryOnErr.StatusCode)
	}
}
