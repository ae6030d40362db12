package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config regroupe toute la configuration chargée depuis l'environnement
type Config struct {
	Port string
	URL  string

	// PostgreSQL
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Virtual try-on vendor (AiPhotocraft)
	TryOnAPIURL string
	TryOnAPIKey string

	// OpenWeather
	OpenWeatherAPIKey string

	// Environmental monitoring ("*/30 * * * *" par défaut)
	MonitorCronSpec string

	// Uploads
	UploadDir        string
	MaxFileSize      int64
	AllowedFileTypes string

	// Cloudinary
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// ML prediction service
	MLServiceURL string
}

// LoadConfig charge le fichier .env puis lit les variables d'environnement
func LoadConfig() (*Config, error) {
	// .env optionnel (absent en production)
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "5000"),
		URL:  getEnv("BASE_URL", "http://localhost:5000"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "pcosync"),

		TryOnAPIURL: os.Getenv("AIPHOTOCRAFT_API_URL"),
		TryOnAPIKey: os.Getenv("AIPHOTOCRAFT_API_KEY"),

		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),

		MonitorCronSpec: getEnv("ALERT_CHECK_INTERVAL", "*/30 * * * *"),

		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		MaxFileSize:      getEnvInt64("MAX_FILE_SIZE", 10*1024*1024),
		AllowedFileTypes: getEnv("ALLOWED_FILE_TYPES", "image/jpeg,image/jpg,image/png,image/webp"),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),

		MLServiceURL: os.Getenv("ML_URL"),
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
