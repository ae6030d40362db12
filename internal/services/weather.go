package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MAdnan2003/PCOSync/internal/config"
	model "github.com/MAdnan2003/PCOSync/internal/models"
)

const (
	openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	weatherTimeout     = 10 * time.Second
)

// WeatherService client OpenWeather (météo courante + qualité de l'air)
type WeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewWeatherService construit le client OpenWeather
func NewWeatherService(cfg *config.Config) *WeatherService {
	return &WeatherService{
		apiKey:  cfg.OpenWeatherAPIKey,
		baseURL: openWeatherBaseURL,
		client:  &http.Client{Timeout: weatherTimeout},
	}
}

type currentWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type airPollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components struct {
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
		} `json:"components"`
	} `json:"list"`
}

// GetCurrentWeather récupère la météo courante pour une position (unités métriques)
func (s *WeatherService) GetCurrentWeather(ctx context.Context, lat, lon float64) (model.Weather, error) {
	var weather model.Weather

	if s.apiKey == "" {
		return weather, fmt.Errorf("openweather api key is not configured")
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	var parsed currentWeatherResponse
	if err := s.get(ctx, "/weather", params, &parsed); err != nil {
		return weather, fmt.Errorf("fetch current weather: %w", err)
	}

	weather.City = parsed.Name
	weather.Country = parsed.Sys.Country
	weather.Temperature = parsed.Main.Temp
	weather.Humidity = parsed.Main.Humidity
	if len(parsed.Weather) > 0 {
		weather.Condition = parsed.Weather[0].Main
	}

	return weather, nil
}

// GetAirQuality récupère l'indice de qualité de l'air pour une position
func (s *WeatherService) GetAirQuality(ctx context.Context, lat, lon float64) (model.AirQuality, error) {
	var air model.AirQuality

	if s.apiKey == "" {
		return air, fmt.Errorf("openweather api key is not configured")
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("appid", s.apiKey)

	var parsed airPollutionResponse
	if err := s.get(ctx, "/air_pollution", params, &parsed); err != nil {
		return air, fmt.Errorf("fetch air quality: %w", err)
	}

	if len(parsed.List) == 0 {
		return air, fmt.Errorf("empty air pollution response")
	}

	air.AQI = parsed.List[0].Main.AQI
	air.PM25 = parsed.List[0].Components.PM25
	air.PM10 = parsed.List[0].Components.PM10

	return air, nil
}

func (s *WeatherService) get(ctx context.Context, path string, params url.Values, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openweather returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}
