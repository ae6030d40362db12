package model

import "time"

// Weather conditions météo courantes pour une position
type Weather struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"` // °C
	Humidity    int     `json:"humidity"`    // %
	Condition   string  `json:"condition"`
}

// AirQuality indices de qualité de l'air (échelle OpenWeather: AQI 1-5)
type AirQuality struct {
	AQI  int     `json:"aqi"`
	PM25 float64 `json:"pm25"`
	PM10 float64 `json:"pm10"`
}

// PCOSImpact analyse d'impact environnemental sur les symptômes
type PCOSImpact struct {
	Level           string   `json:"level"` // Low, Moderate, High
	Factors         []string `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

// EnvironmentalData relevé stocké par le job de surveillance
type EnvironmentalData struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	Weather        Weather    `json:"weather"`
	AirQuality     AirQuality `json:"airQuality"`
	PollutionLevel string     `json:"pollutionLevel"`
	Impact         PCOSImpact `json:"pcosImpact"`
	CreatedAt      time.Time  `json:"createdAt"`
}
