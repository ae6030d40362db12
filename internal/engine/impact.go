package engine

import (
	model "github.com/MAdnan2003/PCOSync/internal/models"
)

// Seuils environnementaux déclencheurs
const (
	hotTemperature  = 32.0 // °C
	coldTemperature = 5.0
	highHumidity    = 80 // %
	highPM25        = 35.0
	highPM10        = 50.0
)

// PollutionLevel niveau global de pollution depuis l'AQI OpenWeather (1-5)
// et les particules fines
func PollutionLevel(aqi int, pm25, pm10 float64) string {
	switch {
	case aqi >= 5 || pm25 > 2*highPM25:
		return "Very High"
	case aqi == 4 || pm25 > highPM25 || pm10 > highPM10:
		return "High"
	case aqi == 3:
		return "Moderate"
	default:
		return "Low"
	}
}

// AnalyzeImpact croise météo, qualité de l'air et symptômes enregistrés pour
// estimer l'impact environnemental sur les symptômes SOPK. Règles rédigées à
// la main, pas de modèle statistique.
func (e *Engine) AnalyzeImpact(w model.Weather, aq model.AirQuality, symptoms []string) model.PCOSImpact {
	impact := model.PCOSImpact{
		Factors:         []string{},
		Recommendations: []string{},
	}

	has := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		has[s] = true
	}

	score := 0

	if w.Temperature >= hotTemperature {
		score++
		impact.Factors = append(impact.Factors, "High temperature can worsen fatigue and dehydration")
		impact.Recommendations = append(impact.Recommendations, "Stay hydrated and avoid outdoor workouts at midday")
	}
	if w.Temperature <= coldTemperature {
		score++
		impact.Factors = append(impact.Factors, "Cold weather can increase joint stiffness")
	}
	if w.Humidity >= highHumidity {
		score++
		impact.Factors = append(impact.Factors, "High humidity can aggravate acne and skin irritation")
		impact.Recommendations = append(impact.Recommendations, "Cleanse skin after sweating")
	}

	if aq.AQI >= 4 || aq.PM25 > highPM25 || aq.PM10 > highPM10 {
		score += 2
		impact.Factors = append(impact.Factors, "Poor air quality is linked to inflammation flare-ups")
		impact.Recommendations = append(impact.Recommendations, "Prefer indoor exercise today")
	} else if aq.AQI == 3 {
		score++
		impact.Factors = append(impact.Factors, "Moderate air pollution")
	}

	// Les symptômes existants amplifient l'impact
	if has["Fatigue"] && w.Temperature >= hotTemperature {
		score++
		impact.Recommendations = append(impact.Recommendations, "Plan rest breaks: heat amplifies fatigue")
	}
	if has["Acne"] && (w.Humidity >= highHumidity || aq.AQI >= 4) {
		score++
		impact.Recommendations = append(impact.Recommendations, "Double cleanse tonight: pollution and humidity clog pores")
	}
	if has["Headaches"] && aq.AQI >= 4 {
		score++
	}

	switch {
	case score >= 4:
		impact.Level = "High"
	case score >= 2:
		impact.Level = "Moderate"
	default:
		impact.Level = "Low"
	}

	return impact
}
