package engine

import (
	"testing"

	model "github.com/MAdnan2003/PCOSync/internal/models"
)

func TestPollutionLevel(t *testing.T) {
	tests := []struct {
		name string
		aqi  int
		pm25 float64
		pm10 float64
		want string
	}{
		{"clean air", 1, 5, 10, "Low"},
		{"moderate aqi", 3, 20, 30, "Moderate"},
		{"high aqi", 4, 20, 30, "High"},
		{"pm25 over threshold", 2, 40, 30, "High"},
		{"pm10 over threshold", 2, 20, 60, "High"},
		{"very high aqi", 5, 20, 30, "Very High"},
		{"extreme pm25", 2, 80, 30, "Very High"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PollutionLevel(tt.aqi, tt.pm25, tt.pm10)
			if got != tt.want {
				t.Errorf("PollutionLevel(%d, %v, %v) = %q, want %q", tt.aqi, tt.pm25, tt.pm10, got, tt.want)
			}
		})
	}
}

func TestAnalyzeImpact_CleanConditionsLow(t *testing.T) {
	e := Default()

	impact := e.AnalyzeImpact(
		model.Weather{Temperature: 20, Humidity: 50},
		model.AirQuality{AQI: 1, PM25: 5, PM10: 10},
		nil,
	)

	if impact.Level != "Low" {
		t.Errorf("level = %q, want Low", impact.Level)
	}
	if impact.Factors == nil || impact.Recommendations == nil {
		t.Error("factors and recommendations must be empty slices, not nil")
	}
	if len(impact.Factors) != 0 {
		t.Errorf("expected no factors, got %v", impact.Factors)
	}
}

func TestAnalyzeImpact_HeatAndPollutionHigh(t *testing.T) {
	e := Default()

	impact := e.AnalyzeImpact(
		model.Weather{Temperature: 36, Humidity: 85},
		model.AirQuality{AQI: 5, PM25: 70, PM10: 90},
		nil,
	)

	if impact.Level != "High" {
		t.Errorf("level = %q, want High", impact.Level)
	}
	if len(impact.Factors) < 3 {
		t.Errorf("expected at least 3 factors, got %v", impact.Factors)
	}
}

func TestAnalyzeImpact_SymptomsAmplify(t *testing.T) {
	e := Default()

	weather := model.Weather{Temperature: 34, Humidity: 50}
	air := model.AirQuality{AQI: 2, PM25: 10, PM10: 15}

	without := e.AnalyzeImpact(weather, air, nil)
	with := e.AnalyzeImpact(weather, air, []string{"Fatigue"})

	if without.Level != "Low" {
		t.Errorf("baseline level = %q, want Low", without.Level)
	}
	if with.Level != "Moderate" {
		t.Errorf("amplified level = %q, want Moderate", with.Level)
	}

	found := false
	for _, r := range with.Recommendations {
		if r == "Plan rest breaks: heat amplifies fatigue" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing fatigue recommendation in %v", with.Recommendations)
	}
}

func TestAnalyzeImpact_UnknownSymptomsIgnored(t *testing.T) {
	e := Default()

	weather := model.Weather{Temperature: 20, Humidity: 50}
	air := model.AirQuality{AQI: 1, PM25: 5, PM10: 10}

	impact := e.AnalyzeImpact(weather, air, []string{"Nonsense", "Unmapped"})
	if impact.Level != "Low" || len(impact.Factors) != 0 {
		t.Errorf("unknown symptoms changed the result: %+v", impact)
	}
}
