package engine

import (
	"errors"
	"testing"

	model "github.com/MAdnan2003/PCOSync/internal/models"
)

func TestNormalizeSkincare_RequiredFields(t *testing.T) {
	cases := []struct {
		name      string
		profile   model.SkincareProfile
		wantField string
	}{
		{"missing skinType", model.SkincareProfile{AcneType: "None", Sensitivity: "Low"}, "skinType"},
		{"invalid skinType", model.SkincareProfile{SkinType: "Greasy", AcneType: "None", Sensitivity: "Low"}, "skinType"},
		{"missing acneType", model.SkincareProfile{SkinType: "Oily", Sensitivity: "Low"}, "acneType"},
		{"invalid acneType", model.SkincareProfile{SkinType: "Oily", AcneType: "Mystery", Sensitivity: "Low"}, "acneType"},
		{"missing sensitivity", model.SkincareProfile{SkinType: "Oily", AcneType: "None"}, "sensitivity"},
		{"invalid sensitivity", model.SkincareProfile{SkinType: "Oily", AcneType: "None", Sensitivity: "Extreme"}, "sensitivity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeSkincare(tc.profile)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type %T, want *ValidationError", err)
			}
			if verr.Field != tc.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tc.wantField)
			}
		})
	}
}

func TestNormalizeSkincare_AppliesDefaults(t *testing.T) {
	a, err := NormalizeSkincare(model.SkincareProfile{
		SkinType: "Dry", AcneType: "None", Sensitivity: "Low",
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if a.OilLevel != "Moderate" {
		t.Errorf("oilLevel = %q, want Moderate", a.OilLevel)
	}
	if a.Lifestyle != "Mixed" {
		t.Errorf("lifestyle = %q, want Mixed", a.Lifestyle)
	}
	if a.SunscreenPreference != "No Preference" {
		t.Errorf("sunscreenPreference = %q, want No Preference", a.SunscreenPreference)
	}
	if a.Hyperpigmentation || a.DarkSpots {
		t.Error("boolean flags should default to false")
	}
}

func TestNormalizeSkincare_InvalidOptionalFallsBackToDefault(t *testing.T) {
	a, err := NormalizeSkincare(model.SkincareProfile{
		SkinType: "Dry", AcneType: "None", Sensitivity: "Low",
		OilLevel: "Extreme", Lifestyle: "Submarine",
	})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if a.OilLevel != "Moderate" || a.Lifestyle != "Mixed" {
		t.Errorf("got oilLevel=%q lifestyle=%q, want defaults", a.OilLevel, a.Lifestyle)
	}
}

func validMedical() model.MedicalDetails {
	return model.MedicalDetails{
		Weight:        68,
		Height:        165,
		PCOSType:      "Insulin-Resistant PCOS",
		Symptoms:      []string{"Fatigue", "Acne"},
		ExerciseLevel: "Light",
		DietType:      "Vegetarian",
		StressLevel:   "High",
		SmokingStatus: "Non-smoker",
	}
}

func TestNormalizeMedical_Valid(t *testing.T) {
	a, err := NormalizeMedical(validMedical())
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if a.PCOSType != "Insulin-Resistant PCOS" {
		t.Errorf("pcosType = %q", a.PCOSType)
	}
	if len(a.Symptoms) != 2 {
		t.Errorf("symptoms = %v", a.Symptoms)
	}
}

func TestNormalizeMedical_MissingFields(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*model.MedicalDetails)
		wantField string
	}{
		{"weight", func(m *model.MedicalDetails) { m.Weight = 0 }, "weight"},
		{"height", func(m *model.MedicalDetails) { m.Height = 0 }, "height"},
		{"pcosType", func(m *model.MedicalDetails) { m.PCOSType = "" }, "pcosType"},
		{"exerciseLevel", func(m *model.MedicalDetails) { m.ExerciseLevel = "" }, "exerciseLevel"},
		{"exerciseLevel enum", func(m *model.MedicalDetails) { m.ExerciseLevel = "Olympian" }, "exerciseLevel"},
		{"dietType", func(m *model.MedicalDetails) { m.DietType = "" }, "dietType"},
		{"stressLevel", func(m *model.MedicalDetails) { m.StressLevel = "" }, "stressLevel"},
		{"smokingStatus", func(m *model.MedicalDetails) { m.SmokingStatus = "" }, "smokingStatus"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validMedical()
			tc.mutate(&m)
			_, err := NormalizeMedical(m)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if verr.Field != tc.wantField {
				t.Errorf("field = %q, want %q", verr.Field, tc.wantField)
			}
		})
	}
}

func TestNormalizeMedical_NilSymptomsBecomesEmptySet(t *testing.T) {
	m := validMedical()
	m.Symptoms = nil

	a, err := NormalizeMedical(m)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if a.Symptoms == nil || len(a.Symptoms) != 0 {
		t.Errorf("symptoms = %#v, want empty slice", a.Symptoms)
	}
}
