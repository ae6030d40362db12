package engine

import (
	"fmt"

	model "github.com/MAdnan2003/PCOSync/internal/models"
)

// ValidationError champ requis manquant ou hors énumération
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Valeurs par défaut des champs optionnels
const (
	DefaultOilLevel            = "Moderate"
	DefaultLifestyle           = "Mixed"
	DefaultSunscreenPreference = "No Preference"
)

var (
	skinTypes      = enum("Oily", "Dry", "Combination", "Normal", "Sensitive")
	acneTypes      = enum("Hormonal", "Inflammatory", "Comedonal", "Cystic", "None")
	sensitivities  = enum("Low", "Medium", "High")
	oilLevels      = enum("Low", "Moderate", "High")
	lifestyles     = enum("Indoor", "Outdoor", "Mixed")
	exerciseLevels = enum("Sedentary", "Light", "Moderate", "Intense")
	stressLevels   = enum("Low", "Medium", "High")
)

func enum(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// SkincareAttributes profil skincare sous forme canonique : chaque champ
// énuméré vaut une valeur autorisée ou son défaut documenté
type SkincareAttributes struct {
	SkinType            string `json:"skinType"`
	AcneType            string `json:"acneType"`
	Sensitivity         string `json:"sensitivity"`
	OilLevel            string `json:"oilLevel"`
	Lifestyle           string `json:"lifestyle"`
	Hyperpigmentation   bool   `json:"hyperpigmentation"`
	DarkSpots           bool   `json:"darkSpots"`
	SunscreenPreference string `json:"-"`
}

// NormalizeSkincare valide les champs requis et applique les défauts.
// Aucun effet de bord.
func NormalizeSkincare(p model.SkincareProfile) (SkincareAttributes, error) {
	var a SkincareAttributes

	if p.SkinType == "" {
		return a, &ValidationError{Field: "skinType", Reason: "is required"}
	}
	if !skinTypes[p.SkinType] {
		return a, &ValidationError{Field: "skinType", Reason: "must be one of Oily, Dry, Combination, Normal, Sensitive"}
	}
	if p.AcneType == "" {
		return a, &ValidationError{Field: "acneType", Reason: "is required"}
	}
	if !acneTypes[p.AcneType] {
		return a, &ValidationError{Field: "acneType", Reason: "must be one of Hormonal, Inflammatory, Comedonal, Cystic, None"}
	}
	if p.Sensitivity == "" {
		return a, &ValidationError{Field: "sensitivity", Reason: "is required"}
	}
	if !sensitivities[p.Sensitivity] {
		return a, &ValidationError{Field: "sensitivity", Reason: "must be one of Low, Medium, High"}
	}

	a.SkinType = p.SkinType
	a.AcneType = p.AcneType
	a.Sensitivity = p.Sensitivity

	a.OilLevel = p.OilLevel
	if a.OilLevel == "" || !oilLevels[a.OilLevel] {
		a.OilLevel = DefaultOilLevel
	}
	a.Lifestyle = p.Lifestyle
	if a.Lifestyle == "" || !lifestyles[a.Lifestyle] {
		a.Lifestyle = DefaultLifestyle
	}
	a.SunscreenPreference = p.SunscreenPreference
	if a.SunscreenPreference == "" {
		a.SunscreenPreference = DefaultSunscreenPreference
	}
	a.Hyperpigmentation = p.Hyperpigmentation
	a.DarkSpots = p.DarkSpots

	return a, nil
}

// MedicalAttributes détails médicaux sous forme canonique
type MedicalAttributes struct {
	Weight        float64
	Height        float64
	PCOSType      string
	Symptoms      []string
	ExerciseLevel string
	DietType      string
	StressLevel   string
	SmokingStatus string
}

// NormalizeMedical valide les six champs requis du profil médical.
// pcosType, dietType et smokingStatus sont des énumérations libres : seule
// leur présence est exigée.
func NormalizeMedical(m model.MedicalDetails) (MedicalAttributes, error) {
	var a MedicalAttributes

	if m.Weight <= 0 {
		return a, &ValidationError{Field: "weight", Reason: "is required"}
	}
	if m.Height <= 0 {
		return a, &ValidationError{Field: "height", Reason: "is required"}
	}
	if m.PCOSType == "" {
		return a, &ValidationError{Field: "pcosType", Reason: "is required"}
	}
	if m.ExerciseLevel == "" {
		return a, &ValidationError{Field: "exerciseLevel", Reason: "is required"}
	}
	if !exerciseLevels[m.ExerciseLevel] {
		return a, &ValidationError{Field: "exerciseLevel", Reason: "must be one of Sedentary, Light, Moderate, Intense"}
	}
	if m.DietType == "" {
		return a, &ValidationError{Field: "dietType", Reason: "is required"}
	}
	if m.StressLevel == "" {
		return a, &ValidationError{Field: "stressLevel", Reason: "is required"}
	}
	if !stressLevels[m.StressLevel] {
		return a, &ValidationError{Field: "stressLevel", Reason: "must be one of Low, Medium, High"}
	}
	if m.SmokingStatus == "" {
		return a, &ValidationError{Field: "smokingStatus", Reason: "is required"}
	}

	a.Weight = m.Weight
	a.Height = m.Height
	a.PCOSType = m.PCOSType
	a.ExerciseLevel = m.ExerciseLevel
	a.DietType = m.DietType
	a.StressLevel = m.StressLevel
	a.SmokingStatus = m.SmokingStatus

	a.Symptoms = m.Symptoms
	if a.Symptoms == nil {
		a.Symptoms = []string{}
	}

	return a, nil
}
