package engine

import (
	model "github.com/MAdnan2003/PCOSync/internal/models"
)

// Modes de génération de routine
const (
	ModeProfileBased    = "profile_based"
	ModeMedicalFallback = "medical_fallback"
)

// RoutineProfile écho du profil normalisé, renvoyé pour l'affichage côté
// client uniquement (jamais utilisé pour de la logique)
type RoutineProfile struct {
	SkinType          string `json:"skinType"`
	AcneType          string `json:"acneType"`
	Sensitivity       string `json:"sensitivity"`
	OilLevel          string `json:"oilLevel"`
	Lifestyle         string `json:"lifestyle"`
	Hyperpigmentation bool   `json:"hyperpigmentation"`
	DarkSpots         bool   `json:"darkSpots"`
}

// RoutineData payload du mode profile_based
type RoutineData struct {
	Morning []Step          `json:"morning"`
	Night   []Step          `json:"night"`
	Tips    []string        `json:"tips"`
	Profile *RoutineProfile `json:"profile"`
}

// FallbackData payload du mode medical_fallback : séquence fixe, profil nul
type FallbackData struct {
	Routine []string        `json:"routine"`
	Profile *RoutineProfile `json:"profile"`
}

// WorkoutPlanData plan d'entraînement résolu depuis le profil médical
type WorkoutPlanData struct {
	Yoga     []string `json:"yoga"`
	Strength []string `json:"strength"`
	Cardio   []string `json:"cardio"`
	Notes    []string `json:"notes"`
}

// SkincareRoutine normalise le profil, le replie sur les tables skincare et
// assemble la réponse. Pur et reproductible : deux appels avec le même profil
// produisent exactement les mêmes buckets dans le même ordre.
func (e *Engine) SkincareRoutine(p model.SkincareProfile) (*RoutineData, error) {
	attrs, err := NormalizeSkincare(p)
	if err != nil {
		return nil, err
	}

	b := resolve(e.rules.Skincare, attrs.dimensionKeys)

	return &RoutineData{
		Morning: b.Steps(BucketMorning),
		Night:   b.Steps(BucketNight),
		Tips:    b.Lines(BucketTips),
		Profile: &RoutineProfile{
			SkinType:          attrs.SkinType,
			AcneType:          attrs.AcneType,
			Sensitivity:       attrs.Sensitivity,
			OilLevel:          attrs.OilLevel,
			Lifestyle:         attrs.Lifestyle,
			Hyperpigmentation: attrs.Hyperpigmentation,
			DarkSpots:         attrs.DarkSpots,
		},
	}, nil
}

// FallbackRoutine routine générique renvoyée quand aucun profil skincare
// n'existe mais qu'un profil médical est présent. Identique quelles que
// soient les valeurs médicales.
func (e *Engine) FallbackRoutine() *FallbackData {
	routine := make([]string, len(e.rules.Fallback))
	copy(routine, e.rules.Fallback)
	return &FallbackData{Routine: routine, Profile: nil}
}

// WorkoutPlan résout le plan d'entraînement depuis les détails médicaux
func (e *Engine) WorkoutPlan(m model.MedicalDetails) (*WorkoutPlanData, error) {
	attrs, err := NormalizeMedical(m)
	if err != nil {
		return nil, err
	}

	b := resolve(e.rules.Workout, attrs.dimensionKeys)

	return &WorkoutPlanData{
		Yoga:     b.Lines(BucketYoga),
		Strength: b.Lines(BucketStrength),
		Cardio:   b.Lines(BucketCardio),
		Notes:    b.Lines(BucketNotes),
	}, nil
}
